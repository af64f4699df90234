package curve

// evaluateBSpline evaluates a clamped, equidistant-knot B-spline through
// cfg.ControlPoints' values (the curve passes through the first and
// last control point, per the "clamped" construction). Falls back to
// linear when there are fewer than two control points. No third-party
// spline library is available among this module's dependencies, so this
// is a direct implementation of clamped uniform B-spline evaluation via
// De Boor's algorithm.
func evaluateBSpline(cfg Config, t float32) float32 {
	points := cfg.ControlPoints
	if len(points) < 2 {
		return t
	}

	values := make([]float32, len(points))
	for i, p := range points {
		values[i] = p.Value
	}

	degree := len(values) - 1
	if degree > 3 {
		degree = 3
	}
	return deBoorClamped(values, degree, t)
}

// deBoorClamped evaluates a degree-p clamped uniform B-spline over
// control values, at parameter u in [0,1].
func deBoorClamped(values []float32, p int, u float32) float32 {
	n := len(values) - 1
	if n < 1 {
		return values[0]
	}
	if p > n {
		p = n
	}

	knots := clampedKnotVector(n, p)

	// Map u in [0,1] onto the knot domain [knots[p], knots[n+1]].
	uKnot := knots[p] + u*(knots[n+1]-knots[p])

	span := findSpan(n, p, uKnot, knots)

	d := make([]float32, p+1)
	for i := 0; i <= p; i++ {
		d[i] = values[span-p+i]
	}

	for r := 1; r <= p; r++ {
		for i := p; i >= r; i-- {
			idx := span - p + i
			denom := knots[idx+p-r+1] - knots[idx]
			var alpha float32
			if denom != 0 {
				alpha = (uKnot - knots[idx]) / denom
			}
			d[i] = (1-alpha)*d[i-1] + alpha*d[i]
		}
	}

	return d[p]
}

// clampedKnotVector builds a clamped uniform knot vector for n+1
// control points and degree p: p+1 repeated zeros, interior knots
// equally spaced, then p+1 repeated ones.
func clampedKnotVector(n, p int) []float32 {
	m := n + p + 2
	knots := make([]float32, m)

	for i := 0; i <= p; i++ {
		knots[i] = 0
	}
	for i := m - p - 1; i < m; i++ {
		knots[i] = 1
	}

	interior := n - p
	if interior > 0 {
		for j := 1; j <= interior; j++ {
			knots[p+j] = float32(j) / float32(interior+1)
		}
	}
	return knots
}

// findSpan locates the knot span index i such that knots[i] <= u < knots[i+1].
func findSpan(n, p int, u float32, knots []float32) int {
	if u >= knots[n+1] {
		return n
	}
	if u <= knots[p] {
		return p
	}
	lo, hi := p, n+1
	for u < knots[lo] || u >= knots[lo+1] {
		if lo >= hi {
			break
		}
		mid := (lo + hi) / 2
		if u < knots[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}
