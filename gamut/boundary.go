package gamut

import (
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/jonathantroyer/base24gen/jmh"
)

const (
	maxNewtonIters  = 5
	newtonTolerance = float32(0.001)
	minSafeJ        = float32(5)
	maxSafeJ        = float32(98)
)

func isInGamutJMh(j, m, h float32) bool {
	return jmh.JMh{J: j, M: m, H: h}.IsInGamut()
}

func channelsOf(j, m, h float32) (r, g, b float32) {
	s := (jmh.JMh{J: j, M: m, H: h}).IntoSRGB()
	return s.R, s.G, s.B
}

// maxMDirect finds the largest in-gamut M at (j, h) by bisection over
// [0, 150], without consulting the cusp table. The in-gamut region is
// assumed to be the single interval [0, boundary]: true for the
// sRGB-under-JMh gamut, which is star-shaped around the achromatic axis.
// Used only to build the cusp table, before any cusp data exists.
func maxMDirect(j, h float32) float32 {
	if !isInGamutJMh(j, 0, h) {
		return 0
	}
	if isInGamutJMh(j, 150, h) {
		return 150
	}
	lo, hi := float32(0), float32(150)
	for hi-lo > 0.01 {
		mid := (lo + hi) / 2
		if isInGamutJMh(j, mid, h) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// findLimitingChannel identifies which of r, g, b is farthest outside
// [0,1], returning its index, the bound it should be driven to (0 or 1),
// and the signed distance (positive means out of gamut).
func findLimitingChannel(r, g, b float32) (channel int, bound, dist float32) {
	channels := [3]float32{r, g, b}
	for i, c := range channels {
		d0 := -c
		d1 := c - 1
		if d0 > dist {
			channel, bound, dist = i, 0, d0
		}
		if d1 > dist {
			channel, bound, dist = i, 1, d1
		}
	}
	return
}

func dcdm(j, m, h float32, channel int) float32 {
	const eps = 0.0001
	r0, g0, b0 := channelsOf(j, m-eps, h)
	r1, g1, b1 := channelsOf(j, m+eps, h)
	lo := [3]float32{r0, g0, b0}[channel]
	hi := [3]float32{r1, g1, b1}[channel]
	return (hi - lo) / (2 * eps)
}

// newtonRefine steps M toward the boundary by driving the limiting
// channel to its bound, falling back to the current iterate if the
// derivative vanishes or the iteration budget runs out.
func newtonRefine(j, h, mInitial float32) float32 {
	m := mInitial
	for i := 0; i < maxNewtonIters; i++ {
		r, g, b := channelsOf(j, m, h)
		channel, bound, dist := findLimitingChannel(r, g, b)
		if dist <= 0 || dist < newtonTolerance {
			return m
		}

		deriv := dcdm(j, m, h, channel)
		if math32.Abs(deriv) < 1e-10 {
			slog.Warn("gamut: newton-raphson derivative near zero", "j", j, "m", m, "h", h)
			return m
		}

		current := [3]float32{r, g, b}[channel]
		step := (current - bound) / deriv
		m -= step
		m = math32.Clamp(m, 0, 150)
	}
	slog.Warn("gamut: newton-raphson failed to converge", "j", j, "m_initial", mInitial, "h", h)
	return m
}

// computeBoundary returns max_colorfulness_at's value for (j, h),
// assumed to already be at bucket centers. It is the uncached boundary
// computation behind Cache.MaxColorfulnessAt; cusp-table construction
// uses maxMDirect instead, since this function reads the cusp table.
func computeBoundary(j, h float32) float32 {
	cusp := CuspAtHue(h)
	estimate := triangleEstimate(j, cusp)

	if isInGamutJMh(j, estimate, h) {
		lo, hi := estimate, estimate*1.5
		for isInGamutJMh(j, hi, h) {
			lo = hi
			hi *= 1.5
		}
		for hi-lo > 0.01 {
			mid := (lo + hi) / 2
			if isInGamutJMh(j, mid, h) {
				lo = mid
			} else {
				hi = mid
			}
		}
		return lo
	}
	return newtonRefine(j, h, estimate)
}
