package accent

import "github.com/chewxy/math32"

// point2 is a candidate (J, M) pair together with its objective value.
type point2 struct {
	j, m, cost float32
}

// nelderMead2D is a derivative-free, penalty-constrained minimizer over
// two variables. No COBYLA implementation is available to this module,
// so this follows the fallback the accent solver's own design notes
// permit: a Nelder-Mead simplex search with the box and gamut
// constraints folded into the objective as penalty terms, bounded to
// maxIters steps. Returns the best (least-cost) point the simplex
// visited.
func nelderMead2D(cost func(j, m float32) float32, j0, m0 float32, maxIters int) (float32, float32) {
	const (
		alpha = 1.0 // reflection
		gamma = 2.0 // expansion
		rho   = 0.5 // contraction
		sigma = 0.5 // shrink
	)

	step := float32(5)
	simplex := [3]point2{
		{j: j0, m: m0},
		{j: j0 + step, m: m0},
		{j: j0, m: m0 + step},
	}
	for i := range simplex {
		simplex[i].cost = cost(simplex[i].j, simplex[i].m)
	}

	sortSimplex := func() {
		if simplex[0].cost > simplex[1].cost {
			simplex[0], simplex[1] = simplex[1], simplex[0]
		}
		if simplex[1].cost > simplex[2].cost {
			simplex[1], simplex[2] = simplex[2], simplex[1]
		}
		if simplex[0].cost > simplex[1].cost {
			simplex[0], simplex[1] = simplex[1], simplex[0]
		}
	}
	sortSimplex()

	for iter := 0; iter < maxIters; iter++ {
		best, mid, worst := simplex[0], simplex[1], simplex[2]

		centroidJ := (best.j + mid.j) / 2
		centroidM := (best.m + mid.m) / 2

		reflJ := centroidJ + alpha*(centroidJ-worst.j)
		reflM := centroidM + alpha*(centroidM-worst.m)
		reflCost := cost(reflJ, reflM)

		switch {
		case reflCost < best.cost:
			expJ := centroidJ + gamma*(reflJ-centroidJ)
			expM := centroidM + gamma*(reflM-centroidM)
			expCost := cost(expJ, expM)
			if expCost < reflCost {
				simplex[2] = point2{j: expJ, m: expM, cost: expCost}
			} else {
				simplex[2] = point2{j: reflJ, m: reflM, cost: reflCost}
			}
		case reflCost < mid.cost:
			simplex[2] = point2{j: reflJ, m: reflM, cost: reflCost}
		default:
			contJ := centroidJ + rho*(worst.j-centroidJ)
			contM := centroidM + rho*(worst.m-centroidM)
			contCost := cost(contJ, contM)
			if contCost < worst.cost {
				simplex[2] = point2{j: contJ, m: contM, cost: contCost}
			} else {
				for i := 1; i < 3; i++ {
					simplex[i].j = best.j + sigma*(simplex[i].j-best.j)
					simplex[i].m = best.m + sigma*(simplex[i].m-best.m)
					simplex[i].cost = cost(simplex[i].j, simplex[i].m)
				}
			}
		}

		sortSimplex()

		spreadJ := math32.Abs(simplex[2].j - simplex[0].j)
		spreadM := math32.Abs(simplex[2].m - simplex[0].m)
		if spreadJ < 1e-4 && spreadM < 1e-4 {
			break
		}
	}

	return simplex[0].j, simplex[0].m
}
