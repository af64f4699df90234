// Package gamut maps Hellwig-Fairchild JMh colors onto the sRGB gamut
// boundary, preserving lightness and hue while reducing colorfulness.
// The per-hue cusp table and the exact boundary finder are the two
// pieces the accent solver builds on.
package gamut

import (
	"sync"

	"github.com/chewxy/math32"
)

// Cusp is the (J', M) pair at which a hue's sRGB gamut achieves its
// maximum colorfulness.
type Cusp struct {
	J, M float32
}

var (
	cuspTable     [360]Cusp
	cuspTableOnce sync.Once
)

// cuspTableRef builds the 360-entry cusp table on first use and returns
// it. In a language with a separate build step the table would be swept
// offline and shipped as literal data; here it is swept once, lazily,
// and treated as process-global read-only constant data thereafter.
func cuspTableRef() *[360]Cusp {
	cuspTableOnce.Do(buildCuspTable)
	return &cuspTable
}

// buildCuspTable sweeps J' at coarse resolution for each integer hue and
// records the maximum colorfulness found. It must not go through
// CuspAtHue or computeBoundary: both depend on the table this function
// is building.
func buildCuspTable() {
	for deg := 0; deg < 360; deg++ {
		h := float32(deg)
		bestJ, bestM := float32(50), float32(0)
		for j := float32(1); j <= 99; j += 0.5 {
			m := maxMDirect(j, h)
			if m > bestM {
				bestM, bestJ = m, j
			}
		}
		cuspTable[deg] = Cusp{J: bestJ, M: bestM}
	}
}

// CuspAtHue linearly interpolates the cusp table between the two
// bracketing integer-degree entries.
func CuspAtHue(hueDeg float32) Cusp {
	t := cuspTableRef()
	hue := sanitizeDegrees(hueDeg)
	idx := int(hue) % 360
	frac := hue - math32.Floor(hue)

	c0 := t[idx]
	c1 := t[(idx+1)%360]
	return Cusp{
		J: c0.J + (c1.J-c0.J)*frac,
		M: c0.M + (c1.M-c0.M)*frac,
	}
}

// triangleEstimate is a conservative lower bound on the true boundary M,
// linearly interpolating between black, the cusp, and white.
func triangleEstimate(j float32, cusp Cusp) float32 {
	if j <= cusp.J {
		return cusp.M * (j / math32.Max(cusp.J, 0.001))
	}
	return cusp.M * ((100 - j) / math32.Max(100-cusp.J, 0.001))
}

func sanitizeDegrees(deg float32) float32 {
	d := math32.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
