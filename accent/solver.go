package accent

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/jonathantroyer/base24gen/apca"
	"github.com/jonathantroyer/base24gen/gamut"
	"github.com/jonathantroyer/base24gen/jmh"
)

const (
	maxOptIters    = 200
	penaltyWeight  = 50
	contrastEpsilon = 0.1
)

// problem bundles the fixed inputs to a single hue's optimization so the
// objective closure only needs to capture (j, m).
type problem struct {
	cache       *gamut.Cache
	bgLum       float32
	hue         float32
	settings    Settings
	minContrast float32
}

func (p *problem) contrastAt(j, m float32) float32 {
	mapped := p.cache.GamutMap(jmh.JMh{J: j, M: m, H: p.hue})
	srgb := mapped.IntoSRGB()
	fgLum := apca.Luminance(srgb.Clamp8())
	return math32.Abs(apca.ContrastFromLuminances(fgLum, p.bgLum))
}

func (p *problem) uniformity(j, m float32) float32 {
	w := p.settings.JWeight
	jTerm := math32.Pow((j-p.settings.TargetJ)/p.settings.DeltaJ, 2)
	mTerm := math32.Pow((m-p.settings.TargetM)/p.settings.DeltaM, 2)
	return w*jTerm + (1-w)*mTerm
}

// cost is the penalized objective nelderMead2D minimizes: a weighted mix
// of contrast gap and uniformity, plus squared penalties for box and
// gamut constraint violations.
func (p *problem) cost(j, m float32) float32 {
	uniformity := p.uniformity(j, m)

	contrast := p.contrastAt(j, m)
	gap := math32.Max((p.minContrast-contrast)/p.minContrast, 0)
	contrastGap := gap * gap

	cw := p.settings.ContrastWeight
	objective := cw*contrastGap + (1-cw)*uniformity

	var penalty float32
	penalize := func(violation float32) {
		if violation < 0 {
			penalty += violation * violation
		}
	}
	penalize(j - (p.settings.TargetJ - p.settings.DeltaJ))
	penalize((p.settings.TargetJ + p.settings.DeltaJ) - j)
	penalize(m - math32.Max(p.settings.TargetM-p.settings.DeltaM, 0))
	penalize((p.settings.TargetM + p.settings.DeltaM) - m)
	penalize(p.cache.MaxColorfulnessAt(j, p.hue) - m)

	return objective + penaltyWeight*penalty
}

// initialGuess starts at the target (J, M) when it's plausible, falling
// back to the hue's cusp lightness and a gamut-safe colorfulness.
func initialGuess(cache *gamut.Cache, hue float32, settings Settings) (float32, float32) {
	j := settings.TargetJ
	if j < 5 || j > 95 {
		cusp := gamut.CuspAtHue(hue)
		j = math32.Clamp(cusp.J, 20, 80)
	}

	mMax := cache.MaxColorfulnessAt(j, hue)
	m := math32.Min(settings.TargetM, mMax*0.95)
	return j, m
}

// checkMFeasibility samples the gamut boundary across the J box at
// one-unit intervals and reports whether the M lower bound is
// achievable anywhere in that range, along with the best M found.
func checkMFeasibility(cache *gamut.Cache, hue float32, settings Settings) (feasible bool, maxM float32) {
	jMin := settings.TargetJ - settings.DeltaJ
	jMax := settings.TargetJ + settings.DeltaJ
	mRequired := math32.Max(settings.TargetM-settings.DeltaM, 0)

	jStart := int(math32.Max(jMin, 0))
	jEnd := int(math32.Min(jMax, 100))
	for j := jStart; j <= jEnd; j++ {
		m := cache.MaxColorfulnessAt(float32(j), hue)
		if m > maxM {
			maxM = m
		}
	}
	return maxM >= mRequired, maxM
}

// optimizeSingleHue runs the feasibility pre-check and, if it passes,
// the simplex optimizer; otherwise it returns the best-effort result
// the gamut allows, with a warning.
func optimizeSingleHue(cache *gamut.Cache, bgLum, hue float32, settings Settings, minContrast float32) HueOptResult {
	feasible, maxAchievableM := checkMFeasibility(cache, hue, settings)
	mLower := math32.Max(settings.TargetM-settings.DeltaM, 0)

	if !feasible {
		warning := fmt.Sprintf("Hue %.0f: gamut limit %.1f < M bound %.1f", hue, maxAchievableM, mLower)
		return buildHueResult(cache, bgLum, hue, settings.TargetJ, maxAchievableM, minContrast, settings, warning)
	}

	jInit, mInit := initialGuess(cache, hue, settings)
	p := &problem{cache: cache, bgLum: bgLum, hue: hue, settings: settings, minContrast: minContrast}

	j, m := nelderMead2D(p.cost, jInit, mInit, maxOptIters)
	return buildHueResult(cache, bgLum, hue, j, m, minContrast, settings, "")
}

// buildHueResult gamut-maps (j, m), scores the result, and decides
// whether constraints were met, preferring an M-bounds warning over a
// contrast warning when both fail.
func buildHueResult(cache *gamut.Cache, bgLum, hue, j, m, minContrast float32, settings Settings, warning string) HueOptResult {
	originalM := m
	mapped := cache.GamutMap(jmh.JMh{J: j, M: m, H: hue})
	srgb := mapped.IntoSRGB()

	fgLum := apca.Luminance(srgb.Clamp8())
	achievedContrast := math32.Abs(apca.ContrastFromLuminances(fgLum, bgLum))

	jLower := settings.TargetJ - settings.DeltaJ
	jUpper := settings.TargetJ + settings.DeltaJ
	mLower := math32.Max(settings.TargetM-settings.DeltaM, 0)
	mUpper := settings.TargetM + settings.DeltaM

	jInBounds := mapped.J >= jLower && mapped.J <= jUpper
	mInBounds := mapped.M >= mLower && mapped.M <= mUpper
	contrastMet := achievedContrast >= minContrast-contrastEpsilon

	metConstraints := jInBounds && mInBounds && contrastMet

	if warning == "" && !mInBounds {
		warning = fmt.Sprintf("Hue %.0f: M=%.1f outside [%.1f, %.1f]", hue, mapped.M, mLower, mUpper)
	} else if warning == "" && !contrastMet {
		warning = fmt.Sprintf("Hue %.0f: Lc %.1f < %.1f (best within bounds)", hue, achievedContrast, minContrast)
	}

	return HueOptResult{
		Hue:              hue,
		J:                j,
		M:                mapped.M,
		OriginalM:        originalM,
		Color:            srgb,
		PostClampJ:       mapped.J,
		AchievedContrast: achievedContrast,
		MetConstraints:   metConstraints,
		Warning:          warning,
		JInBounds:        jInBounds,
		MInBounds:        mInBounds,
		MLowerBound:      mLower,
		MUpperBound:      mUpper,
	}
}
