package accent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathantroyer/base24gen/cie"
)

func TestOptimizeReturnsCorrectCount(t *testing.T) {
	bg := cie.Srgb8{R: 26, G: 26, B: 46}
	hues := []float32{25, 60, 120, 180, 240, 285, 320, 350}
	result, err := Optimize(context.Background(), bg, hues, DefaultSettings(), 60)
	require.NoError(t, err)
	assert.Len(t, result.HueResults, 8)
}

func TestOptimizeColorsInGamut(t *testing.T) {
	bg := cie.Srgb8{R: 26, G: 26, B: 46}
	hues := []float32{25, 60, 120, 180, 240, 285, 320, 350}
	result, err := Optimize(context.Background(), bg, hues, DefaultSettings(), 60)
	require.NoError(t, err)

	for _, hr := range result.HueResults {
		assert.GreaterOrEqualf(t, hr.Color.R, float32(0), "hue %v red out of gamut", hr.Hue)
		assert.LessOrEqualf(t, hr.Color.R, float32(1), "hue %v red out of gamut", hr.Hue)
		assert.GreaterOrEqualf(t, hr.Color.G, float32(0), "hue %v green out of gamut", hr.Hue)
		assert.LessOrEqualf(t, hr.Color.G, float32(1), "hue %v green out of gamut", hr.Hue)
		assert.GreaterOrEqualf(t, hr.Color.B, float32(0), "hue %v blue out of gamut", hr.Hue)
		assert.LessOrEqualf(t, hr.Color.B, float32(1), "hue %v blue out of gamut", hr.Hue)
	}
}

func TestInfeasibleHighContrastProducesWarning(t *testing.T) {
	bg := cie.Srgb8{R: 128, G: 128, B: 128}
	hues := []float32{25, 285}
	settings := Settings{TargetJ: 50, TargetM: 30, DeltaJ: 5, DeltaM: 5, JWeight: 0.5, ContrastWeight: 0.8}

	result, err := Optimize(context.Background(), bg, hues, settings, 100)
	require.NoError(t, err)

	warned := 0
	for _, hr := range result.HueResults {
		if hr.Warning != "" {
			warned++
		}
		assert.GreaterOrEqual(t, hr.Color.R, float32(0))
		assert.LessOrEqual(t, hr.Color.R, float32(1))
	}
	assert.Greater(t, warned, 0, "expected at least one warning for infeasible contrast")
}

func TestHighContrastDarkThemeMeetsTarget(t *testing.T) {
	bg := cie.Srgb8{R: 26, G: 26, B: 46}
	hues := []float32{60, 180, 300}
	settings := Settings{TargetJ: 80, TargetM: 25, DeltaJ: 10, DeltaM: 15, JWeight: 0.7, ContrastWeight: 0.8}

	result, err := Optimize(context.Background(), bg, hues, settings, 60)
	require.NoError(t, err)

	for _, hr := range result.HueResults {
		assert.Truef(t, hr.MetConstraints, "hue %v should meet constraints", hr.Hue)
		assert.GreaterOrEqualf(t, hr.AchievedContrast, float32(55), "hue %v", hr.Hue)
	}
}

func TestHighContrastLightThemeMeetsTarget(t *testing.T) {
	bg := cie.Srgb8{R: 250, G: 250, B: 250}
	hues := []float32{60, 180, 300}
	settings := Settings{TargetJ: 35, TargetM: 25, DeltaJ: 10, DeltaM: 15, JWeight: 0.7, ContrastWeight: 0.8}

	result, err := Optimize(context.Background(), bg, hues, settings, 60)
	require.NoError(t, err)

	for _, hr := range result.HueResults {
		assert.Truef(t, hr.MetConstraints, "hue %v should meet constraints", hr.Hue)
		assert.GreaterOrEqualf(t, hr.AchievedContrast, float32(55), "hue %v", hr.Hue)
	}
}

func variance(values []float32) float32 {
	var sum float32
	for _, v := range values {
		sum += v
	}
	mean := sum / float32(len(values))

	var sq float32
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return sq / float32(len(values))
}

func TestJWeightAffectsUniformity(t *testing.T) {
	bg := cie.Srgb8{R: 26, G: 26, B: 46}
	hues := []float32{25, 60, 180, 285}

	uniform := Settings{TargetJ: 80, TargetM: 25, DeltaJ: 15, DeltaM: 20, JWeight: 0.9, ContrastWeight: 0.8}
	vibrant := Settings{TargetJ: 80, TargetM: 25, DeltaJ: 15, DeltaM: 20, JWeight: 0.1, ContrastWeight: 0.8}

	uniformResult, err := Optimize(context.Background(), bg, hues, uniform, 45)
	require.NoError(t, err)
	vibrantResult, err := Optimize(context.Background(), bg, hues, vibrant, 45)
	require.NoError(t, err)

	uniformJs := make([]float32, len(uniformResult.HueResults))
	for i, hr := range uniformResult.HueResults {
		uniformJs[i] = hr.J
	}
	vibrantJs := make([]float32, len(vibrantResult.HueResults))
	for i, hr := range vibrantResult.HueResults {
		vibrantJs[i] = hr.J
	}

	assert.LessOrEqual(t, variance(uniformJs), variance(vibrantJs)+10)
}
