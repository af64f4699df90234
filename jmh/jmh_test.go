package jmh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/jonathantroyer/base24gen/cie"
)

func TestEccentricityStaysInRange(t *testing.T) {
	for deg := 0; deg < 360; deg += 5 {
		e := eccentricity(math32.DegToRad(float32(deg)))
		assert.Greaterf(t, e, float32(0.6), "eccentricity at %d deg = %v out of range", deg, e)
		assert.Lessf(t, e, float32(1.4), "eccentricity at %d deg = %v out of range", deg, e)
	}
}

func TestEccentricityIsContinuous(t *testing.T) {
	prev := eccentricity(0)
	for deg := 1; deg <= 360; deg++ {
		cur := eccentricity(math32.DegToRad(float32(deg)))
		assert.Lessf(t, math32.Abs(cur-prev), float32(0.05), "eccentricity discontinuity at %d deg", deg)
		prev = cur
	}
}

func TestHueDependencyStaysInRange(t *testing.T) {
	for deg := 0; deg < 360; deg += 5 {
		f := hkFactor(math32.DegToRad(float32(deg)))
		assert.Greaterf(t, f, float32(0.2), "HK factor at %d deg = %v out of range", deg, f)
		assert.Lessf(t, f, float32(1.5), "HK factor at %d deg = %v out of range", deg, f)
	}
}

func TestHueDependencyIsContinuous(t *testing.T) {
	prev := hkFactor(0)
	for deg := 1; deg <= 360; deg++ {
		cur := hkFactor(math32.DegToRad(float32(deg)))
		assert.Lessf(t, math32.Abs(cur-prev), float32(0.05), "HK factor discontinuity at %d deg", deg)
		prev = cur
	}
}

func assertRoundtrips(t *testing.T, c cie.SrgbF, epsilon float32) {
	t.Helper()
	h := FromSRGB(c)
	got := h.IntoSRGB()
	assert.InDeltaf(t, c.R, got.R, float64(epsilon), "red: want %v got %v", c.R, got.R)
	assert.InDeltaf(t, c.G, got.G, float64(epsilon), "green: want %v got %v", c.G, got.G)
	assert.InDeltaf(t, c.B, got.B, float64(epsilon), "blue: want %v got %v", c.B, got.B)
}

func TestRoundtripPreservesSaturatedColors(t *testing.T) {
	colors := []cie.SrgbF{
		{R: 1, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
		{R: 1, G: 1, B: 0},
		{R: 1, G: 0, B: 1},
		{R: 0, G: 1, B: 1},
	}
	for _, c := range colors {
		assertRoundtrips(t, c, 0.02)
	}
}

func TestRoundtripPreservesMutedColors(t *testing.T) {
	colors := []cie.SrgbF{
		{R: 0.3, G: 0.2, B: 0.4},
		{R: 0.7, G: 0.5, B: 0.3},
		{R: 0.2, G: 0.6, B: 0.5},
		{R: 0.8, G: 0.7, B: 0.9},
	}
	for _, c := range colors {
		assertRoundtrips(t, c, 0.01)
	}
}

func TestRoundtripPreservesGrays(t *testing.T) {
	for _, gray := range []float32{0, 0.25, 0.5, 0.75, 1} {
		assertRoundtrips(t, cie.SrgbF{R: gray, G: gray, B: gray}, 0.01)
	}
}

func TestBlackIsNearZeroLightness(t *testing.T) {
	h := FromSRGB8(cie.Srgb8{R: 0, G: 0, B: 0})
	assert.Less(t, h.J, float32(0.01))
}

func TestWhiteIsNearMaxLightness(t *testing.T) {
	h := FromSRGB8(cie.Srgb8{R: 255, G: 255, B: 255})
	assert.Greater(t, h.J, float32(95))
}

func TestGraysHaveLowColorfulness(t *testing.T) {
	for _, gray := range []uint8{0, 64, 128, 192, 255} {
		h := FromSRGB8(cie.Srgb8{R: gray, G: gray, B: gray})
		assert.Lessf(t, h.M, float32(2), "gray %d has colorfulness %v", gray, h.M)
	}
}

func TestHueStaysInDegreeRange(t *testing.T) {
	colors := []cie.SrgbF{
		{R: 1, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
		{R: 0.3, G: 0.6, B: 0.9},
	}
	for _, c := range colors {
		h := FromSRGB(c)
		assert.GreaterOrEqual(t, h.H, float32(0))
		assert.Less(t, h.H, float32(360))
	}
}
