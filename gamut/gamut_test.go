package gamut

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathantroyer/base24gen/jmh"
)

func TestCuspLookupInterpolates(t *testing.T) {
	c0 := CuspAtHue(0)
	c1 := CuspAtHue(1)
	half := CuspAtHue(0.5)

	assert.InDelta(t, (c0.J+c1.J)/2, half.J, 0.01)
	assert.InDelta(t, (c0.M+c1.M)/2, half.M, 0.01)
}

func TestCuspWrapsAt360(t *testing.T) {
	c0 := CuspAtHue(0)
	c360 := CuspAtHue(360)

	assert.InDelta(t, c0.J, c360.J, 0.01)
	assert.InDelta(t, c0.M, c360.M, 0.01)
}

func TestInGamutUnchanged(t *testing.T) {
	c := NewCache()
	color := jmh.JMh{J: 50, M: 10, H: 180}
	assert.True(t, color.IsInGamut())

	mapped := c.GamutMap(color)
	assert.InDelta(t, color.J, mapped.J, 0.001)
	assert.InDelta(t, color.M, mapped.M, 0.001)
	assert.InDelta(t, color.H, mapped.H, 0.001)
}

func TestOutOfGamutReducesColorfulness(t *testing.T) {
	c := NewCache()
	color := jmh.JMh{J: 50, M: 100, H: 25}
	assert.False(t, color.IsInGamut())

	mapped := c.GamutMap(color)
	assert.True(t, mapped.IsInGamut())
	assert.Less(t, mapped.M, color.M)
}

func TestGamutMapPreservesLightnessAndHue(t *testing.T) {
	c := NewCache()
	for hue := 0; hue < 360; hue += 30 {
		color := jmh.JMh{J: 60, M: 120, H: float32(hue)}
		mapped := c.GamutMap(color)
		assert.Lessf(t, absF32(mapped.J-color.J), float32(0.1), "lightness changed at hue %d", hue)
		assert.Lessf(t, absF32(mapped.H-color.H), float32(0.1), "hue changed at hue %d", hue)
	}
}

func TestExtremeJFallsBackToAchromatic(t *testing.T) {
	c := NewCache()
	dark := c.GamutMap(jmh.JMh{J: 2, M: 50, H: 180})
	assert.InDelta(t, float32(0), dark.M, 0.001)

	light := c.GamutMap(jmh.JMh{J: 99.5, M: 50, H: 180})
	assert.InDelta(t, float32(0), light.M, 0.001)
}

func TestMaxColorfulnessReasonable(t *testing.T) {
	c := NewCache()
	for hue := 0; hue < 360; hue += 30 {
		maxM := c.MaxColorfulnessAt(50, float32(hue))
		assert.Greaterf(t, maxM, float32(0), "max_colorfulness_at(50, %d)", hue)

		jc, hc := bucketCenterJ(50), bucketCenterHue(float32(hue))
		inGamut := isInGamutJMh(jc, maxM, hc)
		assert.True(t, inGamut || maxM < 0.5)
	}
}

func TestCacheHitOnRepeatedQuery(t *testing.T) {
	c := NewCache()
	m1 := c.MaxColorfulnessAt(50, 180)
	m2 := c.MaxColorfulnessAt(50, 180)
	assert.Equal(t, m1, m2)
}

func TestCacheQuantizesNearbyValues(t *testing.T) {
	c := NewCache()
	m1 := c.MaxColorfulnessAt(50, 180)
	m2 := c.MaxColorfulnessAt(50.05, 180)
	assert.Equal(t, m1, m2)
}

func TestMaxColorfulnessDeterministicAcrossBucket(t *testing.T) {
	c1 := NewCache()
	m1 := c1.MaxColorfulnessAt(50.01, 250.03)
	c2 := NewCache()
	m2 := c2.MaxColorfulnessAt(50.08, 250.08)
	assert.Equal(t, m1, m2)
}

func TestCacheHandlesHueWrapping(t *testing.T) {
	c := NewCache()
	m1 := c.MaxColorfulnessAt(50, 0)
	m2 := c.MaxColorfulnessAt(50, 360)
	assert.Equal(t, m1, m2)
}

func TestClearAllowsRecompute(t *testing.T) {
	c := NewCache()
	_ = c.MaxColorfulnessAt(50, 180)
	c.Clear()
	m := c.MaxColorfulnessAt(50, 180)
	assert.Greater(t, m, float32(0))
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
