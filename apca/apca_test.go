package apca

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathantroyer/base24gen/cie"
)

func TestContrastSameColorIsZero(t *testing.T) {
	for _, c := range []cie.Srgb8{{R: 0, G: 0, B: 0}, {R: 128, G: 64, B: 200}, {R: 255, G: 255, B: 255}} {
		assert.Equal(t, float32(0), Contrast(c, c))
	}
}

func TestContrastPolarity(t *testing.T) {
	black := cie.Srgb8{R: 0, G: 0, B: 0}
	white := cie.Srgb8{R: 255, G: 255, B: 255}

	blackOnWhite := Contrast(black, white)
	whiteOnBlack := Contrast(white, black)

	assert.Greater(t, blackOnWhite, float32(100))
	assert.Less(t, whiteOnBlack, float32(-100))
}

func TestContrastLowDeltaIsZero(t *testing.T) {
	a := cie.Srgb8{R: 100, G: 100, B: 100}
	b := cie.Srgb8{R: 102, G: 102, B: 102}
	assert.Equal(t, float32(0), Contrast(a, b))
}

func TestInvertForBackgroundRoundTrips(t *testing.T) {
	bg := cie.Srgb8{R: 20, G: 20, B: 30}
	yBg := Luminance(bg)

	fg := cie.Srgb8{R: 230, G: 230, B: 230}
	yFg := Luminance(fg)
	want := ContrastFromLuminances(yFg, yBg)
	if want < 0 {
		want = -want
	}

	got, ok := InvertForBackground(yBg, want, yBg > yFg)
	assert.True(t, ok)
	assert.InDelta(t, yFg, got, 0.01)
}

func TestInvertForBackgroundUnreachable(t *testing.T) {
	// Demanding Lc 200, beyond APCA's roughly 108 maximum, on the
	// light-background branch pushes the inverted base non-positive.
	_, ok := InvertForBackground(0.5, 200, true)
	assert.False(t, ok)
}
