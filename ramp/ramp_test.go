package ramp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathantroyer/base24gen/cie"
	"github.com/jonathantroyer/base24gen/curve"
	"github.com/jonathantroyer/base24gen/jmh"
)

func TestBuildReturnsRequestedLength(t *testing.T) {
	start := cie.Srgb8{R: 26, G: 26, B: 46}
	end := cie.Srgb8{R: 234, G: 234, B: 234}
	colors := Build(start, end, 8, curve.Config{Type: curve.Smoothstep})
	assert.Len(t, colors, 8)
}

func TestBuildEdgeCases(t *testing.T) {
	start := cie.Srgb8{R: 10, G: 10, B: 10}
	end := cie.Srgb8{R: 200, G: 200, B: 200}

	assert.Nil(t, Build(start, end, 0, curve.DefaultConfig()))
	assert.Equal(t, []cie.Srgb8{start}, Build(start, end, 1, curve.DefaultConfig()))
}

func TestBuildIsMonotoneInLightness(t *testing.T) {
	start := cie.Srgb8{R: 26, G: 26, B: 46}
	end := cie.Srgb8{R: 234, G: 234, B: 234}
	colors := Build(start, end, 8, curve.Config{Type: curve.Linear})

	prevJ := jmh.FromSRGB8(colors[0]).J
	for _, c := range colors[1:] {
		j := jmh.FromSRGB8(c).J
		assert.GreaterOrEqual(t, j, prevJ-0.01)
		prevJ = j
	}
}

func TestBuildCarriesDarkerEndpointChromaAndHue(t *testing.T) {
	start := cie.Srgb8{R: 26, G: 26, B: 46}
	end := cie.Srgb8{R: 234, G: 234, B: 234}
	colors := Build(start, end, 8, curve.Config{Type: curve.Linear})

	startJMh := jmh.FromSRGB8(start)
	mid := jmh.FromSRGB8(colors[3])
	assert.InDelta(t, startJMh.M, mid.M, 0.5)
	assert.InDelta(t, startJMh.H, mid.H, 1)
}
