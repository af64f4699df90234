// Package ramp builds the monotone-lightness UI ramp (base00..base07):
// N samples between a start and end color that vary only in lightness,
// carrying the darker endpoint's chroma and hue.
package ramp

import (
	"github.com/jonathantroyer/base24gen/cie"
	"github.com/jonathantroyer/base24gen/curve"
	"github.com/jonathantroyer/base24gen/jmh"
)

// Build interpolates n colors between start and end. The perceptual
// polar space used is JMh (this module's "OKLCH or equivalent"):
// lightness is eased from start to end while colorfulness and hue are
// held at whichever endpoint is darker. Results are clamped to [0,1]
// per channel, not gamut-mapped -- the ramp endpoints are caller-chosen
// background/foreground colors already in gamut.
func Build(start, end cie.Srgb8, n int, easing curve.Config) []cie.Srgb8 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []cie.Srgb8{start}
	}

	startJMh := jmh.FromSRGB8(start)
	endJMh := jmh.FromSRGB8(end)

	darkerM, darkerH := startJMh.M, startJMh.H
	if endJMh.J < startJMh.J {
		darkerM, darkerH = endJMh.M, endJMh.H
	}

	out := make([]cie.Srgb8, n)
	for i := 0; i < n; i++ {
		u := float32(i) / float32(n-1)
		tL := curve.Evaluate(easing, u)
		j := startJMh.J + (endJMh.J-startJMh.J)*tL

		out[i] = jmh.JMh{J: j, M: darkerM, H: darkerH}.IntoSRGB8()
	}
	return out
}
