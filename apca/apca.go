// Package apca implements the Accessible Perceptual Contrast Algorithm:
// a luminance-based, polarity-sensitive contrast score (Lc) and its
// algebraic inversion for deriving search bounds.
package apca

import (
	"github.com/chewxy/math32"

	"github.com/jonathantroyer/base24gen/cie"
)

// softClampY applies APCA's soft black clamp: luminances below 0.022
// are nudged upward so near-black text doesn't get an inflated score.
func softClampY(y float32) float32 {
	if y < 0.022 {
		return y + math32.Pow(0.022-y, 1.414)
	}
	return y
}

// Luminance returns the APCA relative luminance (Y) of an sRGB8 color:
// per-channel inverse companding by a bare power of 2.4 (not the
// piecewise sRGB transfer function package cie uses for the appearance
// model) followed by Rec. 709 weighting and the soft black clamp.
func Luminance(c cie.Srgb8) float32 {
	r := math32.Pow(float32(c.R)/255, 2.4)
	g := math32.Pow(float32(c.G)/255, 2.4)
	b := math32.Pow(float32(c.B)/255, 2.4)
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	return softClampY(y)
}

// Contrast returns the signed APCA Lc score for foreground fg against
// background bg. Positive values mean dark text on a light background,
// negative values mean light text on a dark background; |Lc| is what
// most callers want.
func Contrast(fg, bg cie.Srgb8) float32 {
	return ContrastFromLuminances(Luminance(fg), Luminance(bg))
}

// ContrastFromLuminances computes Lc directly from two already-clamped
// APCA luminances, for callers (the accent solver) that evaluate many
// candidate foregrounds against one fixed background luminance.
func ContrastFromLuminances(yFg, yBg float32) float32 {
	var c float32
	if yBg > yFg {
		// Light background: dark-on-light polarity.
		c = 1.14 * (math32.Pow(yBg, 0.56) - math32.Pow(yFg, 0.57))
	} else {
		// Dark background: light-on-dark polarity.
		c = 1.14 * (math32.Pow(yBg, 0.65) - math32.Pow(yFg, 0.62))
	}
	if math32.Abs(c) < 0.1 {
		return 0
	}
	sign := float32(1)
	if c < 0 {
		sign = -1
	}
	return (c - sign*0.027) * 100
}

// InvertForBackground solves the Lc formula for the foreground luminance
// that would produce the given |Lc| against a background of luminance
// yBg, for the given polarity (bgIsLighter selects the yBg>yFg branch).
// The soft clamp near black is ignored, per spec -- this is meant only
// to derive search bounds for the accent solver's feasibility checks,
// never as a contract for external callers. ok is false when the target
// is unreachable (the base of the inverted power would be non-positive).
func InvertForBackground(yBg, absLc float32, bgIsLighter bool) (yFg float32, ok bool) {
	if absLc <= 0 {
		return yBg, true
	}
	c := absLc/100 + 0.027
	if bgIsLighter {
		base := math32.Pow(yBg, 0.56) - c/1.14
		if base <= 0 {
			return 0, false
		}
		return math32.Pow(base, 1/0.57), true
	}
	base := math32.Pow(yBg, 0.65) + c/1.14
	if base <= 0 {
		return 0, false
	}
	return math32.Pow(base, 1/0.62), true
}
