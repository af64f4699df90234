// Package cie implements the CIE color transforms that sit underneath the
// appearance model: sRGB gamma, sRGB<->linear<->XYZ, and a Rec. 709
// relative luminance. Package apca computes its own luminance and does
// not call into this package for it.
package cie

import "github.com/chewxy/math32"

// D65 is the CIE 1931 2-degree standard observer white point, normalized
// to Y=100.
var D65 = XYZ{X: 95.047, Y: 100, Z: 108.883}

// XYZ is a CIE 1931 tristimulus value on the 0-100 scale.
type XYZ struct {
	X, Y, Z float32
}

// Srgb8 is an ordered triple of 8-bit sRGB channels, the canonical
// exchange format for colors entering or leaving the core.
type Srgb8 struct {
	R, G, B uint8
}

// SrgbF is the floating point, 0-1 normalized form of an sRGB color.
// Values outside [0,1] are out of gamut but are not rejected by any
// conversion in this package; gamut mapping is package gamut's job.
type SrgbF struct {
	R, G, B float32
}

// ToFloat converts an 8-bit sRGB triple to its normalized float form.
func (s Srgb8) ToFloat() SrgbF {
	return SrgbF{
		R: float32(s.R) / 255,
		G: float32(s.G) / 255,
		B: float32(s.B) / 255,
	}
}

// Clamp8 converts a (possibly out-of-gamut) float triple to 8-bit sRGB,
// clamping each channel to [0,1] before rounding.
func (s SrgbF) Clamp8() Srgb8 {
	return Srgb8{
		R: clampToByte(s.R),
		G: clampToByte(s.G),
		B: clampToByte(s.B),
	}
}

func clampToByte(c float32) uint8 {
	c = math32.Clamp(c, 0, 1)
	return uint8(c*255 + 0.5)
}

// InGamut reports whether every channel is within [0,1], with a small
// tolerance (1e-4) to absorb floating point round trip error.
func (s SrgbF) InGamut() bool {
	const eps = 1e-4
	return s.R >= -eps && s.R <= 1+eps &&
		s.G >= -eps && s.G <= 1+eps &&
		s.B >= -eps && s.B <= 1+eps
}

// gammaToLinear removes sRGB gamma encoding from a single channel.
func gammaToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

// gammaFromLinear re-applies sRGB gamma encoding to a single linear channel.
func gammaFromLinear(lin float32) float32 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math32.Pow(lin, 1/2.4) - 0.055
}

// ToLinear converts a gamma-encoded sRGB triple to linear-light sRGB.
// Input and output are both 0-1 normalized (not clamped).
func (s SrgbF) ToLinear() SrgbF {
	return SrgbF{
		R: gammaToLinear(s.R),
		G: gammaToLinear(s.G),
		B: gammaToLinear(s.B),
	}
}

// FromLinear re-applies gamma encoding to a linear-light sRGB triple.
func FromLinear(lin SrgbF) SrgbF {
	return SrgbF{
		R: gammaFromLinear(lin.R),
		G: gammaFromLinear(lin.G),
		B: gammaFromLinear(lin.B),
	}
}

// sRGB primaries to XYZ (D65), IEC 61966-2-1.
var linToXYZ = [3][3]float32{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

var xyzToLin = [3][3]float32{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// ToXYZ converts a gamma-encoded sRGB triple to XYZ on the 0-100 scale.
func (s SrgbF) ToXYZ() XYZ {
	lin := s.ToLinear()
	m := linToXYZ
	return XYZ{
		X: 100 * (m[0][0]*lin.R + m[0][1]*lin.G + m[0][2]*lin.B),
		Y: 100 * (m[1][0]*lin.R + m[1][1]*lin.G + m[1][2]*lin.B),
		Z: 100 * (m[2][0]*lin.R + m[2][1]*lin.G + m[2][2]*lin.B),
	}
}

// FromXYZ converts an XYZ triple (0-100 scale) to gamma-encoded sRGB.
// The result is not gamut-clamped.
func FromXYZ(xyz XYZ) SrgbF {
	x, y, z := xyz.X/100, xyz.Y/100, xyz.Z/100
	m := xyzToLin
	lin := SrgbF{
		R: m[0][0]*x + m[0][1]*y + m[0][2]*z,
		G: m[1][0]*x + m[1][1]*y + m[1][2]*z,
		B: m[2][0]*x + m[2][1]*y + m[2][2]*z,
	}
	return FromLinear(lin)
}

// LinearLuminance returns the relative luminance (CIE Y, 0-1 scale) of a
// linear-light sRGB triple using Rec. 709 coefficients -- the same
// coefficients APCA uses, distinct from the XYZ Y row by convention only
// in that APCA works directly from the linearized channels.
func LinearLuminance(lin SrgbF) float32 {
	return 0.2126729*lin.R + 0.7151522*lin.G + 0.0721750*lin.B
}
