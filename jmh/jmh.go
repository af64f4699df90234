// Package jmh implements the Hellwig-Fairchild color appearance model:
// CAM16's lightness/colorfulness/hue correlates, corrected by a
// Munsell-fitted eccentricity factor and the Helmholtz-Kohlrausch
// brightness effect. It is the sRGB<->perceptual bridge the rest of the
// core (gamut mapping, the accent solver, ramp interpolation) builds on.
package jmh

import (
	"github.com/chewxy/math32"

	"github.com/jonathantroyer/base24gen/cie"
)

// JMh is a perceptual triple: J' (lightness with the HK brightness
// boost folded in), M (colorfulness), and h (hue angle in degrees,
// [0,360)).
type JMh struct {
	J float32 // J', lightness, approximately [0, 101.6]
	M float32 // colorfulness, approximately [0, 105]
	H float32 // hue, degrees, [0, 360)
}

// eccentricity is the Munsell-fitted Fourier series replacing CAM16's
// single-term eccentricity, giving more uniform hue spacing
// (Hellwig & Fairchild 2022).
func eccentricity(hueRad float32) float32 {
	h, h2, h3, h4 := hueRad, 2*hueRad, 3*hueRad, 4*hueRad
	return 1 +
		(-0.0582*math32.Cos(h) - 0.0258*math32.Cos(h2) - 0.1347*math32.Cos(h3) + 0.0289*math32.Cos(h4)) +
		(-0.1475*math32.Sin(h) - 0.0308*math32.Sin(h2) + 0.0385*math32.Sin(h3) + 0.0096*math32.Sin(h4))
}

// hkFactor is the hue-angle dependency of the Helmholtz-Kohlrausch
// brightness boost: how much extra perceived brightness a hue's
// chromatic content contributes beyond its CAM16 lightness.
func hkFactor(hueRad float32) float32 {
	h, h2 := hueRad, 2*hueRad
	return 0.792 +
		(-0.160*math32.Cos(h) + 0.132*math32.Cos(h2)) +
		(-0.405*math32.Sin(h) + 0.080*math32.Sin(h2))
}

// awDefault is the CAM16 achromatic response to white under the default
// viewing conditions, used to turn colorfulness into the chroma term the
// HK correction is defined over (C = M*35/aw).
const awDefault = 100

// FromSRGB maps a normalized sRGB color to Hellwig-Fairchild JMh.
// Inputs outside [0,1] per channel are accepted and simply produce a
// possibly out-of-gamut JMh; this function never fails.
func FromSRGB(s cie.SrgbF) JMh {
	vw := defaultViewingConditions()
	xyz := s.ToXYZ()
	cam := camFromXYZ(xyz.X, xyz.Y, xyz.Z, vw)

	hueRad := math32.DegToRad(cam.h)
	eRatio := eccentricity(hueRad) / eccentricityCAM16(hueRad)
	m := cam.M * eRatio

	chroma := m * 35 / awDefault
	jPrime := cam.J + hkFactor(hueRad)*math32.Pow(math32.Max(chroma, 0), 0.587)

	return JMh{J: jPrime, M: m, H: sanitizeDegrees(cam.h)}
}

// FromSRGB8 is a convenience wrapper for 8-bit sRGB input.
func FromSRGB8(s cie.Srgb8) JMh {
	return FromSRGB(s.ToFloat())
}

// IntoSRGB maps a Hellwig-Fairchild JMh color back to normalized sRGB.
// Reverses the HK correction and the eccentricity scaling in the order
// they were applied. The result is not gamut-clamped -- callers that
// need an in-gamut color should run it through package gamut first.
func (c JMh) IntoSRGB() cie.SrgbF {
	vw := defaultViewingConditions()
	hueRad := math32.DegToRad(c.H)

	chroma := c.M * 35 / awDefault
	jBase := c.J - hkFactor(hueRad)*math32.Pow(math32.Max(chroma, 0), 0.587)

	eRatio := eccentricityCAM16(hueRad) / eccentricity(hueRad)
	mCAM16 := c.M * eRatio

	x, y, z := camToXYZ(cam16{J: jBase, M: mCAM16, h: c.H}, vw)
	return cie.FromXYZ(cie.XYZ{X: x, Y: y, Z: z})
}

// IntoSRGB8 clamps the result of IntoSRGB to 8-bit sRGB.
func (c JMh) IntoSRGB8() cie.Srgb8 {
	return c.IntoSRGB().Clamp8()
}

// IsInGamut reports whether this JMh color's sRGB representation stays
// within [0,1] on every channel.
func (c JMh) IsInGamut() bool {
	return c.IntoSRGB().InGamut()
}
