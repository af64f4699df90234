package jmh

import "github.com/chewxy/math32"

// whiteD65 is the CIE 1931 D65 white point, Y normalized to 100.
var whiteD65 = struct{ X, Y, Z float32 }{X: 95.047, Y: 100, Z: 108.883}

// xyzToLMS and lmsToXYZ are the CAT16 chromatic-adaptation transform
// matrices from Li, Li, Wang et al. 2017, shared by CAM16 and the
// Hellwig-Fairchild model built on top of it.
func xyzToLMS(x, y, z float32) (l, m, s float32) {
	l = x*0.401288 + y*0.650173 + z*-0.051461
	m = x*-0.250268 + y*1.204414 + z*0.045854
	s = x*-0.002079 + y*0.048952 + z*0.953127
	return
}

func lmsToXYZ(l, m, s float32) (x, y, z float32) {
	x = l*1.86206787 + m*-1.0112563 + s*0.14918667
	y = l*0.38752654 + m*0.62144744 + s*-0.00897398
	z = l*-0.01584150 + m*-0.03412294 + s*1.04996444
	return
}

func luminanceAdaptComp(v, d, fl float32) float32 {
	vd := v * d
	f := math32.Pow((fl*math32.Abs(vd))/100, 0.42)
	sign := float32(1)
	if vd < 0 {
		sign = -1
	} else if vd == 0 {
		sign = 0
	}
	return (sign * 400 * f) / (f + 27.13)
}

// cam16 is the plain CAM16 appearance correlate triple (lightness,
// colorfulness, hue) before the Hellwig eccentricity and
// Helmholtz-Kohlrausch corrections are applied.
type cam16 struct {
	J, M, h float32
}

// camFromXYZ runs the forward CAM16 transform (XYZ, 0-100 scale, under
// vw) down to J/M/h, using CAM16's own (inferior) eccentricity factor --
// the Hellwig correction is layered on by the caller in jmh.go.
func camFromXYZ(x, y, z float32, vw *viewingConditions) cam16 {
	l, m, s := xyzToLMS(x, y, z)
	lA := luminanceAdaptComp(l, vw.rgbD[0], vw.fl)
	mA := luminanceAdaptComp(m, vw.rgbD[1], vw.fl)
	sA := luminanceAdaptComp(s, vw.rgbD[2], vw.fl)

	a := (11*lA - 12*mA + sA) / 11
	b := (lA + mA - 2*sA) / 9
	grey := (40*lA + 20*mA + sA) / 20
	greyNorm := (20*lA + 20*mA + 21*sA) / 20

	hue := sanitizeDegrees(math32.RadToDeg(math32.Atan2(b, a)))

	ac := grey * vw.nbb
	J := 100 * math32.Pow(math32.Max(ac, 0)/vw.aw, vw.c*vw.z)

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHueCAM16 := eccentricityCAM16(math32.DegToRad(huePrime))
	p1 := (50000.0 / 13.0) * eHueCAM16 * vw.nc * vw.ncb
	t := p1 * math32.Sqrt(a*a+b*b) / (greyNorm + 0.305)
	alpha := math32.Pow(t, 0.9) * math32.Pow(1.64-math32.Pow(0.29, vw.n), 0.73)

	C := alpha * math32.Sqrt(J/100)
	M := C * vw.flRoot

	return cam16{J: J, M: M, h: hue}
}

// camToXYZ runs the inverse CAM16 transform from J/M/h back to XYZ
// (0-100 scale), under vw.
func camToXYZ(cam cam16, vw *viewingConditions) (x, y, z float32) {
	alpha := float32(0)
	if cam.J > 0 {
		alpha = (cam.M / vw.flRoot) / math32.Sqrt(cam.J/100)
	}
	t := math32.Pow(alpha/math32.Pow(1.64-math32.Pow(0.29, vw.n), 0.73), 1.0/0.9)

	hRad := math32.DegToRad(cam.h)
	eHueCAM16 := eccentricityCAM16(hRad)
	ac := vw.aw * math32.Pow(math32.Max(cam.J, 0)/100, 1/(vw.c*vw.z))
	p1 := eHueCAM16 * (50000.0 / 13.0) * vw.nc * vw.ncb
	p2 := ac / vw.nbb

	hSin, hCos := math32.Sin(hRad), math32.Cos(hRad)
	gamma := float32(0)
	denom := 23*p1 + 11*t*hCos + 108*t*hSin
	if denom != 0 {
		gamma = 23 * (p2 + 0.305) * t / denom
	}
	a := gamma * hCos
	b := gamma * hSin

	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	rC := invAdaptComp(rA, vw.fl)
	gC := invAdaptComp(gA, vw.fl)
	bC := invAdaptComp(bA, vw.fl)

	rF := rC / vw.rgbD[0]
	gF := gC / vw.rgbD[1]
	bF := bC / vw.rgbD[2]

	return lmsToXYZ(rF, gF, bF)
}

func invAdaptComp(adapted, fl float32) float32 {
	sign := float32(1)
	if adapted < 0 {
		sign = -1
	}
	base := math32.Max(0, (27.13*math32.Abs(adapted))/(400-math32.Abs(adapted)))
	return sign * (100 / fl) * math32.Pow(base, 1/0.42)
}

func sanitizeDegrees(deg float32) float32 {
	d := math32.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// eccentricityCAM16 is the original CAM16 eccentricity factor, used only
// to compute the correction ratio against the Hellwig Fourier series.
func eccentricityCAM16(hueRad float32) float32 {
	return 0.25 * (math32.Cos(hueRad+2) + 3.8)
}
