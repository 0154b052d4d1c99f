package colorspace

import "math"

// D65 reference white in XYZ.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// labEpsilon is the CIE threshold between the cube-root and linear
// segments of the XYZ<->LAB nonlinearity.
const labEpsilon = 0.008856

// RGBToLab converts sRGB to CIE-LAB: gamma decode to linear RGB, the
// standard sRGB-to-XYZ matrix, D65 normalization, then the cube-root
// mapping into L*a*b*.
func RGBToLab(c RGB) Lab {
	r := srgbToLinear(c.R / 255.0)
	g := srgbToLinear(c.G / 255.0)
	b := srgbToLinear(c.B / 255.0)

	x := (0.4124564*r + 0.3575761*g + 0.1804375*b) / whiteX
	y := (0.2126729*r + 0.7151522*g + 0.0721750*b) / whiteY
	z := (0.0193339*r + 0.1191920*g + 0.9503041*b) / whiteZ

	fx := labPivot(x)
	fy := labPivot(y)
	fz := labPivot(z)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToRGB is the inverse chain of RGBToLab.
//
// The result is NOT clamped: out-of-gamut LAB values produce channels
// outside [0,255], which RGBToHex clamps at the encoding boundary.
func LabToRGB(c Lab) RGB {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	x := labUnpivot(fx) * whiteX
	y := labUnpivot(fy) * whiteY
	z := labUnpivot(fz) * whiteZ

	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return RGB{
		R: linearToSRGB(r) * 255.0,
		G: linearToSRGB(g) * 255.0,
		B: linearToSRGB(b) * 255.0,
	}
}

func labPivot(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

func labUnpivot(t float64) float64 {
	if cube := t * t * t; cube > labEpsilon {
		return cube
	}
	return (t - 16.0/116.0) / 7.787
}

// srgbToLinear applies the sRGB electro-optical transfer function.
func srgbToLinear(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// linearToSRGB applies the inverse transfer function. Negative inputs
// (out-of-gamut) stay on the linear segment so no NaN arises from Pow.
func linearToSRGB(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1.0/2.4) - 0.055
	}
	return 12.92 * v
}
