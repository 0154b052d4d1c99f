package colorspace

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrInvalidHex is returned when a string is not a 6-digit hex color.
var ErrInvalidHex = errors.New("invalid hex color")

// RGB is a color in the sRGB color space.
//
// Channels nominally range over [0,255] but are kept as float64 so that
// intermediate arithmetic (interpolation, LAB round-trips) stays exact.
// Values outside [0,255] are permitted and only clamped by RGBToHex.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// HSL is a color as hue (degrees, [0,360)), saturation and lightness
// (percent, [0,100]).
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Lab is a color in CIE-LAB space relative to the D65 white point.
// L is perceptual lightness (roughly [0,100]); A and B are the chroma
// axes and are unbounded.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// HexToRGB parses a 6-digit hex color with an optional leading "#".
//
// Returns ErrInvalidHex (wrapped) if the string does not match exactly
// 6 hex digits; shorthand forms like "#fff" are rejected.
func HexToRGB(hex string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return RGB{
		R: float64(v >> 16 & 0xff),
		G: float64(v >> 8 & 0xff),
		B: float64(v & 0xff),
	}, nil
}

// RGBToHex encodes a color as "#RRGGBB" (uppercase).
//
// This is the single clamp point of the package: each channel is clamped
// to [0,255] and rounded to the nearest integer here, and nowhere else.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", encodeChannel(c.R), encodeChannel(c.G), encodeChannel(c.B))
}

func encodeChannel(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(math.Round(v))
}

// RGBToHSL converts via the standard max/min channel decomposition.
// Achromatic colors (max == min) yield hue 0 and saturation 0.
func RGBToHSL(c RGB) HSL {
	r := c.R / 255.0
	g := c.G / 255.0
	b := c.B / 255.0

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))

	l := (max + min) / 2.0

	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s float64
	if l < 0.5 {
		s = d / (max + min)
	} else {
		s = d / (2.0 - max - min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLToRGB is the inverse of RGBToHSL. Hue is taken modulo 360.
func HSLToRGB(c HSL) RGB {
	h := c.H / 360.0
	s := c.S / 100.0
	l := c.L / 100.0

	if s == 0 {
		v := l * 255.0
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: hueToChannel(p, q, h+1.0/3.0) * 255.0,
		G: hueToChannel(p, q, h) * 255.0,
		B: hueToChannel(p, q, h-1.0/3.0) * 255.0,
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// HexToHSL composes HexToRGB and RGBToHSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(c), nil
}

// HSLToHex composes HSLToRGB and RGBToHex.
func HSLToHex(c HSL) string {
	return RGBToHex(HSLToRGB(c))
}

// HexToLab composes HexToRGB and RGBToLab.
func HexToLab(hex string) (Lab, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return Lab{}, err
	}
	return RGBToLab(c), nil
}

// LabToHex composes LabToRGB and RGBToHex. Out-of-gamut results are
// clamped by the hex encoding.
func LabToHex(c Lab) string {
	return RGBToHex(LabToRGB(c))
}
