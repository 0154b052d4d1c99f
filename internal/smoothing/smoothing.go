package smoothing

import (
	"math"

	"github.com/palettelab/palette-tools-mcp/internal/colorspace"
)

// Algorithm selects the color space (or curve) used to interpolate
// segment interiors.
type Algorithm string

const (
	// AlgorithmRGB interpolates each RGB channel linearly.
	AlgorithmRGB Algorithm = "rgb"

	// AlgorithmHSL interpolates hue along the shorter circular arc,
	// saturation and lightness linearly.
	AlgorithmHSL Algorithm = "hsl"

	// AlgorithmLab interpolates in CIE-LAB for perceptually even steps.
	AlgorithmLab Algorithm = "lab"

	// AlgorithmBezier evaluates a per-channel cubic Bezier whose control
	// points sit at 25% and 75% between the segment endpoints.
	AlgorithmBezier Algorithm = "bezier"
)

// Valid reports whether a is one of the four named algorithms.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmRGB, AlgorithmHSL, AlgorithmLab, AlgorithmBezier:
		return true
	}
	return false
}

// Smooth returns a new sequence in which the unlocked interior of every
// segment is replaced by colors interpolated between the segment's
// anchors, blended against the original sequence by strength.
//
// Strength 0 returns a copy of the input; strength 1 returns the pure
// algorithm output; values between blend each color channel linearly.
// Out-of-range strengths are clamped to [0,1].
//
// Locked indices and the sequence endpoints are never altered.
// An unrecognized algorithm acts as the identity: the input comes back
// unchanged, strength included, matching the behavior of strength 0.
//
// Malformed hex entries never abort the computation: as an anchor they
// are treated as black for interpolation purposes (and preserved
// verbatim at their own position); as an interior value they are simply
// overwritten.
func Smooth(colors []string, locked map[int]bool, algo Algorithm, strength float64) []string {
	out := make([]string, len(colors))
	copy(out, colors)
	if len(colors) < 2 {
		return out
	}

	var interpolate func(dst []string, seg Segment)
	switch algo {
	case AlgorithmRGB:
		interpolate = interpolateRGB
	case AlgorithmHSL:
		interpolate = interpolateHSL
	case AlgorithmLab:
		interpolate = interpolateLab
	case AlgorithmBezier:
		interpolate = interpolateBezier
	default:
		return out
	}

	smoothed := make([]string, len(colors))
	copy(smoothed, colors)
	for _, seg := range FindSegments(locked, len(colors)) {
		if seg.Interior() {
			interpolate(smoothed, seg)
		}
	}

	return blend(colors, smoothed, strength)
}

func interpolateRGB(dst []string, seg Segment) {
	start := rgbOrBlack(dst[seg.Start])
	end := rgbOrBlack(dst[seg.End])
	for i := seg.Start + 1; i < seg.End; i++ {
		t := seg.factor(i)
		dst[i] = colorspace.RGBToHex(lerpRGB(start, end, t))
	}
}

func interpolateHSL(dst []string, seg Segment) {
	start := colorspace.RGBToHSL(rgbOrBlack(dst[seg.Start]))
	end := colorspace.RGBToHSL(rgbOrBlack(dst[seg.End]))

	// Take the shorter way around the hue circle.
	dh := end.H - start.H
	if dh > 180 {
		dh -= 360
	} else if dh < -180 {
		dh += 360
	}

	for i := seg.Start + 1; i < seg.End; i++ {
		t := seg.factor(i)
		h := math.Mod(start.H+dh*t, 360)
		if h < 0 {
			h += 360
		}
		dst[i] = colorspace.HSLToHex(colorspace.HSL{
			H: h,
			S: start.S + (end.S-start.S)*t,
			L: start.L + (end.L-start.L)*t,
		})
	}
}

func interpolateLab(dst []string, seg Segment) {
	start := colorspace.RGBToLab(rgbOrBlack(dst[seg.Start]))
	end := colorspace.RGBToLab(rgbOrBlack(dst[seg.End]))
	for i := seg.Start + 1; i < seg.End; i++ {
		t := seg.factor(i)
		dst[i] = colorspace.LabToHex(colorspace.Lab{
			L: start.L + (end.L-start.L)*t,
			A: start.A + (end.A-start.A)*t,
			B: start.B + (end.B-start.B)*t,
		})
	}
}

func interpolateBezier(dst []string, seg Segment) {
	p0 := rgbOrBlack(dst[seg.Start])
	p3 := rgbOrBlack(dst[seg.End])
	p1 := lerpRGB(p0, p3, 0.25)
	p2 := lerpRGB(p0, p3, 0.75)
	for i := seg.Start + 1; i < seg.End; i++ {
		t := seg.factor(i)
		dst[i] = colorspace.RGBToHex(cubicBezier(p0, p1, p2, p3, t))
	}
}

// factor is the interpolation position of index i within the segment.
// Segments always satisfy End > Start, so the division is safe.
func (s Segment) factor(i int) float64 {
	return float64(i-s.Start) / float64(s.End-s.Start)
}

// blend mixes the original and smoothed sequences per-channel by
// strength. Positions where the two sequences already agree keep the
// original string verbatim, which leaves anchors byte-identical at any
// strength.
func blend(original, smoothed []string, strength float64) []string {
	out := make([]string, len(original))
	switch {
	case strength <= 0:
		copy(out, original)
	case strength >= 1:
		copy(out, smoothed)
	default:
		for i := range original {
			if original[i] == smoothed[i] {
				out[i] = original[i]
				continue
			}
			o := rgbOrBlack(original[i])
			s := rgbOrBlack(smoothed[i])
			out[i] = colorspace.RGBToHex(lerpRGB(o, s, strength))
		}
	}
	return out
}

func lerpRGB(a, b colorspace.RGB, t float64) colorspace.RGB {
	return colorspace.RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

func cubicBezier(p0, p1, p2, p3 colorspace.RGB, t float64) colorspace.RGB {
	u := 1 - t
	w0 := u * u * u
	w1 := 3 * u * u * t
	w2 := 3 * u * t * t
	w3 := t * t * t
	return colorspace.RGB{
		R: w0*p0.R + w1*p1.R + w2*p2.R + w3*p3.R,
		G: w0*p0.G + w1*p1.G + w2*p2.G + w3*p3.G,
		B: w0*p0.B + w1*p1.B + w2*p2.B + w3*p3.B,
	}
}

// rgbOrBlack parses a hex color, substituting black for malformed input
// rather than failing the whole computation.
func rgbOrBlack(hex string) colorspace.RGB {
	c, err := colorspace.HexToRGB(hex)
	if err != nil {
		return colorspace.RGB{}
	}
	return c
}
