// Package colorspace provides pure conversions among hex string, RGB, HSL
// and CIE-LAB color representations.
//
// All conversions are deterministic free functions with no shared state,
// safe for concurrent use. Channel values travel as float64 throughout so
// that chained conversions lose no precision; rounding and clamping to the
// 8-bit [0,255] range happen at exactly one place, RGBToHex.
//
// # Representations
//
//   - Hex: "#RRGGBB", 6 hex digits, leading "#" optional on input,
//     uppercase with "#" on output
//   - RGB: channels in [0,255] (fractional values allowed mid-computation)
//   - HSL: hue in degrees [0,360), saturation and lightness in percent [0,100]
//   - Lab: CIE-LAB against the D65 white point; L roughly [0,100], A and B
//     unbounded (not clamped by LabToRGB)
//
// # Lossiness
//
// Hex and RGB are lossless for integer channels. HSL and Lab round-trips
// are exact only up to rounding: expect up to ±1 channel unit through HSL
// and ±2 through Lab once re-encoded to hex.
package colorspace
