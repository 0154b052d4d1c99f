// Package palette provides supporting tooling around the smoothing
// engine: rendering a color sequence into a preview image and extracting
// a seed palette from an existing image.
//
// Colors cross this package's boundary as 6-digit hex strings, the same
// representation the engine consumes. Image decoding supports PNG, JPEG
// and GIF; decoded images can be cached by path via ImageCache so
// repeated extraction calls avoid redundant disk reads.
package palette
