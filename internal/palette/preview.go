package palette

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/palettelab/palette-tools-mcp/internal/colorspace"
)

// PreviewResult contains a rendered palette strip as base64-encoded PNG.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderPreview draws a color sequence as a horizontal strip of the
// requested size and returns it as base64-encoded PNG.
//
// With blend false each color occupies an equal hard-edged band; with
// blend true the strip is linearly resampled so adjacent colors fade
// into each other (a cheap visual check of a smoothing result).
//
// Every color must be valid 6-digit hex; an invalid entry fails the
// whole render.
func RenderPreview(colors []string, width, height int, blend bool) (*PreviewResult, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("no colors to render")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", width, height)
	}

	strip := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for i, hex := range colors {
		c, err := colorspace.HexToRGB(hex)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		strip.Set(i, 0, color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255})
	}

	filter := imaging.NearestNeighbor
	if blend {
		filter = imaging.Linear
	}
	scaled := imaging.Resize(strip, width, height, filter)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
