package palette

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"
)

func TestRenderPreview(t *testing.T) {
	result, err := RenderPreview([]string{"#FF0000", "#0000FF"}, 10, 4, false)
	if err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}
	if result.Width != 10 || result.Height != 4 {
		t.Errorf("size = %dx%d, want 10x4", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("mime type = %s, want image/png", result.MimeType)
	}

	raw, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("result is not valid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("result is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 4 {
		t.Fatalf("decoded size = %v, want 10x4", img.Bounds())
	}

	// Hard-edged bands: left half red, right half blue.
	r, _, b, _ := img.At(2, 2).RGBA()
	if r>>8 != 255 || b>>8 != 0 {
		t.Errorf("left band = (%d,%d), want red", r>>8, b>>8)
	}
	r, _, b, _ = img.At(7, 2).RGBA()
	if r>>8 != 0 || b>>8 != 255 {
		t.Errorf("right band = (%d,%d), want blue", r>>8, b>>8)
	}
}

func TestRenderPreview_Blended(t *testing.T) {
	result, err := RenderPreview([]string{"#000000", "#FFFFFF"}, 64, 1, true)
	if err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(result.ImageBase64)
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("result is not valid PNG: %v", err)
	}

	// Linear resampling must produce intermediate grays between the stops.
	mid, _, _, _ := img.At(32, 0).RGBA()
	if v := mid >> 8; v == 0 || v == 255 {
		t.Errorf("midpoint = %d, want an intermediate gray", v)
	}
}

func TestRenderPreview_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
		w, h   int
	}{
		{"empty sequence", nil, 10, 10},
		{"zero width", []string{"#FF0000"}, 0, 10},
		{"negative height", []string{"#FF0000"}, 10, -1},
		{"bad hex", []string{"#FF0000", "red"}, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RenderPreview(tt.colors, tt.w, tt.h, false); err == nil {
				t.Error("expected error")
			}
		})
	}
}
