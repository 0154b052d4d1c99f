package palette

import (
	"fmt"
	"image"
	"sort"

	"github.com/anthonynsimon/bild/transform"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ExtractedColor is one palette entry with its share of the image.
type ExtractedColor struct {
	Hex        string  `json:"hex"`        // Quantized hex color "#RRGGBB"
	Percentage float64 `json:"percentage"` // Share of sampled pixels (0-100)
}

// ExtractResult contains the dominant colors of an image, most frequent
// first.
type ExtractResult struct {
	Colors []ExtractedColor `json:"colors"`
}

const (
	// thumbSize bounds the number of sampled pixels; larger images are
	// downsampled before counting.
	thumbSize = 64

	// mergeThreshold is the CIE76 distance (in go-colorful's normalized
	// Lab space) under which two quantized colors count as the same
	// palette entry.
	mergeThreshold = 0.12
)

// Extract returns up to count dominant colors of an image, suitable as a
// seed color sequence for the smoothing engine.
//
// The image is downsampled to at most 64x64, each pixel is quantized to
// a 16-step-per-channel grid, and quantized colors within mergeThreshold
// of an already-kept entry are folded into it so near-duplicates do not
// crowd out distinct hues.
func Extract(img image.Image, count int) (*ExtractResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	if bounds.Dx() > thumbSize || bounds.Dy() > thumbSize {
		img = transform.Resize(img, thumbSize, thumbSize, transform.Linear)
		bounds = img.Bounds()
	}

	colorCounts := make(map[string]int)
	totalPixels := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// Quantize to group similar colors
			r8 := uint8((r >> 8) / 16 * 16)
			g8 := uint8((g >> 8) / 16 * 16)
			b8 := uint8((b >> 8) / 16 * 16)
			key := fmt.Sprintf("#%02X%02X%02X", r8, g8, b8)
			colorCounts[key]++
			totalPixels++
		}
	}

	ranked := make([]ExtractedColor, 0, len(colorCounts))
	for hex, cnt := range colorCounts {
		ranked = append(ranked, ExtractedColor{
			Hex:        hex,
			Percentage: float64(cnt) / float64(totalPixels) * 100,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Percentage != ranked[j].Percentage {
			return ranked[i].Percentage > ranked[j].Percentage
		}
		return ranked[i].Hex < ranked[j].Hex
	})

	// Fold perceptually-near colors into the stronger entry.
	kept := make([]ExtractedColor, 0, count)
	keptLab := make([]colorful.Color, 0, count)
	for _, c := range ranked {
		cc, err := colorful.Hex(c.Hex)
		if err != nil {
			continue
		}
		merged := false
		for i, k := range keptLab {
			if k.DistanceLab(cc) < mergeThreshold {
				kept[i].Percentage += c.Percentage
				merged = true
				break
			}
		}
		if !merged {
			kept = append(kept, c)
			keptLab = append(keptLab, cc)
		}
	}

	// Merging can reorder by accumulated share.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Percentage > kept[j].Percentage
	})
	if len(kept) > count {
		kept = kept[:count]
	}

	return &ExtractResult{Colors: kept}, nil
}
