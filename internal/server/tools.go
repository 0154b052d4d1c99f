package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Smoothing Engine
		{
			Name:        "palette_smooth",
			Description: "Smooth the transitions of a color sequence. Locked indices are preserved as anchors; interior colors between anchors are re-interpolated in the chosen color space and blended with the originals by strength.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Ordered color sequence as 6-digit hex strings (e.g. \"#FF8040\")",
					},
					"locked_indices": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Indices whose colors must not change. The first and last index are always implicit anchors.",
					},
					"algorithm": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"rgb", "hsl", "lab", "bezier"},
						"description": "Interpolation algorithm. Default \"rgb\"",
					},
					"strength": map[string]interface{}{
						"type":        "number",
						"description": "Blend factor between the original and fully smoothed sequence, 0 to 1. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"colors"},
			},
		},
		{
			Name:        "palette_segments",
			Description: "Compute the anchor segments a locked-index set induces on a sequence of the given length, without smoothing anything. Useful to preview which runs of colors a smooth call would rewrite.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"length": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors in the sequence",
					},
					"locked_indices": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Indices treated as anchors in addition to the implicit first and last index",
					},
				},
				"required": []string{"length"},
			},
		},

		// Color Conversion
		{
			Name:        "color_convert",
			Description: "Convert a hex color into all supported representations: normalized hex, RGB, HSL and CIE-LAB.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "6-digit hex color, leading \"#\" optional",
					},
				},
				"required": []string{"hex"},
			},
		},

		// Palette Tooling
		{
			Name:        "palette_preview",
			Description: "Render a color sequence as a horizontal strip and return it as base64-encoded PNG. Bands are hard-edged unless blend is true.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Colors to render, as 6-digit hex strings",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Strip width in pixels. Default 512",
						"default":     512,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Strip height in pixels. Default 64",
						"default":     64,
					},
					"blend": map[string]interface{}{
						"type":        "boolean",
						"description": "Linearly fade between adjacent colors instead of hard bands. Default false",
						"default":     false,
					},
				},
				"required": []string{"colors"},
			},
		},
		{
			Name:        "palette_extract",
			Description: "Extract the dominant colors of an image file as a starting color sequence. Colors are quantized and perceptually-near duplicates merged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file (PNG, JPEG or GIF)",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colors to return. Default 5",
						"default":     5,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
