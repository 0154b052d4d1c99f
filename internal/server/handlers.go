package server

import (
	"encoding/json"
	"fmt"

	"github.com/palettelab/palette-tools-mcp/internal/colorspace"
	"github.com/palettelab/palette-tools-mcp/internal/palette"
	"github.com/palettelab/palette-tools-mcp/internal/smoothing"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "palette_smooth").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Smoothing Engine
	case "palette_smooth":
		return s.handlePaletteSmooth(args)
	case "palette_segments":
		return s.handlePaletteSegments(args)

	// Color Conversion
	case "color_convert":
		return s.handleColorConvert(args)

	// Palette Tooling
	case "palette_preview":
		return s.handlePalettePreview(args)
	case "palette_extract":
		return s.handlePaletteExtract(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Smoothing Engine Handlers ===

type paletteSmoothArgs struct {
	Colors        []string `json:"colors"`
	LockedIndices []int    `json:"locked_indices"`
	Algorithm     string   `json:"algorithm"`
	Strength      *float64 `json:"strength"`
}

// paletteSmoothResult is the smoothed sequence plus the segments that
// were interpolated, so clients can show which runs changed.
type paletteSmoothResult struct {
	Colors   []string            `json:"colors"`
	Segments []smoothing.Segment `json:"segments"`
}

func (s *Server) handlePaletteSmooth(args json.RawMessage) (interface{}, error) {
	var a paletteSmoothArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Colors) == 0 {
		return nil, fmt.Errorf("colors must not be empty")
	}
	for i, hex := range a.Colors {
		if _, err := colorspace.HexToRGB(hex); err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
	}
	for _, idx := range a.LockedIndices {
		if idx < 0 || idx >= len(a.Colors) {
			return nil, fmt.Errorf("locked index %d out of range [0,%d)", idx, len(a.Colors))
		}
	}

	algo := smoothing.Algorithm(a.Algorithm)
	if a.Algorithm == "" {
		algo = smoothing.AlgorithmRGB
	} else if !algo.Valid() {
		return nil, fmt.Errorf("unknown algorithm %q (want rgb, hsl, lab or bezier)", a.Algorithm)
	}

	strength := 1.0
	if a.Strength != nil {
		strength = *a.Strength
	}
	if strength < 0 || strength > 1 {
		return nil, fmt.Errorf("strength %v out of range [0,1]", strength)
	}

	locked := lockedSet(a.LockedIndices)
	return &paletteSmoothResult{
		Colors:   smoothing.Smooth(a.Colors, locked, algo, strength),
		Segments: smoothing.FindSegments(locked, len(a.Colors)),
	}, nil
}

type paletteSegmentsArgs struct {
	Length        int   `json:"length"`
	LockedIndices []int `json:"locked_indices"`
}

type paletteSegmentsResult struct {
	Segments []smoothing.Segment `json:"segments"`
	Count    int                 `json:"count"`
}

func (s *Server) handlePaletteSegments(args json.RawMessage) (interface{}, error) {
	var a paletteSegmentsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Length < 1 {
		return nil, fmt.Errorf("length must be at least 1, got %d", a.Length)
	}
	for _, idx := range a.LockedIndices {
		if idx < 0 || idx >= a.Length {
			return nil, fmt.Errorf("locked index %d out of range [0,%d)", idx, a.Length)
		}
	}

	segments := smoothing.FindSegments(lockedSet(a.LockedIndices), a.Length)
	return &paletteSegmentsResult{Segments: segments, Count: len(segments)}, nil
}

// === Color Conversion Handlers ===

type colorConvertArgs struct {
	Hex string `json:"hex"`
}

// rgbChannels mirrors colorspace.RGB with integer channels for output.
type rgbChannels struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// colorConvertResult carries one color in every supported representation.
type colorConvertResult struct {
	Hex string         `json:"hex"`
	RGB rgbChannels    `json:"rgb"`
	HSL colorspace.HSL `json:"hsl"`
	Lab colorspace.Lab `json:"lab"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	rgb, err := colorspace.HexToRGB(a.Hex)
	if err != nil {
		return nil, err
	}

	return &colorConvertResult{
		Hex: colorspace.RGBToHex(rgb),
		RGB: rgbChannels{R: int(rgb.R), G: int(rgb.G), B: int(rgb.B)},
		HSL: colorspace.RGBToHSL(rgb),
		Lab: colorspace.RGBToLab(rgb),
	}, nil
}

// === Palette Tooling Handlers ===

type palettePreviewArgs struct {
	Colors []string `json:"colors"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Blend  bool     `json:"blend"`
}

func (s *Server) handlePalettePreview(args json.RawMessage) (interface{}, error) {
	var a palettePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 512
	}
	if a.Height == 0 {
		a.Height = 64
	}
	return palette.RenderPreview(a.Colors, a.Width, a.Height, a.Blend)
}

type paletteExtractArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (s *Server) handlePaletteExtract(args json.RawMessage) (interface{}, error) {
	var a paletteExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return palette.Extract(img, a.Count)
}

func lockedSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, idx := range indices {
		set[idx] = true
	}
	return set
}
