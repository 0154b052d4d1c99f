// Package server implements the MCP (Model Context Protocol) server for palette tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color
// sequence smoothing engine and its supporting tooling through the MCP
// protocol, so MCP-compatible clients can build and refine color palettes.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Smoothing Engine:
//   - palette_smooth: Interpolate the unlocked interior of a color sequence
//   - palette_segments: Show the segments a locked-index set induces
//
// Color Conversion:
//   - color_convert: Hex color to RGB, HSL and CIE-LAB
//
// Palette Tooling:
//   - palette_preview: Render a sequence as a base64 PNG strip
//   - palette_extract: Dominant colors of an image file as a seed palette
//
// # Image Caching
//
// Images loaded for palette_extract are cached in memory by path and
// reused across calls for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Input validation is strict at this boundary: malformed hex colors,
// out-of-range locked indices and out-of-range strengths are rejected
// before the engine runs, even though the engine itself degrades
// gracefully on such input.
package server
