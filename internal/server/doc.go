// Package server implements the MCP (Model Context Protocol) server for the
// script editor.
//
// The server keeps one editing session for the lifetime of the process. MCP
// clients drive it with the same commands a script file uses, either one at a
// time or as a whole script, and can inspect or preview the current image
// between steps.
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
// Methods under notifications/ are accepted and never answered. Lines that
// are not JSON are answered with a parse error (-32700).
//
// # Available Tools
//
// Editing:
//   - image_command: Apply one command to the current image
//   - image_script: Run a multi-command script
//   - image_commands: List commands and their arguments
//
// Inspection:
//   - image_current: Whether an image is loaded, and its size
//   - image_info: Metadata of an image file on disk
//   - image_sample_color: Color of one pixel as hex, RGB and HSL
//   - image_preview: Current image as base64 PNG, optionally scaled
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// A failing command leaves the current image as it was. A panic while
// handling a request is reported as an internal error (-32603) and the
// server keeps serving.
//
// # Usage
//
//	srv := server.New(codec.New(codec.Options{}), version)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
