// Package server hosts an editing session behind a JSON-RPC 2.0 interface so
// a client can drive the editor without a GUI.
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
// # Tools
//
// Document:
//   - editor_viewport: Set the display area size
//   - editor_open: Open an image as the new document
//   - editor_save: Save as PNG or JPEG
//
// Interaction (pointer coordinates are viewport coordinates):
//   - editor_select_mode: idle, crop, draw or text
//   - editor_pointer_down, editor_pointer_drag, editor_pointer_up
//
// Effects:
//   - editor_brightness: Live preview or commit
//   - editor_grayscale: Toggle grayscale
//   - editor_undo: Undo the last edit
//
// Inspection:
//   - editor_state: Session state, optionally with the displayed image
//   - editor_sample_color: Color at an image coordinate
//
// # Display and Prompt
//
// The server stands in for the GUI collaborators of the session. The display
// only remembers the viewport size and the last buffer shown. The text prompt
// is answered by the text, color and cancel arguments of editor_pointer_up.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The session status message and the Go error string
//
// A failed tool call leaves the session unchanged.
//
// # Usage
//
//	srv := server.New(config.Load())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
