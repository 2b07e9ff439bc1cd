package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"

	"github.com/ironsheep/miniphoto/internal/editor"
	"github.com/ironsheep/miniphoto/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "editor_open", "editor_undo").
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
// The error data carries the session status followed by the Go error.
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
//
// Editing tools forward one event to the session and answer with the
// resulting session state.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Document
	case "editor_viewport":
		return s.handleViewport(args)
	case "editor_open":
		return s.handleOpen(args)
	case "editor_save":
		return s.handleSave(args)

	// Interaction
	case "editor_select_mode":
		return s.handleSelectMode(args)
	case "editor_pointer_down":
		return s.handlePointer(args, s.session.PointerDown)
	case "editor_pointer_drag":
		return s.handlePointer(args, s.session.PointerDrag)
	case "editor_pointer_up":
		return s.handlePointerUp(args)

	// Effects
	case "editor_brightness":
		return s.handleBrightness(args)
	case "editor_grayscale":
		return s.stateAfter(s.session.ToggleGrayscale())
	case "editor_undo":
		return s.stateAfter(s.session.Undo())

	// Inspection
	case "editor_state":
		return s.handleState(args)
	case "editor_sample_color":
		return s.handleSampleColor(args)

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

// decodeArgs unmarshals tool arguments; absent arguments leave v untouched.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(bytes.TrimSpace(args)) == 0 || string(bytes.TrimSpace(args)) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Session State ===

// SizeResult is a width and height pair.
type SizeResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RectResult is a rectangle in image coordinates.
type RectResult struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StateResult describes the session after a tool call.
type StateResult struct {
	Loaded      bool        `json:"loaded"`
	Image       *SizeResult `json:"image,omitempty"`
	Viewport    SizeResult  `json:"viewport"`
	Mode        string      `json:"mode"`
	Brightness  int         `json:"brightness"`
	UndoDepth   int         `json:"undo_depth"`
	Status      string      `json:"status"`
	Selection   *RectResult `json:"selection,omitempty"`
	ImageBase64 string      `json:"image_base64,omitempty"`
	MimeType    string      `json:"mime_type,omitempty"`
}

func (s *Server) state() *StateResult {
	sess := s.session
	res := &StateResult{
		Viewport:   SizeResult{Width: s.display.viewport.X, Height: s.display.viewport.Y},
		Mode:       sess.Mode().String(),
		Brightness: sess.Brightness(),
		UndoDepth:  sess.UndoDepth(),
		Status:     sess.Status(),
	}
	if cur := sess.Current(); cur != nil {
		res.Loaded = true
		res.Image = &SizeResult{Width: cur.Width(), Height: cur.Height()}
	}
	if sel, ok := sess.Selection(); ok {
		res.Selection = &RectResult{X: sel.Min.X, Y: sel.Min.Y, Width: sel.Dx(), Height: sel.Dy()}
	}
	return res
}

// stateAfter reports the session state, or err if the operation failed.
func (s *Server) stateAfter(err error) (interface{}, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.session.Status(), err)
	}
	return s.state(), nil
}

// === Document Handlers ===

type viewportArgs struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleViewport(args json.RawMessage) (interface{}, error) {
	var a viewportArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width <= 0 || a.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d: dimensions must be positive", a.Width, a.Height)
	}
	s.display.viewport = image.Pt(a.Width, a.Height)
	return s.state(), nil
}

type openArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleOpen(args json.RawMessage) (interface{}, error) {
	var a openArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return s.stateAfter(s.session.Open(a.Path))
}

type saveArgs struct {
	Path   string `json:"path"`
	Format string `json:"format"`
}

func (s *Server) handleSave(args json.RawMessage) (interface{}, error) {
	var a saveArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	var format imaging.Format
	var err error
	if a.Format != "" {
		format, err = imaging.ParseFormat(a.Format)
	} else {
		format, err = imaging.FormatFromPath(a.Path)
	}
	if err != nil {
		return nil, err
	}
	return s.stateAfter(s.session.Save(a.Path, format))
}

// === Interaction Handlers ===

type selectModeArgs struct {
	Mode string `json:"mode"`
}

func (s *Server) handleSelectMode(args json.RawMessage) (interface{}, error) {
	var a selectModeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	m, err := editor.ParseMode(a.Mode)
	if err != nil {
		return nil, err
	}
	return s.stateAfter(s.session.SelectMode(m))
}

type pointerArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handlePointer(args json.RawMessage, fn func(image.Point) error) (interface{}, error) {
	var a pointerArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.stateAfter(fn(image.Pt(a.X, a.Y)))
}

type pointerUpArgs struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Text   string `json:"text"`
	Color  string `json:"color"`
	Cancel bool   `json:"cancel"`
}

// handlePointerUp releases the pointer. The text, color and cancel arguments
// answer the text prompt if the release places text.
func (s *Server) handlePointerUp(args json.RawMessage) (interface{}, error) {
	var a pointerUpArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var answer *promptAnswer
	if !a.Cancel {
		pc := imaging.Black
		if a.Color != "" {
			parsed, err := imaging.ParsePaletteColor(a.Color)
			if err != nil {
				return nil, err
			}
			pc = parsed
		}
		answer = &promptAnswer{text: a.Text, color: pc}
	}

	s.prompt.set(answer)
	defer s.prompt.set(nil)
	return s.stateAfter(s.session.PointerUp(image.Pt(a.X, a.Y)))
}

// === Effect Handlers ===

type brightnessArgs struct {
	Value int  `json:"value"`
	Live  bool `json:"live"`
}

func (s *Server) handleBrightness(args json.RawMessage) (interface{}, error) {
	var a brightnessArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.stateAfter(s.session.BrightnessChanged(a.Value, a.Live))
}

// === Inspection Handlers ===

type stateArgs struct {
	IncludeImage bool `json:"include_image"`
}

// handleState reports the session state, optionally with the displayed image
// as base64 PNG. A selection being dragged is drawn over the image: a
// translucent fill for crops, an outline for text bounds.
func (s *Server) handleState(args json.RawMessage) (interface{}, error) {
	var a stateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	res := s.state()
	if !a.IncludeImage || s.display.shown == nil {
		return res, nil
	}

	img := s.display.shown.Image()
	if sel, ok := s.session.Selection(); ok {
		if s.session.Mode() == editor.ModeCropping {
			img = imaging.RenderSelection(s.display.shown, sel, imaging.CropFill, true)
		} else {
			img = imaging.RenderSelection(s.display.shown, sel, imaging.TextOutline, false)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode displayed image: %w", err)
	}
	res.ImageBase64 = base64.StdEncoding.EncodeToString(buf.Bytes())
	res.MimeType = "image/png"
	return res, nil
}

type sampleColorArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if s.session.Current() == nil {
		return nil, editor.ErrNoImage
	}
	return imaging.SampleColor(s.session.Current(), a.X, a.Y)
}
