package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func objectSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func property(typ, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        typ,
		"description": description,
	}
}

func pointerProperties() map[string]interface{} {
	return map[string]interface{}{
		"x": property("integer", "X coordinate in the viewport"),
		"y": property("integer", "Y coordinate in the viewport"),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	upProps := pointerProperties()
	upProps["text"] = property("string", "Text to insert when the release places text")
	upProps["color"] = map[string]interface{}{
		"type":        "string",
		"description": "Text color",
		"enum":        []string{"black", "red", "green", "blue", "white"},
		"default":     "black",
	}
	upProps["cancel"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Cancel the text prompt",
		"default":     false,
	}

	return []Tool{
		// Document
		{
			Name:        "editor_viewport",
			Description: "Set the size of the display area. Opened images are scaled down to fit it and pointer coordinates are relative to it, with the image centered.",
			InputSchema: objectSchema(map[string]interface{}{
				"width":  property("integer", "Viewport width in pixels"),
				"height": property("integer", "Viewport height in pixels"),
			}, "width", "height"),
		},
		{
			Name:        "editor_open",
			Description: "Open an image file (png, jpg, gif, bmp, tiff, webp) as the new document. Clears the undo history.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": property("string", "Absolute path to the image file"),
			}, "path"),
		},
		{
			Name:        "editor_save",
			Description: "Save the current image as PNG or JPEG.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": property("string", "Absolute path of the output file"),
				"format": map[string]interface{}{
					"type":        "string",
					"description": "Output format; derived from the file extension when omitted",
					"enum":        []string{"png", "jpg"},
				},
			}, "path"),
		},

		// Interaction
		{
			Name:        "editor_select_mode",
			Description: "Select the interaction mode. crop: drag to select, release to crop. draw: each drag is a freehand stroke until another mode is selected. text: click or drag to place text. idle: ignore the pointer.",
			InputSchema: objectSchema(map[string]interface{}{
				"mode": map[string]interface{}{
					"type":        "string",
					"description": "Mode to enter",
					"enum":        []string{"idle", "crop", "draw", "text"},
				},
			}, "mode"),
		},
		{
			Name:        "editor_pointer_down",
			Description: "Press the pointer at a viewport position.",
			InputSchema: objectSchema(pointerProperties(), "x", "y"),
		},
		{
			Name:        "editor_pointer_drag",
			Description: "Move the pressed pointer to a viewport position.",
			InputSchema: objectSchema(pointerProperties(), "x", "y"),
		},
		{
			Name:        "editor_pointer_up",
			Description: "Release the pointer at a viewport position. Completes a crop, a stroke, or text placement; for text, the text/color/cancel arguments answer the prompt.",
			InputSchema: objectSchema(upProps, "x", "y"),
		},

		// Effects
		{
			Name:        "editor_brightness",
			Description: "Move the brightness slider (-100 to 100). With live=true the result is only previewed; with live=false it is committed as an undoable edit.",
			InputSchema: objectSchema(map[string]interface{}{
				"value": property("integer", "Slider value from -100 to 100"),
				"live": map[string]interface{}{
					"type":        "boolean",
					"description": "Preview without committing",
					"default":     false,
				},
			}, "value"),
		},
		{
			Name:        "editor_grayscale",
			Description: "Convert the image to grayscale, or restore the color version if it already is grayscale.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
		{
			Name:        "editor_undo",
			Description: "Undo the last committed edit.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},

		// Inspection
		{
			Name:        "editor_state",
			Description: "Get the session state: image size, mode, brightness, undo depth, status and the active selection. Optionally includes the displayed image as base64 PNG with the selection drawn on it.",
			InputSchema: objectSchema(map[string]interface{}{
				"include_image": map[string]interface{}{
					"type":        "boolean",
					"description": "Include the displayed image",
					"default":     false,
				},
			}),
		},
		{
			Name:        "editor_sample_color",
			Description: "Get the color of the current image at an image coordinate, as RGB, hex and HSL.",
			InputSchema: objectSchema(map[string]interface{}{
				"x": property("integer", "X coordinate in the image"),
				"y": property("integer", "Y coordinate in the image"),
			}, "x", "y"),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
