package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func integerProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Editing
		{
			Name:        "image_command",
			Description: "Run one editing command against the current image, for example {\"command\": \"crop\", \"args\": [\"0\", \"0\", \"64\", \"64\"]}. Use image_commands to list commands and their arguments.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"command": map[string]interface{}{
						"type":        "string",
						"description": "Command name (open, blank, save, invert, crop, ...)",
					},
					"args": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Command arguments in order; integers are given as strings",
					},
				},
				"required": []string{"command"},
			},
		},
		{
			Name:        "image_script",
			Description: "Run a script of whitespace-separated commands against the current image. Execution stops at the first failing command.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"script": map[string]interface{}{
						"type":        "string",
						"description": "Script text, e.g. \"open /tmp/a.png\\nrotate_left\\nsave /tmp/b.png\"",
					},
				},
				"required": []string{"script"},
			},
		},
		{
			Name:        "image_commands",
			Description: "List the editing commands with their usage and arguments.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Inspection
		{
			Name:        "image_current",
			Description: "Report whether an image is loaded and its width and height.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "image_info",
			Description: "Get dimensions, format, color depth and file size of an image file without loading it for editing.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color of a pixel of the current image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": integerProperty("X coordinate (0-based, from left)"),
					"y": integerProperty("Y coordinate (0-based, from top)"),
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "image_preview",
			Description: "Render the current image as base64-encoded PNG, optionally scaled and with a coordinate grid to help choose crop, fill and add positions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 4.0 to enlarge small images). Default 1.0",
						"default":     1.0,
					},
					"grid": integerProperty("Optional grid spacing in image pixels; 0 draws no grid"),
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as #RRGGBB. Default #FF0000",
					},
					"labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Label grid intersections with their image coordinates",
					},
				},
			},
		},
	}
}

// handleToolsList responds with the tool definitions
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return resultResponse(req.ID, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}
