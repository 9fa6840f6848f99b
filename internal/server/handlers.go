package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-script/internal/script"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_command", "image_preview").
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
// Tool execution errors return a JSON-RPC error response with code
// codeToolFailed.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return resultResponse(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(result),
			},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Editing
	case "image_command":
		return s.handleImageCommand(args)
	case "image_script":
		return s.handleImageScript(args)
	case "image_commands":
		return script.Commands, nil

	// Inspection
	case "image_current":
		return s.state(), nil
	case "image_info":
		return s.handleImageInfo(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_preview":
		return s.handleImagePreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments into v. Missing arguments leave v
// untouched.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// SessionState describes the current image of the session.
type SessionState struct {
	HasImage bool `json:"has_image"`
	Width    int  `json:"width,omitempty"`
	Height   int  `json:"height,omitempty"`
}

func (s *Server) state() SessionState {
	img := s.session.Current()
	if img == nil {
		return SessionState{}
	}
	return SessionState{HasImage: true, Width: img.Width(), Height: img.Height()}
}

// === Editing Handlers ===

type imageCommandArgs struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// CommandResult reports the session after a single command.
type CommandResult struct {
	Command string       `json:"command"`
	Image   SessionState `json:"image"`
}

func (s *Server) handleImageCommand(args json.RawMessage) (interface{}, error) {
	var a imageCommandArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Command == "" {
		return nil, fmt.Errorf("command is required")
	}
	if err := s.session.Apply(a.Command, a.Args); err != nil {
		return nil, fmt.Errorf("%s: %w", a.Command, err)
	}
	return &CommandResult{Command: a.Command, Image: s.state()}, nil
}

type imageScriptArgs struct {
	Script string `json:"script"`
}

// ScriptResult reports the session after a script ran to completion.
type ScriptResult struct {
	Executed int          `json:"executed"`
	Image    SessionState `json:"image"`
}

func (s *Server) handleImageScript(args json.RawMessage) (interface{}, error) {
	var a imageScriptArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	// Progress lines would corrupt the protocol stream on stdout.
	n, err := script.RunString(a.Script, s.session, nil)
	if err != nil {
		return nil, fmt.Errorf("script stopped after %d commands: %w", n, err)
	}
	return &ScriptResult{Executed: n, Image: s.state()}, nil
}

// === Inspection Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return s.codec.Info(a.Path)
}

type imageSampleColorArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img := s.session.Current()
	if img == nil {
		return nil, script.ErrNoImage
	}
	return sampleColor(img, a.X, a.Y)
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var opts previewOptions
	if err := decodeArgs(args, &opts); err != nil {
		return nil, err
	}
	img := s.session.Current()
	if img == nil {
		return nil, script.ErrNoImage
	}
	return preview(img, opts)
}
