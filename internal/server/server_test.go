package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ironsheep/image-script/internal/codec"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(codec.New(codec.Options{}), "1.2.3")
}

func TestNew(t *testing.T) {
	s := newTestServer(t)
	if s.Session() == nil {
		t.Fatal("New() did not create a session")
	}
	if s.Session().Current() != nil {
		t.Error("new session already has an image")
	}
	if s.version != "1.2.3" {
		t.Errorf("version: got %q, want 1.2.3", s.version)
	}
}

func TestNew_DefaultVersion(t *testing.T) {
	s := New(codec.New(codec.Options{}), "")
	if s.version != "dev" {
		t.Errorf("version: got %q, want dev", s.version)
	}
}

func TestHandleRequest(t *testing.T) {
	tests := []struct {
		name     string
		req      MCPRequest
		wantNil  bool
		wantCode int // 0 for a result
	}{
		{"initialize", MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"}, false, 0},
		{"ping", MCPRequest{JSONRPC: "2.0", ID: "p", Method: "ping"}, false, 0},
		{"tools/list", MCPRequest{JSONRPC: "2.0", ID: 2, Method: "tools/list"}, false, 0},
		{"initialized notification", MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"}, true, 0},
		{"cancelled notification", MCPRequest{JSONRPC: "2.0", Method: "notifications/cancelled"}, true, 0},
		{"unknown method", MCPRequest{JSONRPC: "2.0", ID: 3, Method: "resources/list"}, false, codeMethodNotFound},
		{"wrong version", MCPRequest{JSONRPC: "1.0", ID: 4, Method: "ping"}, false, codeInvalidRequest},
		{"missing version", MCPRequest{ID: 5, Method: "ping"}, false, codeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := newTestServer(t).handleRequest(&tt.req)
			if tt.wantNil {
				if resp != nil {
					t.Errorf("expected no response, got %+v", resp)
				}
				return
			}
			if resp == nil {
				t.Fatal("handleRequest returned nil")
			}
			if resp.JSONRPC != "2.0" || resp.ID != tt.req.ID {
				t.Errorf("envelope: got jsonrpc %q id %v, want 2.0 and %v", resp.JSONRPC, resp.ID, tt.req.ID)
			}
			switch {
			case tt.wantCode == 0 && resp.Error != nil:
				t.Errorf("unexpected error: %+v", resp.Error)
			case tt.wantCode != 0 && resp.Error == nil:
				t.Errorf("expected error %d, got result %v", tt.wantCode, resp.Result)
			case tt.wantCode != 0 && resp.Error.Code != tt.wantCode:
				t.Errorf("error code: got %d, want %d", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleInitialize(t *testing.T) {
	resp := newTestServer(t).handleInitialize(&MCPRequest{JSONRPC: "2.0", ID: "init-1"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != protocolVersion {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}
	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}
	if serverInfo["name"] != "image-script" || serverInfo["version"] != "1.2.3" {
		t.Errorf("serverInfo: got %v", serverInfo)
	}
}

func TestHandleToolsList(t *testing.T) {
	resp := newTestServer(t).handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("tools: got %T, want []Tool", result["tools"])
	}
	if len(tools) != len(GetToolDefinitions()) {
		t.Errorf("got %d tools, want %d", len(tools), len(GetToolDefinitions()))
	}
}

func TestHandleRequest_RecoversFromPanic(t *testing.T) {
	// No session: every session access dereferences nil.
	s := &Server{codec: codec.New(codec.Options{})}
	params, _ := json.Marshal(map[string]interface{}{"name": "image_current"})

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 7, Method: "tools/call", Params: params})
	if resp == nil || resp.Error == nil {
		t.Fatalf("expected an error response, got %+v", resp)
	}
	if resp.Error.Code != codeInternalError {
		t.Errorf("error code: got %d, want %d", resp.Error.Code, codeInternalError)
	}
	if resp.ID != 7 {
		t.Errorf("ID: got %v, want 7", resp.ID)
	}
}

func TestErrorResponse_OmitsEmptyData(t *testing.T) {
	data, err := json.Marshal(errorResponse(1, codeMethodNotFound, "Method not found: x", ""))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), `"data"`) {
		t.Errorf("empty data was serialized: %s", data)
	}
}

func TestServe(t *testing.T) {
	s := newTestServer(t)
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"image_command","arguments":{"command":"blank","args":["3","2","0","0","0"]}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"ping"}`,
	}, "\n")

	var out bytes.Buffer
	if err := s.Serve(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 responses, got %d: %q", len(lines), out.String())
	}
	wantCodes := []int{0, codeParseError, 0, 0}
	for i, line := range lines {
		var resp MCPResponse
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("response %d is not JSON: %v", i, err)
		}
		switch {
		case wantCodes[i] == 0 && resp.Error != nil:
			t.Errorf("response %d: unexpected error %+v", i, resp.Error)
		case wantCodes[i] != 0 && (resp.Error == nil || resp.Error.Code != wantCodes[i]):
			t.Errorf("response %d: got %+v, want error %d", i, resp.Error, wantCodes[i])
		}
	}
	if !strings.Contains(lines[1], `"id":null`) {
		t.Errorf("parse error should carry a null id: %s", lines[1])
	}

	img := s.Session().Current()
	if img == nil || img.Width() != 3 || img.Height() != 2 {
		t.Error("tools/call over Serve did not create the image")
	}
}
