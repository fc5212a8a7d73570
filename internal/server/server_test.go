// internal/server/server_test.go
package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/scrapebadger/scrapebadger-mcp/internal/scrapebadger"
	"github.com/scrapebadger/scrapebadger-mcp/mcp/tools"
)

// stubClient overrides only the methods a test exercises; calling anything
// else panics via the embedded nil interface.
type stubClient struct {
	tools.DataClient
	user *scrapebadger.User
	err  error
}

func (s *stubClient) UserByUsername(ctx context.Context, username string) (*scrapebadger.User, error) {
	return s.user, s.err
}

func stubProvider(c tools.DataClient) tools.ClientProvider {
	return func() (tools.DataClient, error) { return c, nil }
}

func writeFrame(t *testing.T, buf *bytes.Buffer, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	fmt.Fprintf(buf, "Content-Length: %d\r\n\r\n", len(data))
	buf.Write(data)
}

func readFrames(t *testing.T, data []byte) []jsonrpcResponse {
	t.Helper()
	r := bufio.NewReader(bytes.NewReader(data))
	var responses []jsonrpcResponse
	for {
		var length int
		line, err := r.ReadString('\n')
		if err == io.EOF {
			return responses
		}
		if err != nil {
			t.Fatalf("read header: %v", err)
		}
		if _, err := fmt.Sscanf(strings.TrimSpace(line), "Content-Length: %d", &length); err != nil {
			t.Fatalf("parse header %q: %v", line, err)
		}
		// Blank separator line
		if _, err := r.ReadString('\n'); err != nil {
			t.Fatalf("read separator: %v", err)
		}
		body := make([]byte, length)
		if _, err := io.ReadFull(r, body); err != nil {
			t.Fatalf("read body: %v", err)
		}
		var resp jsonrpcResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		responses = append(responses, resp)
	}
}

func runRequests(t *testing.T, provider tools.ClientProvider, requests ...any) []jsonrpcResponse {
	t.Helper()
	var in, out bytes.Buffer
	for _, req := range requests {
		writeFrame(t, &in, req)
	}
	srv := New(&in, &out, provider)
	if err := srv.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	return readFrames(t, out.Bytes())
}

func request(id int, method string, params any) map[string]any {
	req := map[string]any{"jsonrpc": "2.0", "id": id, "method": method}
	if params != nil {
		req["params"] = params
	}
	return req
}

func TestInitialize(t *testing.T) {
	responses := runRequests(t, stubProvider(&stubClient{}), request(1, "initialize", nil))
	if len(responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(responses))
	}
	result, ok := responses[0].Result.(map[string]any)
	if !ok {
		t.Fatalf("result is not an object: %+v", responses[0])
	}
	info, ok := result["serverInfo"].(map[string]any)
	if !ok || info["name"] != "scrapebadger-mcp" {
		t.Fatalf("unexpected serverInfo: %+v", result)
	}
}

func TestToolsList(t *testing.T) {
	responses := runRequests(t, stubProvider(&stubClient{}), request(1, "tools/list", nil))
	result := responses[0].Result.(map[string]any)
	toolList, ok := result["tools"].([]any)
	if !ok {
		t.Fatalf("tools is not an array: %+v", result)
	}
	if len(toolList) != len(tools.Definitions()) {
		t.Fatalf("len(tools) = %d, want %d", len(toolList), len(tools.Definitions()))
	}
}

func TestToolsCallSuccess(t *testing.T) {
	stub := &stubClient{user: &scrapebadger.User{ID: "1", Username: "jack"}}
	responses := runRequests(t, stubProvider(stub), request(1, "tools/call", map[string]any{
		"name":      "get_twitter_user_profile",
		"arguments": map[string]any{"username": "jack"},
	}))

	result := responses[0].Result.(map[string]any)
	content := result["content"].([]any)
	part := content[0].(map[string]any)
	if part["type"] != "text" {
		t.Fatalf("content type = %v, want text", part["type"])
	}
	var envelope map[string]any
	if err := json.Unmarshal([]byte(part["text"].(string)), &envelope); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	data := envelope["data"].(map[string]any)
	if data["username"] != "jack" {
		t.Fatalf("data.username = %v", data["username"])
	}
}

func TestToolsCallUnknownTool(t *testing.T) {
	// Unknown tools answer in-stream with an error envelope; the loop and the
	// JSON-RPC layer both stay healthy.
	responses := runRequests(t, stubProvider(&stubClient{}),
		request(1, "tools/call", map[string]any{"name": "not_a_real_tool"}),
		request(2, "ping", nil),
	)
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	if responses[0].Error != nil {
		t.Fatalf("unknown tool must not be a JSON-RPC error: %+v", responses[0].Error)
	}
	result := responses[0].Result.(map[string]any)
	part := result["content"].([]any)[0].(map[string]any)
	text := part["text"].(string)
	if !strings.Contains(text, "not_a_real_tool") || !strings.Contains(text, "error_type") {
		t.Fatalf("unexpected payload: %s", text)
	}
}

func TestToolsCallDownstreamFailure(t *testing.T) {
	stub := &stubClient{err: &scrapebadger.APIError{Category: scrapebadger.CategoryAuthentication, Message: "bad key", StatusCode: 401}}
	responses := runRequests(t, stubProvider(stub), request(1, "tools/call", map[string]any{
		"name":      "get_twitter_user_profile",
		"arguments": map[string]any{"username": "jack"},
	}))

	result := responses[0].Result.(map[string]any)
	part := result["content"].([]any)[0].(map[string]any)
	var envelope map[string]any
	if err := json.Unmarshal([]byte(part["text"].(string)), &envelope); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if envelope["error_type"] != "AuthenticationError" {
		t.Fatalf("error_type = %v, want AuthenticationError", envelope["error_type"])
	}
}

func TestUnknownMethod(t *testing.T) {
	responses := runRequests(t, stubProvider(&stubClient{}), request(1, "bogus/method", nil))
	if responses[0].Error == nil || responses[0].Error.Code != -32601 {
		t.Fatalf("expected method-not-found, got %+v", responses[0])
	}
}

func TestClientConstructedOnce(t *testing.T) {
	constructions := 0
	provider := func() (tools.DataClient, error) {
		constructions++
		return &stubClient{user: &scrapebadger.User{Username: "jack"}}, nil
	}
	runRequests(t, provider,
		request(1, "tools/call", map[string]any{"name": "get_twitter_user_profile", "arguments": map[string]any{"username": "jack"}}),
		request(2, "tools/call", map[string]any{"name": "get_twitter_user_profile", "arguments": map[string]any{"username": "jack"}}),
	)
	if constructions != 1 {
		t.Fatalf("client constructed %d times, want 1", constructions)
	}
}

func TestEmptyInputEndsCleanly(t *testing.T) {
	var in, out bytes.Buffer
	srv := New(&in, &out, stubProvider(&stubClient{}))
	if err := srv.Run(context.Background()); err != nil {
		t.Fatalf("Run on EOF should return nil, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
