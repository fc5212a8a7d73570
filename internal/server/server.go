// internal/server/server.go
// Package server runs the MCP protocol loop over a duplex byte stream
// (JSON-RPC 2.0 + Content-Length framing).
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/scrapebadger/scrapebadger-mcp/internal/logging"
	"github.com/scrapebadger/scrapebadger-mcp/mcp/tools"
)

// serverName and serverVersion identify this server during initialize.
const (
	serverName    = "scrapebadger-mcp"
	serverVersion = "0.1.0"
)

// --- Protocol data types ---

type jsonrpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type jsonrpcResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      any           `json:"id,omitempty"`
	Result  any           `json:"result,omitempty"`
	Error   *jsonrpcError `json:"error,omitempty"`
}

// tools/call params
type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Server processes MCP requests sequentially, one call to completion before
// the next. The data client is constructed at most once, on first tool call.
type Server struct {
	in  *bufio.Reader
	out *bufio.Writer

	provider   tools.ClientProvider
	clientOnce sync.Once
	client     tools.DataClient
	clientErr  error
}

// New builds a Server reading requests from in and writing responses to out.
// provider is invoked lazily, exactly once, to construct the shared data
// client.
func New(in io.Reader, out io.Writer, provider tools.ClientProvider) *Server {
	return &Server{
		in:       bufio.NewReader(in),
		out:      bufio.NewWriter(out),
		provider: provider,
	}
}

// dataClient returns the shared client, constructing it on first use.
func (s *Server) dataClient() (tools.DataClient, error) {
	s.clientOnce.Do(func() {
		s.client, s.clientErr = s.provider()
	})
	return s.client, s.clientErr
}

// --- Framing helpers ---

func (s *Server) writeMessage(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.out, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return err
	}
	if _, err := s.out.Write(data); err != nil {
		return err
	}
	return s.out.Flush()
}

func (s *Server) readMessage() (*jsonrpcRequest, error) {
	// Read headers until blank line
	headers := map[string]string{}
	for {
		line, err := s.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, err
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "" {
			break
		}
		if i := strings.IndexByte(trimmed, ':'); i >= 0 {
			key := strings.ToLower(strings.TrimSpace(trimmed[:i]))
			val := strings.TrimSpace(trimmed[i+1:])
			headers[key] = val
		}
	}
	clStr, ok := headers["content-length"]
	if !ok {
		return nil, fmt.Errorf("missing Content-Length")
	}
	var length int
	if _, err := fmt.Sscanf(clStr, "%d", &length); err != nil {
		return nil, fmt.Errorf("invalid Content-Length: %v", err)
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(s.in, body); err != nil {
		return nil, err
	}
	var req jsonrpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// --- RPC helpers ---

func makeResult(id any, result any) jsonrpcResponse {
	return jsonrpcResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func makeError(id any, code int, msg string) jsonrpcResponse {
	return jsonrpcResponse{JSONRPC: "2.0", ID: id, Error: &jsonrpcError{Code: code, Message: msg}}
}

// --- Request handling ---

func (s *Server) handleRequest(ctx context.Context, req *jsonrpcRequest) error {
	switch req.Method {
	case "initialize":
		result := map[string]any{
			"serverInfo":   map[string]any{"name": serverName, "version": serverVersion},
			"capabilities": map[string]any{"tools": map[string]any{"list": true, "call": true}},
		}
		return s.writeMessage(makeResult(req.ID, result))

	case "ping":
		return s.writeMessage(makeResult(req.ID, map[string]any{}))

	case "tools/list":
		result := map[string]any{"tools": tools.Definitions()}
		return s.writeMessage(makeResult(req.ID, result))

	case "tools/call":
		var p toolsCallParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &p); err != nil {
				return s.writeMessage(makeError(req.ID, -32602, "Invalid params"))
			}
		}
		if p.Arguments == nil {
			p.Arguments = map[string]any{}
		}
		logging.LogToolCall("in", p.Name, p.Arguments)
		payload := tools.CallTool(ctx, s.dataClient, p.Name, p.Arguments)
		logging.LogToolCall("out", p.Name, payload)
		result := map[string]any{
			"content": []tools.ContentPart{{Type: "text", Text: payload}},
		}
		return s.writeMessage(makeResult(req.ID, result))
	}

	return s.writeMessage(makeError(req.ID, -32601, fmt.Sprintf("Method not found: %s", req.Method)))
}

// Run processes requests until EOF or a transport fault. Per-request failures
// are answered in-stream; only the transport itself ends the loop. An
// in-flight delegated call observes ctx cancellation cooperatively.
func (s *Server) Run(ctx context.Context) error {
	for {
		req, err := s.readMessage()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			// Best-effort error frame without id to keep the stream sane.
			_ = s.writeMessage(jsonrpcResponse{JSONRPC: "2.0", Error: &jsonrpcError{Code: -32000, Message: err.Error()}})
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.handleRequest(ctx, req); err != nil {
			_ = s.writeMessage(makeError(req.ID, -32000, err.Error()))
			// Do not exit; continue processing
		}
	}
}
