// internal/logging/logging_test.go
package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "mcp.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogToolCall("in", "get_twitter_user_profile", map[string]any{"username": "jack"})
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, "tool=get_twitter_user_profile") {
		t.Fatalf("expected tool call content, got: %s", content)
	}
}

func TestBuildToolMessageDefaults(t *testing.T) {
	msg := buildToolMessage(" in ", " ", map[string]any{"ok": true})
	if !strings.Contains(msg, "[IN]") {
		t.Fatalf("expected uppercased direction, got: %s", msg)
	}
	if !strings.Contains(msg, "tool=unknown") {
		t.Fatalf("expected default tool name, got: %s", msg)
	}
	if !strings.Contains(msg, "payload={\"ok\":true}") {
		t.Fatalf("expected payload json, got: %s", msg)
	}
}

func TestFormatPayload(t *testing.T) {
	cases := []struct {
		name    string
		payload any
		want    string
	}{
		{"nil", nil, "null"},
		{"blank string", "  ", `""`},
		{"string", "text", "text"},
		{"empty bytes", []byte{}, "[]"},
		{"bytes", []byte("raw"), "raw"},
		{"object", map[string]int{"n": 1}, `{"n":1}`},
	}
	for _, tc := range cases {
		if got := formatPayload(tc.payload); got != tc.want {
			t.Fatalf("%s: formatPayload = %q, want %q", tc.name, got, tc.want)
		}
	}
}
