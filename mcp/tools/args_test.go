// mcp/tools/args_test.go
package tools

import (
	"strings"
	"testing"
)

func TestValidateUserProfileArgs(t *testing.T) {
	args := map[string]any{"username": "elonmusk"}
	if err := validateArgs(UserProfileDefinition(), args); err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if got := stringArg(args, "username"); got != "elonmusk" {
		t.Fatalf("username = %q, want elonmusk", got)
	}
}

func TestValidateMissingRequiredField(t *testing.T) {
	err := validateArgs(UserProfileDefinition(), map[string]any{})
	if err == nil {
		t.Fatal("expected error for missing username")
	}
	if !strings.Contains(err.Error(), "username") {
		t.Fatalf("error does not name the field: %v", err)
	}
}

func TestSearchTweetsDefaultMaxResults(t *testing.T) {
	args := map[string]any{"query": "python"}
	if err := validateArgs(SearchTweetsDefinition(), args); err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if got := intArg(args, "max_results", 20); got != 20 {
		t.Fatalf("max_results = %d, want default 20", got)
	}
}

func TestSearchTweetsCustomMaxResults(t *testing.T) {
	// JSON decoding yields float64 numbers.
	args := map[string]any{"query": "python", "max_results": float64(50)}
	if err := validateArgs(SearchTweetsDefinition(), args); err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if got := intArg(args, "max_results", 20); got != 50 {
		t.Fatalf("max_results = %d, want 50", got)
	}
}

func TestValidateMaxResultsOutOfRange(t *testing.T) {
	err := validateArgs(SearchTweetsDefinition(), map[string]any{"query": "python", "max_results": float64(150)})
	if err == nil {
		t.Fatal("expected error for max_results above bound")
	}
	if !strings.Contains(err.Error(), "max_results") {
		t.Fatalf("error does not name max_results: %v", err)
	}
}

func TestValidateWrongType(t *testing.T) {
	err := validateArgs(UserProfileDefinition(), map[string]any{"username": float64(42)})
	if err == nil {
		t.Fatal("expected error for non-string username")
	}
}

func TestValidateIgnoresExtraFields(t *testing.T) {
	args := map[string]any{"username": "jack", "unexpected": "value"}
	if err := validateArgs(UserProfileDefinition(), args); err != nil {
		t.Fatalf("extra fields should be ignored, got: %v", err)
	}
}

func TestIntArgCoercions(t *testing.T) {
	cases := []struct {
		name string
		args map[string]any
		want int
	}{
		{"float64", map[string]any{"n": float64(7)}, 7},
		{"int", map[string]any{"n": 7}, 7},
		{"int64", map[string]any{"n": int64(7)}, 7},
		{"absent", map[string]any{}, 20},
		{"wrong type", map[string]any{"n": "7"}, 20},
	}
	for _, tc := range cases {
		if got := intArg(tc.args, "n", 20); got != tc.want {
			t.Fatalf("%s: intArg = %d, want %d", tc.name, got, tc.want)
		}
	}
}
