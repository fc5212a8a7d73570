// internal/cli/tools_test.go
package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	if err := printCatalog(&buf, false); err != nil {
		t.Fatalf("printCatalog error: %v", err)
	}
	out := buf.String()
	for _, name := range []string{"get_twitter_user_profile", "search_twitter_tweets", "get_twitter_community_detail"} {
		if !strings.Contains(out, name) {
			t.Fatalf("catalog output missing %s:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "16 tools available") {
		t.Fatalf("catalog output missing count header:\n%s", out)
	}
}

func TestPrintCatalogWithSchemas(t *testing.T) {
	var buf bytes.Buffer
	if err := printCatalog(&buf, true); err != nil {
		t.Fatalf("printCatalog error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"properties"`) {
		t.Fatalf("expected schemas in output:\n%s", out)
	}
	if !strings.Contains(out, `"max_results"`) {
		t.Fatalf("expected max_results property in output:\n%s", out)
	}
}
