// mcp/tools/registry_test.go
package tools

import (
	"reflect"
	"testing"
)

var wantToolNames = []string{
	"get_twitter_user_profile",
	"get_twitter_user_about",
	"search_twitter_users",
	"get_twitter_followers",
	"get_twitter_following",
	"get_twitter_tweet",
	"get_twitter_user_tweets",
	"search_twitter_tweets",
	"get_twitter_trends",
	"get_twitter_place_trends",
	"search_twitter_places",
	"get_twitter_list_detail",
	"search_twitter_lists",
	"get_twitter_list_tweets",
	"get_twitter_community_detail",
	"search_twitter_communities",
}

func TestDefinitionsNames(t *testing.T) {
	defs := Definitions()
	if len(defs) != len(wantToolNames) {
		t.Fatalf("expected %d tools, got %d", len(wantToolNames), len(defs))
	}
	for i, def := range defs {
		if def.Name != wantToolNames[i] {
			t.Fatalf("tool[%d] = %q, want %q", i, def.Name, wantToolNames[i])
		}
	}
}

func TestDefinitionsNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range Definitions() {
		if seen[def.Name] {
			t.Fatalf("duplicate tool name: %s", def.Name)
		}
		seen[def.Name] = true
	}
}

func TestDefinitionsHaveDescriptions(t *testing.T) {
	for _, def := range Definitions() {
		if len(def.Description) <= 10 {
			t.Fatalf("tool %s has a trivial description: %q", def.Name, def.Description)
		}
	}
}

func TestDefinitionsHaveSchemas(t *testing.T) {
	for _, def := range Definitions() {
		if def.InputSchema == nil {
			t.Fatalf("tool %s has no input schema", def.Name)
		}
		_, hasProperties := def.InputSchema["properties"]
		_, hasType := def.InputSchema["type"]
		if !hasProperties && !hasType {
			t.Fatalf("tool %s schema has neither properties nor type", def.Name)
		}
	}
}

func TestDefinitionsIdempotent(t *testing.T) {
	first := Definitions()
	second := Definitions()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("Definitions mutated between calls")
	}
}

func TestEveryToolHasHandler(t *testing.T) {
	for _, entry := range catalog {
		if entry.handler == nil {
			t.Fatalf("tool %s has no handler", entry.definition.Name)
		}
	}
}
