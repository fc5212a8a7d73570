// mcp/tools/envelope.go
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/scrapebadger/scrapebadger-mcp/internal/scrapebadger"
)

// Listing is the canonical shape for collection results. Count always equals
// len(Items).
type Listing struct {
	Items []any `json:"items"`
	Count int   `json:"count"`
}

// newListing wraps a typed record sequence as a Listing.
func newListing[T any](items []T) Listing {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return Listing{Items: out, Count: len(out)}
}

// CallTool dispatches a tool call and always returns a single JSON text
// payload: {"data": ...} on success, {"error": ..., "error_type": ...} on any
// failure. Nothing escapes past it.
func CallTool(ctx context.Context, provider ClientProvider, name string, args map[string]any) (payload string) {
	defer func() {
		if r := recover(); r != nil {
			payload = wrapError(fmt.Sprintf("tool %s panicked: %v", name, r), "InternalError")
		}
	}()

	entry, ok := catalogIndex[name]
	if !ok {
		return wrapError(fmt.Sprintf("Unknown tool: %s", name), "UnknownToolError")
	}

	client, err := provider()
	if err != nil {
		return wrapError(err.Error(), "ValueError")
	}

	if args == nil {
		args = map[string]any{}
	}
	if err := validateArgs(entry.definition, args); err != nil {
		return wrapError(err.Error(), errorType(err))
	}

	result, err := entry.handler(ctx, client, args)
	if err != nil {
		return wrapError(err.Error(), errorType(err))
	}
	return wrap(result)
}

// errorType maps a failure to its stable categorical label.
func errorType(err error) string {
	var apiErr *scrapebadger.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Category
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return "ValueError"
	}
	return "InternalError"
}

// wrap serializes a success result as pretty-printed JSON under the "data"
// key. A nil result still produces {"data": null}.
func wrap(result any) string {
	payload := map[string]any{"data": result}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return wrapError(fmt.Sprintf("failed to encode result: %v", err), "InternalError")
	}
	return string(data)
}

// wrapError serializes a failure with both the message and its category.
func wrapError(message, label string) string {
	payload := map[string]string{"error": message, "error_type": label}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return `{"error": "failed to encode error", "error_type": "InternalError"}`
	}
	return string(data)
}
