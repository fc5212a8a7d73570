// mcp/tools/args.go
package tools

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError reports caller-supplied arguments that fail a tool's
// declared schema. It is always recoverable.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// validateArgs checks raw arguments against the tool's InputSchema. Failures
// name the offending field so agents can distinguish bad input from downstream
// errors.
func validateArgs(def Definition, args map[string]any) error {
	schemaLoader := gojsonschema.NewGoLoader(def.InputSchema)
	documentLoader := gojsonschema.NewGoLoader(args)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return &ValidationError{Message: fmt.Sprintf("invalid arguments for %s: %s", def.Name, strings.Join(errs, ", "))}
}

// stringArg returns the named string argument, or "" when absent.
func stringArg(args map[string]any, name string) string {
	if v, ok := args[name].(string); ok {
		return v
	}
	return ""
}

// intArg returns the named integer argument, applying fallback when absent.
// JSON numbers arrive as float64; config-driven callers may pass native ints.
func intArg(args map[string]any, name string, fallback int) int {
	switch v := args[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}
