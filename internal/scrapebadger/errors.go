// internal/scrapebadger/errors.go
package scrapebadger

import "fmt"

// Error categories surfaced to callers. The MCP envelope reports these as the
// stable "error_type" label, so agents branch on the category rather than the
// message text.
const (
	CategoryAuthentication = "AuthenticationError"
	CategoryRateLimit      = "RateLimitError"
	CategoryNotFound       = "NotFoundError"
	CategoryNetwork        = "NetworkError"
	CategoryAPI            = "ScrapeBadgerError"
)

// APIError is a categorized failure from the ScrapeBadger API.
type APIError struct {
	Category   string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// categorize maps an HTTP status code to a stable error category.
func categorize(status int) string {
	switch {
	case status == 401 || status == 403:
		return CategoryAuthentication
	case status == 404:
		return CategoryNotFound
	case status == 429:
		return CategoryRateLimit
	default:
		return CategoryAPI
	}
}
