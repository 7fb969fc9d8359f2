package jira

import (
	"errors"
	"fmt"
	"time"
)

// Jira-specific errors.
var (
	// ErrInvalidCursor indicates the cursor format is invalid.
	ErrInvalidCursor = errors.New("jira: invalid cursor format")

	// ErrUnsupportedAPIVersion indicates a search API version other than 2 or 3.
	ErrUnsupportedAPIVersion = errors.New("jira: unsupported API version")
)

// APIError represents a Jira API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// RateLimitError indicates the retry budget was exhausted on 429 responses.
type RateLimitError struct {
	RetryAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("jira: rate limit exceeded, retry after %s", e.RetryAt.Format(time.RFC3339))
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsNotFound checks if the error indicates a missing resource, typically
// a bad base URL or an API version the server does not serve.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}
