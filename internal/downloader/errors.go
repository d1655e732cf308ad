package downloader

import (
	"context"
	"errors"
	"strings"
)

// Category tags a download failure well enough to pick a user-facing
// message without leaking yt-dlp internals into the chat.
type Category string

const (
	CategoryAuthRequired Category = "auth_required"
	CategoryNotFound     Category = "not_found"
	CategoryUnsupported  Category = "unsupported_url"
	CategoryTimeout      Category = "timeout"
	CategoryNetwork      Category = "network"
	CategoryExtraction   Category = "extraction"
)

// Error is the only error type Download returns. Callers switch on Category;
// the wrapped error stays in the logs.
type Error struct {
	Category Category
	Err      error
}

func (e *Error) Error() string {
	return string(e.Category) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Categorize classifies a yt-dlp failure from its stderr output and the exec
// error. The stderr phrases match what yt-dlp's Instagram extractor emits.
func Categorize(stderr string, err error) Category {
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}

	lower := strings.ToLower(stderr)
	switch {
	case strings.Contains(lower, "login required") ||
		strings.Contains(lower, "rate-limit reached") ||
		strings.Contains(lower, "requested content is not available"):
		return CategoryAuthRequired
	case strings.Contains(lower, "unsupported url"):
		return CategoryUnsupported
	case strings.Contains(lower, "404") ||
		strings.Contains(lower, "not found") ||
		strings.Contains(lower, "no video formats found"):
		return CategoryNotFound
	case strings.Contains(lower, "unable to download") ||
		strings.Contains(lower, "connection") ||
		strings.Contains(lower, "timed out"):
		return CategoryNetwork
	}
	return CategoryExtraction
}
