package llm

import "errors"

var (
	// ErrNotConfigured indicates no API key is available for the backend.
	ErrNotConfigured = errors.New("llm backend not configured")

	// ErrUnavailable indicates the completion backend is unreachable.
	ErrUnavailable = errors.New("llm backend unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrBackend indicates the backend answered with an error status.
	ErrBackend = errors.New("llm backend error")
)
