package sentiment

import "errors"

var (
	// ErrAlreadyTrained is informational: the service already has a model loaded.
	ErrAlreadyTrained = errors.New("sentiment model already trained")

	// ErrUnavailable indicates the sentiment service is unreachable.
	ErrUnavailable = errors.New("sentiment service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("sentiment request timed out")

	// ErrBadResponse indicates an error status or a malformed body.
	ErrBadResponse = errors.New("unexpected sentiment service response")
)
