package generate

import (
	"errors"
	"fmt"
)

// FailKind tags one attempt's failure so the retry loop can branch on kind
// instead of inspecting error strings.
type FailKind string

const (
	KindEmptyResponse    FailKind = "empty_response"
	KindExtractionFailed FailKind = "extraction_failed"
	KindNoArrayFound     FailKind = "no_array_found"
	KindSchemaMismatch   FailKind = "schema_mismatch"
	KindTransport        FailKind = "transport_error"
)

// AttemptError is a retryable failure of a single generation attempt. It
// never escapes the retry loop except as the Last field of a
// GenerationFailedError.
type AttemptError struct {
	Kind   FailKind
	Detail string
	Err    error
}

func (e *AttemptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *AttemptError) Unwrap() error { return e.Err }

// GenerationFailedError is the terminal error raised after retries are
// exhausted. Callers surface a generic message, not the attempt detail.
type GenerationFailedError struct {
	Attempts int
	Last     *AttemptError
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("generation failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *GenerationFailedError) Unwrap() error { return e.Last }

// ConfigurationError is fatal and never retried: a missing credential, a
// participant pool that is too small, and the like.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// IsGenerationFailed reports whether err is a terminal generation failure.
func IsGenerationFailed(err error) bool {
	var ge *GenerationFailedError
	return errors.As(err, &ge)
}

// IsConfiguration reports whether err is a fatal configuration error.
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
