package generate

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"vibecheck-backend/internal/llm"
)

const (
	maxAttempts = 3
	baseDelay   = time.Second
)

// Runner wraps "call completion API → extract → validate" as one operation
// with bounded retries and exponential backoff. Retryable failures never
// escape; after the final attempt the last one is wrapped in a terminal
// GenerationFailedError. The contract is all-or-nothing per call.
type Runner struct {
	client      llm.Client
	maxAttempts int
	baseDelay   time.Duration

	// Injected for tests.
	sleep  func(time.Duration)
	jitter func() float64
}

func NewRunner(client llm.Client) *Runner {
	return &Runner{
		client:      client,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		sleep:       time.Sleep,
		jitter:      rand.Float64,
	}
}

// Generate runs up to maxAttempts attempts. Before each retry (never before
// the first attempt) it blocks for baseDelay * 2^failedAttempt plus a uniform
// jitter in [0s, 1s).
func (r *Runner) Generate(ctx context.Context, prompt llm.Prompt, kind SchemaKind, wantCount int) ([]json.RawMessage, error) {
	var last *AttemptError
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := r.baseDelay*time.Duration(1<<(attempt-1)) +
				time.Duration(r.jitter() * float64(time.Second))
			log.Printf("generation attempt %d failed (%s), retrying in %v", attempt, last.Kind, delay)
			r.sleep(delay)
		}

		items, attErr := r.attempt(ctx, prompt, kind, wantCount)
		if attErr == nil {
			return items, nil
		}
		last = attErr
	}

	log.Printf("generation failed after %d attempts: %v", r.maxAttempts, last)
	return nil, &GenerationFailedError{Attempts: r.maxAttempts, Last: last}
}

func (r *Runner) attempt(ctx context.Context, prompt llm.Prompt, kind SchemaKind, wantCount int) ([]json.RawMessage, *AttemptError) {
	text, err := r.client.Complete(ctx, prompt)
	if err != nil {
		return nil, &AttemptError{Kind: KindTransport, Detail: "completion API call failed", Err: err}
	}

	items, attErr := ExtractArray(text)
	if attErr != nil {
		return nil, attErr
	}
	if attErr := ValidateBatch(items, kind, wantCount); attErr != nil {
		return nil, attErr
	}
	return items, nil
}
