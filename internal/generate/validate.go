package generate

import (
	"encoding/json"
	"fmt"
)

// SchemaKind selects which shape the extracted array must match.
type SchemaKind string

const (
	SchemaPoll           SchemaKind = "poll"
	SchemaReflectionQuiz SchemaKind = "reflection_quiz"
)

// pollItem is one model-produced poll entry. The phrase may be absent; the
// poll generator substitutes a topic placeholder rather than failing.
type pollItem struct {
	PollPhrase *string `json:"poll_phrase"`
}

// quizItem is one model-produced reflection question.
type quizItem struct {
	ID       *int    `json:"id"`
	Question *string `json:"question"`
	ChoiceA  *string `json:"choiceA"`
	ChoiceB  *string `json:"choiceB"`
}

// ValidateBatch checks the extracted array against the expected shape. It
// transforms nothing; callers re-decode the items they accept.
func ValidateBatch(items []json.RawMessage, kind SchemaKind, wantCount int) *AttemptError {
	switch kind {
	case SchemaPoll:
		return validatePollBatch(items, wantCount)
	case SchemaReflectionQuiz:
		return validateQuizBatch(items, wantCount)
	default:
		return &AttemptError{Kind: KindSchemaMismatch, Detail: fmt.Sprintf("unknown schema kind %q", kind)}
	}
}

// validatePollBatch requires at least wantCount items; the poll generator
// trims over-production, so an oversized batch is fine, an undersized one
// is not.
func validatePollBatch(items []json.RawMessage, wantCount int) *AttemptError {
	if len(items) == 0 {
		return &AttemptError{Kind: KindSchemaMismatch, Detail: "poll batch is empty"}
	}
	if len(items) < wantCount {
		return mismatch("expected at least %d polls, got %d", wantCount, len(items))
	}
	for i, raw := range items {
		if !isObject(raw) {
			return mismatch("poll item %d is not an object", i)
		}
		var item pollItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return mismatch("poll item %d: %v", i, err)
		}
		// Missing phrase is tolerated; a present phrase must be a non-empty string.
		if item.PollPhrase != nil && *item.PollPhrase == "" {
			return mismatch("poll item %d has an empty phrase", i)
		}
	}
	return nil
}

func validateQuizBatch(items []json.RawMessage, wantCount int) *AttemptError {
	if len(items) != wantCount {
		return mismatch("expected %d questions, got %d", wantCount, len(items))
	}
	seen := make(map[int]bool, len(items))
	for i, raw := range items {
		if !isObject(raw) {
			return mismatch("question %d is not an object", i)
		}
		var item quizItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return mismatch("question %d: %v", i, err)
		}
		switch {
		case item.ID == nil:
			return mismatch("question %d is missing an id", i)
		case item.Question == nil || *item.Question == "":
			return mismatch("question %d is missing question text", i)
		case item.ChoiceA == nil || *item.ChoiceA == "":
			return mismatch("question %d is missing choiceA", i)
		case item.ChoiceB == nil || *item.ChoiceB == "":
			return mismatch("question %d is missing choiceB", i)
		case seen[*item.ID]:
			return mismatch("duplicate question id %d", *item.ID)
		}
		seen[*item.ID] = true
	}
	return nil
}

func mismatch(format string, args ...interface{}) *AttemptError {
	return &AttemptError{Kind: KindSchemaMismatch, Detail: fmt.Sprintf(format, args...)}
}
