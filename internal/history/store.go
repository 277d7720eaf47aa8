// Package history persists one quiz record per user per day. The store is a
// best-effort side channel: when the primary backend is unreachable the
// service degrades to session-local storage instead of failing the flow.
package history

import (
	"context"

	"vibecheck-backend/internal/models"
)

type Store interface {
	// Put inserts or replaces the record for (user, day).
	Put(ctx context.Context, rec *models.QuizHistoryRecord) error
	// ListAllForUser returns the user's records, newest day first.
	ListAllForUser(ctx context.Context, userID string) ([]models.QuizHistoryRecord, error)
}
