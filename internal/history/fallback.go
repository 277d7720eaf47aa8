package history

import (
	"context"
	"log"

	"vibecheck-backend/internal/models"
)

// FallbackStore tries the primary store and degrades to the fallback on
// error. A primary write failure is logged, not surfaced — the user flow
// continues against the fallback tier.
type FallbackStore struct {
	primary  Store
	fallback Store
}

func NewFallbackStore(primary, fallback Store) *FallbackStore {
	return &FallbackStore{primary: primary, fallback: fallback}
}

func (s *FallbackStore) Put(ctx context.Context, rec *models.QuizHistoryRecord) error {
	if err := s.primary.Put(ctx, rec); err != nil {
		log.Printf("WARNING: primary history store write failed, using fallback: %v", err)
		return s.fallback.Put(ctx, rec)
	}
	return nil
}

func (s *FallbackStore) ListAllForUser(ctx context.Context, userID string) ([]models.QuizHistoryRecord, error) {
	records, err := s.primary.ListAllForUser(ctx, userID)
	if err != nil {
		log.Printf("WARNING: primary history store read failed, using fallback: %v", err)
		return s.fallback.ListAllForUser(ctx, userID)
	}
	return records, nil
}
