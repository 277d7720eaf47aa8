package history

import (
	"context"
	"errors"
	"testing"

	"vibecheck-backend/internal/models"
)

// failingStore simulates an unreachable primary backend.
type failingStore struct {
	puts  int
	lists int
}

func (s *failingStore) Put(context.Context, *models.QuizHistoryRecord) error {
	s.puts++
	return errors.New("connection refused")
}

func (s *failingStore) ListAllForUser(context.Context, string) ([]models.QuizHistoryRecord, error) {
	s.lists++
	return nil, errors.New("connection refused")
}

func TestFallbackStore_DegradesOnPutFailure(t *testing.T) {
	primary := &failingStore{}
	fallback := NewMemoryStore()
	store := NewFallbackStore(primary, fallback)
	ctx := context.Background()

	if err := store.Put(ctx, record("user-1", "2026-08-28")); err != nil {
		t.Fatalf("Expected degraded write to succeed, got %v", err)
	}
	if primary.puts != 1 {
		t.Errorf("Expected primary attempted once, got %d", primary.puts)
	}

	records, _ := fallback.ListAllForUser(ctx, "user-1")
	if len(records) != 1 {
		t.Errorf("Expected record in fallback store, got %d", len(records))
	}
}

func TestFallbackStore_DegradesOnListFailure(t *testing.T) {
	primary := &failingStore{}
	fallback := NewMemoryStore()
	store := NewFallbackStore(primary, fallback)
	ctx := context.Background()

	fallback.Put(ctx, record("user-1", "2026-08-28"))

	records, err := store.ListAllForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("Expected degraded read to succeed, got %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Expected 1 record from fallback, got %d", len(records))
	}
}

func TestFallbackStore_PrefersPrimary(t *testing.T) {
	primary := NewMemoryStore()
	fallback := NewMemoryStore()
	store := NewFallbackStore(primary, fallback)
	ctx := context.Background()

	store.Put(ctx, record("user-1", "2026-08-28"))

	records, _ := primary.ListAllForUser(ctx, "user-1")
	if len(records) != 1 {
		t.Errorf("Expected record written to primary, got %d", len(records))
	}
	records, _ = fallback.ListAllForUser(ctx, "user-1")
	if len(records) != 0 {
		t.Errorf("Expected fallback untouched, got %d records", len(records))
	}
}
