package history

import (
	"context"
	"sort"
	"sync"

	"vibecheck-backend/internal/models"
)

// MemoryStore is the non-persistent fallback tier. Records live for the
// process lifetime only.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]map[string]models.QuizHistoryRecord // userID → dayKey → record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]map[string]models.QuizHistoryRecord)}
}

func (s *MemoryStore) Put(_ context.Context, rec *models.QuizHistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDay, ok := s.records[rec.UserID]
	if !ok {
		byDay = make(map[string]models.QuizHistoryRecord)
		s.records[rec.UserID] = byDay
	}
	byDay[rec.DayKey] = *rec
	return nil
}

func (s *MemoryStore) ListAllForUser(_ context.Context, userID string) ([]models.QuizHistoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []models.QuizHistoryRecord
	for _, rec := range s.records[userID] {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].DayKey > records[j].DayKey
	})
	return records, nil
}
