package history

import (
	"context"
	"testing"
	"time"

	"vibecheck-backend/internal/models"
)

func record(userID, dayKey string) *models.QuizHistoryRecord {
	return &models.QuizHistoryRecord{
		UserID:  userID,
		DayKey:  dayKey,
		Answers: map[string]string{"1": "a"},
		QuizData: []models.ReflectionQuestion{
			{ID: 1, Question: "q", ChoiceA: "a", ChoiceB: "b"},
		},
		SubmittedAt: time.Now(),
	}
}

func TestMemoryStore_PutAndList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Put(ctx, record("user-1", "2026-08-26"))
	store.Put(ctx, record("user-1", "2026-08-28"))
	store.Put(ctx, record("user-1", "2026-08-27"))
	store.Put(ctx, record("user-2", "2026-08-28"))

	records, err := store.ListAllForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	// Newest day first
	want := []string{"2026-08-28", "2026-08-27", "2026-08-26"}
	for i, rec := range records {
		if rec.DayKey != want[i] {
			t.Errorf("Record %d: expected day %s, got %s", i, want[i], rec.DayKey)
		}
	}
}

func TestMemoryStore_PutReplacesSameDay(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := record("user-1", "2026-08-28")
	store.Put(ctx, first)

	second := record("user-1", "2026-08-28")
	second.Answers = map[string]string{"1": "b"}
	store.Put(ctx, second)

	records, _ := store.ListAllForUser(ctx, "user-1")
	if len(records) != 1 {
		t.Fatalf("Expected 1 record per day, got %d", len(records))
	}
	if records[0].Answers["1"] != "b" {
		t.Errorf("Expected replacement answer, got %q", records[0].Answers["1"])
	}
}

func TestMemoryStore_UnknownUser(t *testing.T) {
	store := NewMemoryStore()

	records, err := store.ListAllForUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}
