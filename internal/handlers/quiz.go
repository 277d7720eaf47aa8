package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"vibecheck-backend/internal/history"
	"vibecheck-backend/internal/middleware"
	"vibecheck-backend/internal/models"
)

// DailyQuizProvider returns the memoized quiz for the current day.
type DailyQuizProvider interface {
	Today(ctx context.Context) (models.DailyQuiz, error)
}

type QuizHandler struct {
	quiz  DailyQuizProvider
	store history.Store
}

func NewQuizHandler(quiz DailyQuizProvider, store history.Store) *QuizHandler {
	return &QuizHandler{quiz: quiz, store: store}
}

func (h *QuizHandler) Today(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.quiz.Today(r.Context())
	if err != nil {
		handleGenerateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

// Submit stores today's answers. The answer map must cover every question of
// today's quiz; partial submissions are rejected.
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	quiz, err := h.quiz.Today(r.Context())
	if err != nil {
		handleGenerateError(w, r, err)
		return
	}

	rec := &models.QuizHistoryRecord{
		UserID:      middleware.GetSessionID(r.Context()),
		DayKey:      quiz.DayKey,
		Answers:     req.Answers,
		QuizData:    quiz.Questions,
		SubmittedAt: time.Now(),
	}
	if !rec.Complete() {
		writeJSON(w, http.StatusBadRequest,
			errorResp("VALIDATION_ERROR", "Answer every question before submitting", r))
		return
	}

	if err := h.store.Put(r.Context(), rec); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save answers", r))
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *QuizHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListAllForUser(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch history", r))
		return
	}
	if records == nil {
		records = []models.QuizHistoryRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}
