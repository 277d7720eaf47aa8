package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"vibecheck-backend/internal/generate"
	"vibecheck-backend/internal/models"
)

// PollProvider generates poll questions for a topic.
type PollProvider interface {
	Generate(ctx context.Context, topic string, numQuestions int) ([]models.PollQuestion, error)
}

type PollHandler struct {
	polls  PollProvider
	filter *generate.TopicFilter
	topics []string
}

func NewPollHandler(polls PollProvider, filter *generate.TopicFilter, topics []string) *PollHandler {
	return &PollHandler{polls: polls, filter: filter, topics: topics}
}

// Topics returns the predefined topic list shown in the picker. Custom
// topics are still accepted on generation requests.
func (h *PollHandler) Topics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"topics": h.topics})
}

func (h *PollHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GeneratePollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.Topic == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Pick or enter a topic to vote on", r))
		return
	}
	if req.NumQuestions < 1 || req.NumQuestions > generate.MaxPollQuestions {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "num_questions must be between 1 and 5", r))
		return
	}
	if h.filter.Blocked(req.Topic) {
		writeJSON(w, http.StatusBadRequest, errorResp("TOPIC_BLOCKED", "That topic is not allowed", r))
		return
	}

	polls, err := h.polls.Generate(r.Context(), req.Topic, req.NumQuestions)
	if err != nil {
		handleGenerateError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"polls": polls})
}
