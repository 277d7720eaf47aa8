package handlers

import (
	"encoding/json"
	"net/http"

	"vibecheck-backend/internal/generate"
	"vibecheck-backend/internal/models"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// handleGenerateError maps generation errors to user-visible responses.
// Retry detail never reaches the client; configuration problems get an
// actionable setup message.
func handleGenerateError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case generate.IsConfiguration(err):
		writeJSON(w, http.StatusInternalServerError,
			errorResp("CONFIG_ERROR", err.Error(), r))
	case generate.IsGenerationFailed(err):
		writeJSON(w, http.StatusBadGateway,
			errorResp("GENERATION_FAILED", "Could not generate questions. Please try again.", r))
	default:
		writeJSON(w, http.StatusInternalServerError,
			errorResp("INTERNAL_ERROR", "Something went wrong", r))
	}
}
