package models

import (
	"strconv"
	"time"
)

// QuizHistoryRecord stores one user's answers to one day's quiz. The day key
// is the natural primary key: at most one completed quiz per user per day.
type QuizHistoryRecord struct {
	UserID      string               `json:"user_id"`
	DayKey      string               `json:"day_key"`
	Answers     map[string]string    `json:"answers"`
	QuizData    []ReflectionQuestion `json:"quiz_data"`
	SubmittedAt time.Time            `json:"submitted_at"`
}

// Complete reports whether every question in QuizData has a non-empty answer.
// Incomplete records must not be persisted.
func (r *QuizHistoryRecord) Complete() bool {
	if len(r.QuizData) == 0 {
		return false
	}
	for _, q := range r.QuizData {
		if r.Answers[strconv.Itoa(q.ID)] == "" {
			return false
		}
	}
	return true
}
