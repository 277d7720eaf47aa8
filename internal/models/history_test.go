package models

import "testing"

func TestQuizHistoryRecord_Complete(t *testing.T) {
	questions := []ReflectionQuestion{
		{ID: 1, Question: "q1", ChoiceA: "a", ChoiceB: "b"},
		{ID: 2, Question: "q2", ChoiceA: "a", ChoiceB: "b"},
	}

	tests := []struct {
		name     string
		record   QuizHistoryRecord
		complete bool
	}{
		{
			"all questions answered",
			QuizHistoryRecord{QuizData: questions, Answers: map[string]string{"1": "a", "2": "b"}},
			true,
		},
		{
			"missing answer",
			QuizHistoryRecord{QuizData: questions, Answers: map[string]string{"1": "a"}},
			false,
		},
		{
			"empty answer value",
			QuizHistoryRecord{QuizData: questions, Answers: map[string]string{"1": "a", "2": ""}},
			false,
		},
		{
			"no quiz data",
			QuizHistoryRecord{Answers: map[string]string{"1": "a"}},
			false,
		},
		{
			"extra answers do not matter",
			QuizHistoryRecord{QuizData: questions, Answers: map[string]string{"1": "a", "2": "b", "9": "x"}},
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.record.Complete(); got != tc.complete {
				t.Errorf("Complete() = %v, expected %v", got, tc.complete)
			}
		})
	}
}
