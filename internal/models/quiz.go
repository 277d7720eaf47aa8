package models

// ReflectionQuestionCount is the fixed size of a daily reflection quiz batch.
const ReflectionQuestionCount = 5

// ReflectionQuestion is one binary-choice question of the daily quiz.
// IDs are unique within a batch, starting from 1.
type ReflectionQuestion struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	ChoiceA  string `json:"choiceA"`
	ChoiceB  string `json:"choiceB"`
}

// DailyQuiz is the batch issued for one calendar day. Every request within
// that day sees the same value.
type DailyQuiz struct {
	DayKey    string               `json:"day_key"`
	Topic     string               `json:"topic"`
	Questions []ReflectionQuestion `json:"questions"`
}

type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers"`
}
