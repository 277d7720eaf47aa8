package models

// PollChoiceCount is the number of participant names attached to every poll
// question. The pool must hold at least this many names.
const PollChoiceCount = 4

type PollQuestion struct {
	Phrase  string   `json:"question_phrase"`
	Choices []string `json:"choices"`
}

type GeneratePollRequest struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"num_questions"`
}
