package generate

import (
	"fmt"
	"strings"

	"vibecheck-backend/internal/llm"
	"vibecheck-backend/internal/models"
)

// BuildPollPrompt asks for casual "who would..." poll phrases on a topic.
func BuildPollPrompt(topic string, numQuestions int) llm.Prompt {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(
		"Create %d fun, casual poll questions for the topic '%s'.\n", numQuestions, topic))
	b.WriteString("Each question must be a single phrase in the form \"Who seems most likely to ...?\", ")
	b.WriteString("\"Who would never ...?\" or \"Who always ...?\". ")
	b.WriteString("Be specific: for the topic 'lunch menu' a good phrase is \"Who always knows what's for lunch today?\".\n\n")

	b.WriteString(`Output must be a JSON array with this shape:
[
  {"poll_phrase": "..."}
]
Return ONLY the valid JSON array, nothing else.
`)

	return llm.Prompt{
		System: "You are an expert at writing poll questions that boost fun and friendship " +
			"between users aged 13 to 18. Your output must follow the provided JSON shape exactly.",
		User:        b.String(),
		Temperature: 0.8,
		MaxTokens:   500,
	}
}

// BuildReflectionPrompt asks for the fixed-size daily reflection quiz.
func BuildReflectionPrompt(topic string) llm.Prompt {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(
		"Generate a reflection quiz of exactly %d questions about the topic '%s'.\n", models.ReflectionQuestionCount, topic))
	b.WriteString("Every question offers exactly two answer choices. There are no right answers; ")
	b.WriteString("each choice should reveal something about the person answering.\n\n")

	b.WriteString(fmt.Sprintf(`JSON schema per question:
{"id": int, "question": "string", "choiceA": "string", "choiceB": "string"}

IDs must be unique, starting from 1. Return ONLY a valid JSON array of %d such objects.
`, models.ReflectionQuestionCount))

	return llm.Prompt{
		System: "You are a reflection quiz generator for a teen social app. " +
			"You create light, thoughtful either/or questions and respond with strictly valid JSON.",
		User:        b.String(),
		Temperature: 0.7,
		MaxTokens:   1024,
		WantJSON:    true,
	}
}
