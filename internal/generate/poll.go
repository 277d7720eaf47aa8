package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"vibecheck-backend/internal/models"
)

// MaxPollQuestions bounds one generation request (the UI slider range).
const MaxPollQuestions = 5

// PollGenerator produces poll questions for a topic and attaches four random
// participant names to each.
type PollGenerator struct {
	runner       *Runner
	participants []string
}

func NewPollGenerator(runner *Runner, participants []string) *PollGenerator {
	return &PollGenerator{runner: runner, participants: participants}
}

// Generate returns exactly numQuestions poll questions. A pool smaller than
// four names is a fatal configuration error and is reported before any model
// call or backoff delay.
func (g *PollGenerator) Generate(ctx context.Context, topic string, numQuestions int) ([]models.PollQuestion, error) {
	if len(g.participants) < models.PollChoiceCount {
		return nil, &ConfigurationError{Message: fmt.Sprintf(
			"participant pool needs at least %d names, have %d", models.PollChoiceCount, len(g.participants))}
	}

	items, err := g.runner.Generate(ctx, BuildPollPrompt(topic, numQuestions), SchemaPoll, numQuestions)
	if err != nil {
		return nil, err
	}
	// Over-producing models are trimmed to the requested count.
	if len(items) > numQuestions {
		items = items[:numQuestions]
	}

	polls := make([]models.PollQuestion, 0, len(items))
	for _, raw := range items {
		var item pollItem
		json.Unmarshal(raw, &item)

		phrase := fmt.Sprintf("Who would vote on [%s]?", topic)
		if item.PollPhrase != nil {
			phrase = *item.PollPhrase
		}

		polls = append(polls, models.PollQuestion{
			Phrase:  phrase,
			Choices: g.sampleChoices(),
		})
	}
	return polls, nil
}

// sampleChoices draws four distinct names uniformly without replacement.
func (g *PollGenerator) sampleChoices() []string {
	idx := rand.Perm(len(g.participants))
	choices := make([]string, models.PollChoiceCount)
	for i := range choices {
		choices[i] = g.participants[idx[i]]
	}
	return choices
}
