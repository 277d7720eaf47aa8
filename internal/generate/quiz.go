package generate

import (
	"context"
	"encoding/json"
	"time"

	"vibecheck-backend/internal/cache"
	"vibecheck-backend/internal/models"
)

// quizTTL keeps a generated batch for one calendar day. The day key changes
// at local midnight, so a stale entry is never served.
const quizTTL = 24 * time.Hour

// QuizGenerator produces the daily reflection quiz. The batch is memoized
// per day key so repeated requests within the same day return the same
// questions without another model call.
type QuizGenerator struct {
	runner *Runner
	cache  cache.Cache
	topics []string
	loc    *time.Location

	now func() time.Time
}

func NewQuizGenerator(runner *Runner, c cache.Cache, topics []string, loc *time.Location) *QuizGenerator {
	return &QuizGenerator{
		runner: runner,
		cache:  c,
		topics: topics,
		loc:    loc,
		now:    time.Now,
	}
}

// Today returns the quiz for the current calendar day, generating it on the
// first request of the day.
func (g *QuizGenerator) Today(ctx context.Context) (models.DailyQuiz, error) {
	if len(g.topics) == 0 {
		return models.DailyQuiz{}, &ConfigurationError{Message: "no quiz topics configured"}
	}

	now := g.now().In(g.loc)
	dayKey := now.Format("2006-01-02")

	return g.cache.GetOrCompute(ctx, dayKey, quizTTL, func(ctx context.Context) (models.DailyQuiz, error) {
		topic := g.topicFor(now)
		return g.generate(ctx, dayKey, topic)
	})
}

func (g *QuizGenerator) generate(ctx context.Context, dayKey, topic string) (models.DailyQuiz, error) {
	items, err := g.runner.Generate(ctx, BuildReflectionPrompt(topic), SchemaReflectionQuiz, models.ReflectionQuestionCount)
	if err != nil {
		return models.DailyQuiz{}, err
	}

	questions := make([]models.ReflectionQuestion, 0, len(items))
	for _, raw := range items {
		var q models.ReflectionQuestion
		json.Unmarshal(raw, &q)
		questions = append(questions, q)
	}

	return models.DailyQuiz{DayKey: dayKey, Topic: topic, Questions: questions}, nil
}

// topicFor rotates through the configured topics, one per day.
func (g *QuizGenerator) topicFor(now time.Time) string {
	day := now.Unix() / 86400
	return g.topics[int(day%int64(len(g.topics)))]
}
