package history

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"vibecheck-backend/internal/models"
)

// PostgresStore keys records by (app_id, user_id, day_key); the upsert keeps
// at most one record per user per day.
type PostgresStore struct {
	pool  *pgxpool.Pool
	appID string
}

func NewPostgresStore(pool *pgxpool.Pool, appID string) *PostgresStore {
	return &PostgresStore{pool: pool, appID: appID}
}

func (s *PostgresStore) Put(ctx context.Context, rec *models.QuizHistoryRecord) error {
	answers, _ := json.Marshal(rec.Answers)
	quizData, _ := json.Marshal(rec.QuizData)

	query := `INSERT INTO quiz_history (app_id, user_id, day_key, answers, quiz_data, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (app_id, user_id, day_key)
		DO UPDATE SET answers = $4, quiz_data = $5, submitted_at = $6`

	_, err := s.pool.Exec(ctx, query,
		s.appID, rec.UserID, rec.DayKey, answers, quizData, rec.SubmittedAt)
	return err
}

func (s *PostgresStore) ListAllForUser(ctx context.Context, userID string) ([]models.QuizHistoryRecord, error) {
	query := `SELECT user_id, day_key, answers, quiz_data, submitted_at
		FROM quiz_history WHERE app_id = $1 AND user_id = $2 ORDER BY day_key DESC`

	rows, err := s.pool.Query(ctx, query, s.appID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.QuizHistoryRecord
	for rows.Next() {
		var rec models.QuizHistoryRecord
		var answers, quizData []byte
		if err := rows.Scan(&rec.UserID, &rec.DayKey, &answers, &quizData, &rec.SubmittedAt); err != nil {
			return nil, err
		}
		json.Unmarshal(answers, &rec.Answers)
		json.Unmarshal(quizData, &rec.QuizData)
		records = append(records, rec)
	}
	return records, rows.Err()
}
