package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qforge/qforge-backend/internal/model"
)

type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// List retrieves questions with their topic names, newest first, along
// with the total row count for pagination.
func (r *QuestionRepository) List(ctx context.Context, limit, offset int) ([]model.Question, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM questions`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT q.id, q.question_text, q.question_type, q.difficulty, q.bloom_level,
		        q.marks, q.time_to_solve, q.topic_id, t.name, q.answer, q.explanation,
		        q.options, q.correct_option, q.created_at
		 FROM questions q
		 JOIN topics t ON t.id = q.topic_id
		 ORDER BY q.created_at DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.QuestionType, &q.Difficulty,
			&q.BloomLevel, &q.Marks, &q.TimeToSolve, &q.TopicID, &q.TopicName,
			&q.Answer, &q.Explanation, &q.Options, &q.CorrectOption, &q.CreatedAt); err != nil {
			return nil, 0, err
		}
		questions = append(questions, q)
	}
	return questions, total, rows.Err()
}

// Create inserts a new question.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO questions (question_text, question_type, difficulty, bloom_level,
		                        marks, time_to_solve, topic_id, answer, explanation,
		                        options, correct_option)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at`,
		q.QuestionText, q.QuestionType, q.Difficulty, q.BloomLevel,
		q.Marks, q.TimeToSolve, q.TopicID, q.Answer, q.Explanation,
		q.Options, q.CorrectOption,
	).Scan(&q.ID, &q.CreatedAt)
}
