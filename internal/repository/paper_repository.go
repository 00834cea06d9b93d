package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qforge/qforge-backend/internal/model"
)

var ErrPaperNotFound = errors.New("question paper not found")

type PaperRepository struct {
	pool *pgxpool.Pool
}

func NewPaperRepository(pool *pgxpool.Pool) *PaperRepository {
	return &PaperRepository{pool: pool}
}

// Create inserts a new question paper row.
func (r *PaperRepository) Create(ctx context.Context, p *model.QuestionPaper) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO question_papers (title, subject_id, grade_id, total_marks, duration_minutes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, instructions, created_at`,
		p.Title, p.SubjectID, p.GradeID, p.TotalMarks, p.DurationMinutes,
	).Scan(&p.ID, &p.Instructions, &p.CreatedAt)
}

// AddQuestion links a question to a paper at the given section and order.
func (r *PaperRepository) AddQuestion(ctx context.Context, paperID, questionID uuid.UUID, section string, orderNum int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO question_paper_questions (paper_id, question_id, section, order_num)
		 VALUES ($1, $2, $3, $4)`,
		paperID, questionID, section, orderNum)
	return err
}

// GetByID retrieves a paper with its questions in section/order sequence.
func (r *PaperRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.QuestionPaper, error) {
	p := &model.QuestionPaper{}
	err := r.pool.QueryRow(ctx,
		`SELECT p.id, p.title, p.subject_id, p.grade_id, s.name, g.name,
		        p.total_marks, p.duration_minutes, p.instructions, p.created_at
		 FROM question_papers p
		 JOIN subjects s ON s.id = p.subject_id
		 JOIN grades g ON g.id = p.grade_id
		 WHERE p.id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.SubjectID, &p.GradeID, &p.SubjectName, &p.GradeName,
		&p.TotalMarks, &p.DurationMinutes, &p.Instructions, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaperNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT q.id, q.question_text, q.question_type, q.difficulty, q.bloom_level,
		        q.marks, q.time_to_solve, q.topic_id, t.name, q.answer, q.explanation,
		        q.options, q.correct_option, q.created_at, pq.section, pq.order_num
		 FROM question_paper_questions pq
		 JOIN questions q ON q.id = pq.question_id
		 JOIN topics t ON t.id = q.topic_id
		 WHERE pq.paper_id = $1
		 ORDER BY pq.section, pq.order_num`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	p.Questions = []model.PaperQuestion{}
	for rows.Next() {
		var pq model.PaperQuestion
		if err := rows.Scan(&pq.ID, &pq.QuestionText, &pq.QuestionType, &pq.Difficulty,
			&pq.BloomLevel, &pq.Marks, &pq.TimeToSolve, &pq.TopicID, &pq.TopicName,
			&pq.Answer, &pq.Explanation, &pq.Options, &pq.CorrectOption, &pq.CreatedAt,
			&pq.Section, &pq.OrderNum); err != nil {
			return nil, err
		}
		p.Questions = append(p.Questions, pq)
	}
	return p, rows.Err()
}
