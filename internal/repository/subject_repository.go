package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qforge/qforge-backend/internal/model"
)

var ErrDuplicateSubject = errors.New("subject with this name or code already exists")

type SubjectRepository struct {
	pool *pgxpool.Pool
}

func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

func (r *SubjectRepository) GetAll(ctx context.Context) ([]model.Subject, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, code, description, created_at FROM subjects ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func (r *SubjectRepository) Create(ctx context.Context, s *model.Subject) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO subjects (name, code, description) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		s.Name, s.Code, s.Description).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSubject
		}
		return err
	}
	return nil
}

// GetOrCreate returns the subject with the given name, inserting it with
// the given code if absent. The no-op DO UPDATE makes RETURNING yield the
// existing row, so concurrent callers race safely on the unique name key.
func (r *SubjectRepository) GetOrCreate(ctx context.Context, name, code string) (*model.Subject, error) {
	s := &model.Subject{}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO subjects (name, code) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id, name, code, description, created_at`,
		name, code).Scan(&s.ID, &s.Name, &s.Code, &s.Description, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
