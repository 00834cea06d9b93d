package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qforge/qforge-backend/internal/model"
)

var ErrDuplicateGrade = errors.New("grade with this level already exists")

type GradeRepository struct {
	pool *pgxpool.Pool
}

func NewGradeRepository(pool *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{pool: pool}
}

func (r *GradeRepository) GetAll(ctx context.Context) ([]model.Grade, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, level, name FROM grades ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []model.Grade
	for rows.Next() {
		var g model.Grade
		if err := rows.Scan(&g.ID, &g.Level, &g.Name); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

func (r *GradeRepository) Create(ctx context.Context, g *model.Grade) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO grades (level, name) VALUES ($1, $2) RETURNING id`,
		g.Level, g.Name).Scan(&g.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateGrade
		}
		return err
	}
	return nil
}

// GetOrCreate returns the grade with the given level, inserting it with
// the given display name if absent.
func (r *GradeRepository) GetOrCreate(ctx context.Context, level, name string) (*model.Grade, error) {
	g := &model.Grade{}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO grades (level, name) VALUES ($1, $2)
		 ON CONFLICT (level) DO UPDATE SET level = EXCLUDED.level
		 RETURNING id, level, name`,
		level, name).Scan(&g.ID, &g.Level, &g.Name)
	if err != nil {
		return nil, err
	}
	return g, nil
}
