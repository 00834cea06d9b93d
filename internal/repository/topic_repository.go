package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qforge/qforge-backend/internal/model"
)

type TopicRepository struct {
	pool *pgxpool.Pool
}

func NewTopicRepository(pool *pgxpool.Pool) *TopicRepository {
	return &TopicRepository{pool: pool}
}

// List retrieves topics with their subject and grade names. subjectName
// filters by case-insensitive substring match on the subject name;
// gradeLevel filters by exact grade level. Either may be empty.
func (r *TopicRepository) List(ctx context.Context, subjectName, gradeLevel string) ([]model.Topic, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.name, t.subject_id, t.grade_id, t.chapter_number, t.description,
		        s.name, g.name
		 FROM topics t
		 JOIN subjects s ON s.id = t.subject_id
		 JOIN grades g ON g.id = t.grade_id
		 WHERE ($1 = '' OR s.name ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR g.level = $2)
		 ORDER BY t.id ASC`,
		subjectName, gradeLevel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []model.Topic
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.SubjectID, &t.GradeID, &t.ChapterNumber,
			&t.Description, &t.SubjectName, &t.GradeName); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (r *TopicRepository) Create(ctx context.Context, t *model.Topic) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO topics (name, subject_id, grade_id, chapter_number, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		t.Name, t.SubjectID, t.GradeID, t.ChapterNumber, t.Description).Scan(&t.ID)
}

// GetOrCreate returns the topic with identity (name, subjectID, gradeID),
// inserting it if absent. Safe under concurrent callers: the identity is
// a unique constraint and the no-op DO UPDATE returns the winning row.
func (r *TopicRepository) GetOrCreate(ctx context.Context, name string, subjectID, gradeID int) (*model.Topic, error) {
	t := &model.Topic{}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO topics (name, subject_id, grade_id) VALUES ($1, $2, $3)
		 ON CONFLICT (name, subject_id, grade_id) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id, name, subject_id, grade_id, chapter_number, description`,
		name, subjectID, gradeID).Scan(&t.ID, &t.Name, &t.SubjectID, &t.GradeID,
		&t.ChapterNumber, &t.Description)
	if err != nil {
		return nil, err
	}
	return t, nil
}
