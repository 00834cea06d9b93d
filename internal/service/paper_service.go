package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/qforge/qforge-backend/internal/config"
	"github.com/qforge/qforge-backend/internal/generator"
	"github.com/qforge/qforge-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DefaultSection is the section label assigned to generated questions.
const DefaultSection = "A"

// QuestionSource produces validated question records for a paper request.
// It never fails; see generator.Generator.
type QuestionSource interface {
	Generate(ctx context.Context, req *model.GeneratePaperRequest) []generator.QuestionRecord
}

// SubjectStore is the subject persistence surface the assembler needs.
type SubjectStore interface {
	GetOrCreate(ctx context.Context, name, code string) (*model.Subject, error)
}

// GradeStore is the grade persistence surface the assembler needs.
type GradeStore interface {
	GetOrCreate(ctx context.Context, level, name string) (*model.Grade, error)
}

// TopicStore is the topic persistence surface the assembler needs.
type TopicStore interface {
	GetOrCreate(ctx context.Context, name string, subjectID, gradeID int) (*model.Topic, error)
}

// QuestionStore is the question persistence surface the assembler needs.
type QuestionStore interface {
	Create(ctx context.Context, q *model.Question) error
}

// PaperStore is the paper persistence surface the assembler needs.
type PaperStore interface {
	Create(ctx context.Context, p *model.QuestionPaper) error
	AddQuestion(ctx context.Context, paperID, questionID uuid.UUID, section string, orderNum int) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.QuestionPaper, error)
}

// PaperService assembles and persists question papers. Failures while
// persisting a single question are logged and skipped; they never abort
// the paper. Papers are immutable once created, so reads go through a
// Redis payload cache.
type PaperService struct {
	subjects  SubjectStore
	grades    GradeStore
	topics    TopicStore
	questions QuestionStore
	papers    PaperStore
	source    QuestionSource
	rdb       *redis.Client
	log       zerolog.Logger
}

func NewPaperService(
	subjects SubjectStore,
	grades GradeStore,
	topics TopicStore,
	questions QuestionStore,
	papers PaperStore,
	source QuestionSource,
	rdb *redis.Client,
	log zerolog.Logger,
) *PaperService {
	return &PaperService{
		subjects:  subjects,
		grades:    grades,
		topics:    topics,
		questions: questions,
		papers:    papers,
		source:    source,
		rdb:       rdb,
		log:       log.With().Str("component", "paper_service").Logger(),
	}
}

// GeneratePaper runs the full pipeline for one request: subject/grade
// lookup-or-create, question generation, paper creation, and per-record
// question persistence with dense 1..N ordering over the questions that
// actually made it in.
func (s *PaperService) GeneratePaper(ctx context.Context, req *model.GeneratePaperRequest) (*model.QuestionPaper, error) {
	subject, err := s.subjects.GetOrCreate(ctx, req.Subject, SubjectCode(req.Subject))
	if err != nil {
		return nil, fmt.Errorf("get or create subject: %w", err)
	}

	grade, err := s.grades.GetOrCreate(ctx, req.Grade, fmt.Sprintf("Grade %s", req.Grade))
	if err != nil {
		return nil, fmt.Errorf("get or create grade: %w", err)
	}

	records := s.source.Generate(ctx, req)

	paper := &model.QuestionPaper{
		Title:           fmt.Sprintf("%s - Grade %s Question Paper", req.Subject, req.Grade),
		SubjectID:       subject.ID,
		GradeID:         grade.ID,
		TotalMarks:      req.TotalMarks,
		DurationMinutes: req.Duration,
	}
	if err := s.papers.Create(ctx, paper); err != nil {
		return nil, fmt.Errorf("create paper: %w", err)
	}

	orderNum := 0
	for i := range records {
		if err := s.attachQuestion(ctx, paper.ID, subject.ID, grade.ID, &records[i], orderNum+1); err != nil {
			s.log.Warn().Err(err).
				Int("index", i).
				Str("paper_id", paper.ID.String()).
				Msg("Skipping question that failed to persist")
			continue
		}
		orderNum++
	}

	full, err := s.papers.GetByID(ctx, paper.ID)
	if err != nil {
		return nil, fmt.Errorf("load paper: %w", err)
	}

	s.cachePaper(ctx, full)

	s.log.Info().
		Str("paper_id", full.ID.String()).
		Int("requested", len(records)).
		Int("persisted", orderNum).
		Msg("Question paper generated")
	return full, nil
}

// attachQuestion persists one record's topic and question rows and links
// the question to the paper. Any failure is reported to the caller, which
// skips the record and moves on.
func (s *PaperService) attachQuestion(ctx context.Context, paperID uuid.UUID, subjectID, gradeID int, rec *generator.QuestionRecord, orderNum int) error {
	topic, err := s.topics.GetOrCreate(ctx, rec.TopicName, subjectID, gradeID)
	if err != nil {
		return fmt.Errorf("get or create topic: %w", err)
	}

	q := &model.Question{
		QuestionText: rec.QuestionText,
		QuestionType: rec.QuestionType,
		Difficulty:   rec.Difficulty,
		BloomLevel:   "2",
		Marks:        rec.Marks,
		TimeToSolve:  2,
		TopicID:      topic.ID,
		Answer:       rec.Answer,
	}
	if rec.QuestionType == model.QuestionTypeMCQ {
		options, err := json.Marshal(rec.Options)
		if err != nil {
			return fmt.Errorf("marshal options: %w", err)
		}
		q.Options = options
		q.CorrectOption = rec.CorrectOption
	}

	if err := s.questions.Create(ctx, q); err != nil {
		return fmt.Errorf("create question: %w", err)
	}

	if err := s.papers.AddQuestion(ctx, paperID, q.ID, DefaultSection, orderNum); err != nil {
		return fmt.Errorf("link question to paper: %w", err)
	}
	return nil
}

// GetPaper serves a paper from the Redis cache, falling back to the
// database (and re-caching) on a miss.
func (s *PaperService) GetPaper(ctx context.Context, id uuid.UUID) (*model.QuestionPaper, error) {
	if s.rdb != nil {
		data, err := s.rdb.Get(ctx, config.CacheKey.PaperPayloadKey(id.String())).Bytes()
		if err == nil {
			var paper model.QuestionPaper
			if err := json.Unmarshal(data, &paper); err == nil {
				return &paper, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Msg("Paper cache read failed")
		}
	}

	paper, err := s.papers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cachePaper(ctx, paper)
	return paper, nil
}

// cachePaper stores the serialized paper in Redis. Papers never change
// after creation, so the entry has no TTL. Cache failures are logged and
// ignored.
func (s *PaperService) cachePaper(ctx context.Context, paper *model.QuestionPaper) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(paper)
	if err != nil {
		s.log.Warn().Err(err).Msg("Paper cache marshal failed")
		return
	}
	if err := s.rdb.Set(ctx, config.CacheKey.PaperPayloadKey(paper.ID.String()), payload, 0).Err(); err != nil {
		s.log.Warn().Err(err).Str("paper_id", paper.ID.String()).Msg("Paper cache write failed")
	}
}

// SubjectCode derives a default subject code: the first three letters of
// the name, uppercased. Slices runes so multibyte names stay valid UTF-8.
func SubjectCode(name string) string {
	code := []rune(name)
	if len(code) > 3 {
		code = code[:3]
	}
	return strings.ToUpper(string(code))
}
