package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/qforge/qforge-backend/internal/generator"
	"github.com/qforge/qforge-backend/internal/model"
	"github.com/rs/zerolog"
)

type fakeSubjectStore struct {
	subjects map[string]*model.Subject
	nextID   int
}

func (f *fakeSubjectStore) GetOrCreate(_ context.Context, name, code string) (*model.Subject, error) {
	if f.subjects == nil {
		f.subjects = map[string]*model.Subject{}
	}
	if s, ok := f.subjects[name]; ok {
		return s, nil
	}
	f.nextID++
	s := &model.Subject{ID: f.nextID, Name: name, Code: code}
	f.subjects[name] = s
	return s, nil
}

type fakeGradeStore struct {
	grades map[string]*model.Grade
	nextID int
}

func (f *fakeGradeStore) GetOrCreate(_ context.Context, level, name string) (*model.Grade, error) {
	if f.grades == nil {
		f.grades = map[string]*model.Grade{}
	}
	if g, ok := f.grades[level]; ok {
		return g, nil
	}
	f.nextID++
	g := &model.Grade{ID: f.nextID, Level: level, Name: name}
	f.grades[level] = g
	return g, nil
}

type fakeTopicStore struct {
	topics map[string]*model.Topic
	nextID int
}

func (f *fakeTopicStore) GetOrCreate(_ context.Context, name string, subjectID, gradeID int) (*model.Topic, error) {
	if f.topics == nil {
		f.topics = map[string]*model.Topic{}
	}
	key := fmt.Sprintf("%s/%d/%d", name, subjectID, gradeID)
	if t, ok := f.topics[key]; ok {
		return t, nil
	}
	f.nextID++
	t := &model.Topic{ID: f.nextID, Name: name, SubjectID: subjectID, GradeID: gradeID}
	f.topics[key] = t
	return t, nil
}

type fakeQuestionStore struct {
	created []*model.Question
	byID    map[uuid.UUID]*model.Question
	// failAt holds zero-based call indexes that should fail.
	failAt map[int]bool
	calls  int
}

func (f *fakeQuestionStore) Create(_ context.Context, q *model.Question) error {
	idx := f.calls
	f.calls++
	if f.failAt[idx] {
		return errors.New("insert failed")
	}
	q.ID = uuid.New()
	f.created = append(f.created, q)
	f.byID[q.ID] = q
	return nil
}

type paperLink struct {
	questionID uuid.UUID
	section    string
	orderNum   int
}

type fakePaperStore struct {
	papers map[uuid.UUID]*model.QuestionPaper
	links  map[uuid.UUID][]paperLink
	byID   map[uuid.UUID]*model.Question
}

func newFakePaperStore() *fakePaperStore {
	return &fakePaperStore{
		papers: map[uuid.UUID]*model.QuestionPaper{},
		links:  map[uuid.UUID][]paperLink{},
		byID:   map[uuid.UUID]*model.Question{},
	}
}

func (f *fakePaperStore) Create(_ context.Context, p *model.QuestionPaper) error {
	p.ID = uuid.New()
	p.Instructions = "Answer all questions. Read each question carefully."
	f.papers[p.ID] = p
	return nil
}

func (f *fakePaperStore) AddQuestion(_ context.Context, paperID, questionID uuid.UUID, section string, orderNum int) error {
	if _, ok := f.papers[paperID]; !ok {
		return errors.New("paper not found")
	}
	f.links[paperID] = append(f.links[paperID], paperLink{questionID, section, orderNum})
	return nil
}

func (f *fakePaperStore) GetByID(_ context.Context, id uuid.UUID) (*model.QuestionPaper, error) {
	stored, ok := f.papers[id]
	if !ok {
		return nil, errors.New("paper not found")
	}
	paper := *stored
	paper.Questions = []model.PaperQuestion{}
	for _, link := range f.links[id] {
		q, ok := f.byID[link.questionID]
		if !ok {
			return nil, errors.New("question not found")
		}
		paper.Questions = append(paper.Questions, model.PaperQuestion{
			Question: *q,
			Section:  link.section,
			OrderNum: link.orderNum,
		})
	}
	return &paper, nil
}

type stubSource struct {
	records []generator.QuestionRecord
}

func (s *stubSource) Generate(_ context.Context, _ *model.GeneratePaperRequest) []generator.QuestionRecord {
	return s.records
}

func testRequest() *model.GeneratePaperRequest {
	return &model.GeneratePaperRequest{
		Grade:      "5",
		Subject:    "Math",
		Topics:     []string{"Fractions", "Decimals"},
		TotalMarks: 20,
		Duration:   60,
	}
}

func newTestPaperService(questions *fakeQuestionStore, papers *fakePaperStore, source QuestionSource) (*PaperService, *fakeSubjectStore, *fakeGradeStore, *fakeTopicStore) {
	questions.byID = papers.byID
	subjects := &fakeSubjectStore{}
	grades := &fakeGradeStore{}
	topics := &fakeTopicStore{}
	svc := NewPaperService(subjects, grades, topics, questions, papers, source, nil, zerolog.Nop())
	return svc, subjects, grades, topics
}

func TestGeneratePaper_FullPipeline(t *testing.T) {
	records := generator.Synthesize("Math", []string{"Fractions", "Decimals"}, 4)

	questions := &fakeQuestionStore{}
	papers := newFakePaperStore()
	svc, subjects, grades, topics := newTestPaperService(questions, papers, &stubSource{records: records})

	paper, err := svc.GeneratePaper(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("GeneratePaper returned error: %v", err)
	}

	if paper.Title != "Math - Grade 5 Question Paper" {
		t.Errorf("unexpected title %q", paper.Title)
	}
	if paper.TotalMarks != 20 || paper.DurationMinutes != 60 {
		t.Errorf("unexpected marks/duration %d/%d", paper.TotalMarks, paper.DurationMinutes)
	}
	if len(subjects.subjects) != 1 || len(grades.grades) != 1 {
		t.Errorf("expected one subject and one grade, got %d/%d", len(subjects.subjects), len(grades.grades))
	}
	if len(topics.topics) != 2 {
		t.Errorf("expected 2 distinct topics, got %d", len(topics.topics))
	}
	if len(questions.created) != 4 {
		t.Fatalf("expected 4 questions persisted, got %d", len(questions.created))
	}

	links := papers.links[paper.ID]
	if len(links) != 4 {
		t.Fatalf("expected 4 paper links, got %d", len(links))
	}
	for i, link := range links {
		if link.section != DefaultSection {
			t.Errorf("link %d: expected section %q, got %q", i, DefaultSection, link.section)
		}
		if link.orderNum != i+1 {
			t.Errorf("link %d: expected order %d, got %d", i, i+1, link.orderNum)
		}
	}
}

func TestGeneratePaper_DenseOrderAfterSkip(t *testing.T) {
	records := generator.Synthesize("Math", []string{"Fractions"}, 5)

	// The second question insert fails; its record is skipped.
	questions := &fakeQuestionStore{failAt: map[int]bool{1: true}}
	papers := newFakePaperStore()
	svc, _, _, _ := newTestPaperService(questions, papers, &stubSource{records: records})

	paper, err := svc.GeneratePaper(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("GeneratePaper returned error: %v", err)
	}

	links := papers.links[paper.ID]
	if len(links) != 4 {
		t.Fatalf("expected 4 persisted questions after one skip, got %d", len(links))
	}
	for i, link := range links {
		if link.orderNum != i+1 {
			t.Errorf("link %d: expected dense order %d, got %d", i, i+1, link.orderNum)
		}
	}
}

func TestGeneratePaper_ReusesCatalogRows(t *testing.T) {
	records := generator.Synthesize("Math", []string{"Fractions"}, 3)

	questions := &fakeQuestionStore{}
	papers := newFakePaperStore()
	svc, subjects, grades, topics := newTestPaperService(questions, papers, &stubSource{records: records})

	if _, err := svc.GeneratePaper(context.Background(), testRequest()); err != nil {
		t.Fatalf("first GeneratePaper returned error: %v", err)
	}
	if _, err := svc.GeneratePaper(context.Background(), testRequest()); err != nil {
		t.Fatalf("second GeneratePaper returned error: %v", err)
	}

	if len(subjects.subjects) != 1 {
		t.Errorf("subject should be reused across papers, got %d rows", len(subjects.subjects))
	}
	if len(grades.grades) != 1 {
		t.Errorf("grade should be reused across papers, got %d rows", len(grades.grades))
	}
	if len(topics.topics) != 1 {
		t.Errorf("topic should be reused across papers, got %d rows", len(topics.topics))
	}
}

func TestGeneratePaper_MCQOptionsPersisted(t *testing.T) {
	records := generator.Synthesize("Math", []string{"Algebra"}, 1)

	questions := &fakeQuestionStore{}
	papers := newFakePaperStore()
	svc, _, _, _ := newTestPaperService(questions, papers, &stubSource{records: records})

	if _, err := svc.GeneratePaper(context.Background(), testRequest()); err != nil {
		t.Fatalf("GeneratePaper returned error: %v", err)
	}

	q := questions.created[0]
	if q.QuestionType != model.QuestionTypeMCQ {
		t.Fatalf("expected mcq, got %s", q.QuestionType)
	}
	if len(q.Options) == 0 {
		t.Error("mcq options should be serialized")
	}
	if q.CorrectOption != "A" {
		t.Errorf("expected correct option A, got %q", q.CorrectOption)
	}
	if q.BloomLevel != "2" || q.TimeToSolve != 2 {
		t.Errorf("unexpected defaults bloom=%q time=%d", q.BloomLevel, q.TimeToSolve)
	}
}

func TestGeneratePaper_EmptyBatch(t *testing.T) {
	questions := &fakeQuestionStore{}
	papers := newFakePaperStore()
	svc, _, _, _ := newTestPaperService(questions, papers, &stubSource{})

	paper, err := svc.GeneratePaper(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("GeneratePaper returned error: %v", err)
	}
	if len(paper.Questions) != 0 {
		t.Errorf("expected paper with no questions, got %d", len(paper.Questions))
	}
	if paper.ID == uuid.Nil {
		t.Error("paper should still be created")
	}
}

func TestSubjectCode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Math", "MAT"},
		{"Science", "SCI"},
		{"PE", "PE"},
		{"history", "HIS"},
		{"Überphysik", "ÜBE"},
		{"日本語学", "日本語"},
	}
	for _, tt := range tests {
		if got := SubjectCode(tt.name); got != tt.want {
			t.Errorf("SubjectCode(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
