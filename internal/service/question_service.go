package service

import (
	"context"
	"encoding/json"

	"github.com/qforge/qforge-backend/internal/model"
	"github.com/qforge/qforge-backend/internal/repository"
	"github.com/qforge/qforge-backend/internal/response"
)

type QuestionService struct {
	questionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// List retrieves questions with pagination.
func (s *QuestionService) List(ctx context.Context, page, perPage int) ([]model.Question, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	questions, total, err := s.questionRepo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}

	if questions == nil {
		questions = []model.Question{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return questions, pagination, nil
}

func (s *QuestionService) Create(ctx context.Context, req *model.CreateQuestionRequest) (*model.Question, error) {
	q := &model.Question{
		QuestionText: req.QuestionText,
		QuestionType: model.QuestionType(req.QuestionType),
		Difficulty:   model.Difficulty(req.Difficulty),
		BloomLevel:   "2",
		Marks:        req.Marks,
		TimeToSolve:  2,
		TopicID:      req.TopicID,
		Answer:       req.Answer,
		Explanation:  req.Explanation,
	}

	if q.QuestionType == model.QuestionTypeMCQ {
		options, err := json.Marshal(req.Options)
		if err != nil {
			return nil, err
		}
		q.Options = options
		q.CorrectOption = req.CorrectOption
	}

	if err := s.questionRepo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}
