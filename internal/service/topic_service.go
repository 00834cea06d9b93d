package service

import (
	"context"

	"github.com/qforge/qforge-backend/internal/model"
	"github.com/qforge/qforge-backend/internal/repository"
)

type TopicService struct {
	topicRepo *repository.TopicRepository
}

func NewTopicService(topicRepo *repository.TopicRepository) *TopicService {
	return &TopicService{topicRepo: topicRepo}
}

func (s *TopicService) List(ctx context.Context, subjectName, gradeLevel string) ([]model.Topic, error) {
	return s.topicRepo.List(ctx, subjectName, gradeLevel)
}

func (s *TopicService) Create(ctx context.Context, t *model.Topic) error {
	return s.topicRepo.Create(ctx, t)
}
