package service

import (
	"context"

	"github.com/qforge/qforge-backend/internal/model"
	"github.com/qforge/qforge-backend/internal/repository"
)

type SubjectService struct {
	subjectRepo *repository.SubjectRepository
}

func NewSubjectService(subjectRepo *repository.SubjectRepository) *SubjectService {
	return &SubjectService{subjectRepo: subjectRepo}
}

func (s *SubjectService) GetAll(ctx context.Context) ([]model.Subject, error) {
	return s.subjectRepo.GetAll(ctx)
}

func (s *SubjectService) Create(ctx context.Context, sub *model.Subject) error {
	return s.subjectRepo.Create(ctx, sub)
}
