package service

import (
	"context"
	"fmt"

	"github.com/qforge/qforge-backend/internal/model"
	"github.com/qforge/qforge-backend/internal/repository"
)

type GradeService struct {
	gradeRepo *repository.GradeRepository
}

func NewGradeService(gradeRepo *repository.GradeRepository) *GradeService {
	return &GradeService{gradeRepo: gradeRepo}
}

func (s *GradeService) GetAll(ctx context.Context) ([]model.Grade, error) {
	return s.gradeRepo.GetAll(ctx)
}

func (s *GradeService) Create(ctx context.Context, g *model.Grade) error {
	if g.Name == "" {
		g.Name = fmt.Sprintf("Grade %s", g.Level)
	}
	return s.gradeRepo.Create(ctx, g)
}
