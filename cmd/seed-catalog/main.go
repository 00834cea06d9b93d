package main

import (
	"context"
	"fmt"
	"time"

	"github.com/qforge/qforge-backend/internal/config"
	"github.com/qforge/qforge-backend/internal/database"
	"github.com/qforge/qforge-backend/internal/logger"
	"github.com/qforge/qforge-backend/internal/repository"
	"github.com/qforge/qforge-backend/internal/service"
)

// Seeds the grade ladder (1-12) and a starter subject set so list
// endpoints have data before the first generation request.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	gradeRepo := repository.NewGradeRepository(pool)

	fmt.Println("=== Seeding Grades 1-12 ===")
	for level := 1; level <= 12; level++ {
		g, err := gradeRepo.GetOrCreate(ctx, fmt.Sprintf("%d", level), fmt.Sprintf("Grade %d", level))
		if err != nil {
			log.Fatal().Err(err).Int("level", level).Msg("Failed to seed grade")
		}
		fmt.Printf("Grade %s (id=%d)\n", g.Level, g.ID)
	}

	subjectRepo := repository.NewSubjectRepository(pool)
	subjects := []string{"Math", "Science", "English", "History", "Geography"}

	fmt.Println("=== Seeding Subjects ===")
	for _, name := range subjects {
		s, err := subjectRepo.GetOrCreate(ctx, name, service.SubjectCode(name))
		if err != nil {
			log.Fatal().Err(err).Str("subject", name).Msg("Failed to seed subject")
		}
		fmt.Printf("%s (%s, id=%d)\n", s.Name, s.Code, s.ID)
	}

	fmt.Println("Seeding complete")
}
