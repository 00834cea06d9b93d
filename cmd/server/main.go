package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qforge/qforge-backend/internal/config"
	"github.com/qforge/qforge-backend/internal/database"
	"github.com/qforge/qforge-backend/internal/genai"
	"github.com/qforge/qforge-backend/internal/generator"
	"github.com/qforge/qforge-backend/internal/handler"
	"github.com/qforge/qforge-backend/internal/logger"
	"github.com/qforge/qforge-backend/internal/repository"
	"github.com/qforge/qforge-backend/internal/router"
	"github.com/qforge/qforge-backend/internal/service"
	"github.com/qforge/qforge-backend/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting QForge Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	subjectRepo := repository.NewSubjectRepository(pool)
	gradeRepo := repository.NewGradeRepository(pool)
	topicRepo := repository.NewTopicRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)
	paperRepo := repository.NewPaperRepository(pool)

	// ─── Initialize Generation Pipeline ───────────────────────────────
	genClient := genai.NewClient(genai.Config{
		APIKey:      cfg.GenAPIKey,
		BaseURL:     cfg.GenBaseURL,
		Model:       cfg.GenModel,
		Timeout:     cfg.GenTimeout,
		MaxTokens:   cfg.GenMaxTokens,
		Temperature: cfg.GenTemperature,
	})
	if cfg.GenAPIKey == "" {
		log.Warn().Msg("GEN_API_KEY not set; generation calls will fail and papers will use fallback questions")
	}
	questionGen := generator.New(genClient, log)

	// ─── Initialize Services ──────────────────────────────────────────
	subjectService := service.NewSubjectService(subjectRepo)
	gradeService := service.NewGradeService(gradeRepo)
	topicService := service.NewTopicService(topicRepo)
	questionService := service.NewQuestionService(questionRepo)
	paperService := service.NewPaperService(
		subjectRepo, gradeRepo, topicRepo, questionRepo, paperRepo,
		questionGen, rdb, log,
	)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Subject:  handler.NewSubjectHandler(subjectService),
		Grade:    handler.NewGradeHandler(gradeService),
		Topic:    handler.NewTopicHandler(topicService),
		Question: handler.NewQuestionHandler(questionService),
		Paper:    handler.NewPaperHandler(paperService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
