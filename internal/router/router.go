package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/qforge/qforge-backend/internal/config"
	"github.com/qforge/qforge-backend/internal/handler"
	"github.com/qforge/qforge-backend/internal/middleware"
	"github.com/qforge/qforge-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Subject  *handler.SubjectHandler
	Grade    *handler.GradeHandler
	Topic    *handler.TopicHandler
	Question *handler.QuestionHandler
	Paper    *handler.PaperHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Generation is expensive (one external model call per request), so
	// the generate endpoint gets its own rate limit.
	generateLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := router.Group("/api/v1")
	{
		api.GET("/subjects", handlers.Subject.List)
		api.POST("/subjects", handlers.Subject.Create)

		api.GET("/grades", handlers.Grade.List)
		api.POST("/grades", handlers.Grade.Create)

		api.GET("/topics", handlers.Topic.List)
		api.POST("/topics", handlers.Topic.Create)

		api.GET("/questions", handlers.Question.List)
		api.POST("/questions", handlers.Question.Create)

		api.POST("/generate-paper", generateLimiter.Middleware(), handlers.Paper.Generate)
		api.GET("/papers/:id", handlers.Paper.Get)
	}

	return router
}
