package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qforge/qforge-backend/internal/model"
	"github.com/qforge/qforge-backend/internal/response"
	"github.com/qforge/qforge-backend/internal/service"
	"github.com/qforge/qforge-backend/internal/validator"
)

type TopicHandler struct {
	topicService *service.TopicService
}

func NewTopicHandler(topicService *service.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

// List godoc
// GET /api/v1/topics?subject=&grade=
func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.topicService.List(c.Request.Context(), c.Query("subject"), c.Query("grade"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if topics == nil {
		topics = []model.Topic{}
	}

	response.Success(c, http.StatusOK, gin.H{"topics": topics})
}

// Create godoc
// POST /api/v1/topics
func (h *TopicHandler) Create(c *gin.Context) {
	var req model.CreateTopicRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	topic := &model.Topic{
		Name:          req.Name,
		SubjectID:     req.SubjectID,
		GradeID:       req.GradeID,
		ChapterNumber: req.ChapterNumber,
		Description:   req.Description,
	}
	if err := h.topicService.Create(c.Request.Context(), topic); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"topic": topic})
}
