package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qforge/qforge-backend/internal/model"
	"github.com/qforge/qforge-backend/internal/response"
	"github.com/qforge/qforge-backend/internal/service"
	"github.com/qforge/qforge-backend/internal/validator"
)

type QuestionHandler struct {
	questionService *service.QuestionService
}

func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// List godoc
// GET /api/v1/questions
// Lists questions newest first, with pagination.
func (h *QuestionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	questions, pagination, err := h.questionService.List(c.Request.Context(), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"questions": questions}, pagination)
}

// Create godoc
// POST /api/v1/questions
func (h *QuestionHandler) Create(c *gin.Context) {
	var req model.CreateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"question": question})
}
