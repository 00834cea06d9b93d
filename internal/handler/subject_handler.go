package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qforge/qforge-backend/internal/model"
	"github.com/qforge/qforge-backend/internal/repository"
	"github.com/qforge/qforge-backend/internal/response"
	"github.com/qforge/qforge-backend/internal/service"
	"github.com/qforge/qforge-backend/internal/validator"
)

type SubjectHandler struct {
	subjectService *service.SubjectService
}

func NewSubjectHandler(subjectService *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// List godoc
// GET /api/v1/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := h.subjectService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if subjects == nil {
		subjects = []model.Subject{}
	}

	response.Success(c, http.StatusOK, gin.H{"subjects": subjects})
}

// Create godoc
// POST /api/v1/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req model.CreateSubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sub := &model.Subject{Name: req.Name, Code: req.Code, Description: req.Description}
	if err := h.subjectService.Create(c.Request.Context(), sub); err != nil {
		if errors.Is(err, repository.ErrDuplicateSubject) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"subject": sub})
}
