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

type GradeHandler struct {
	gradeService *service.GradeService
}

func NewGradeHandler(gradeService *service.GradeService) *GradeHandler {
	return &GradeHandler{gradeService: gradeService}
}

// List godoc
// GET /api/v1/grades
func (h *GradeHandler) List(c *gin.Context) {
	grades, err := h.gradeService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if grades == nil {
		grades = []model.Grade{}
	}

	response.Success(c, http.StatusOK, gin.H{"grades": grades})
}

// Create godoc
// POST /api/v1/grades
func (h *GradeHandler) Create(c *gin.Context) {
	var req model.CreateGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade := &model.Grade{Level: req.Level, Name: req.Name}
	if err := h.gradeService.Create(c.Request.Context(), grade); err != nil {
		if errors.Is(err, repository.ErrDuplicateGrade) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"grade": grade})
}
