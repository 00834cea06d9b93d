package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/qforge/qforge-backend/internal/model"
	"github.com/qforge/qforge-backend/internal/repository"
	"github.com/qforge/qforge-backend/internal/response"
	"github.com/qforge/qforge-backend/internal/service"
	"github.com/qforge/qforge-backend/internal/validator"
)

type PaperHandler struct {
	paperService *service.PaperService
}

func NewPaperHandler(paperService *service.PaperService) *PaperHandler {
	return &PaperHandler{paperService: paperService}
}

// Generate godoc
// POST /api/v1/generate-paper
//
// Validation failures return 400 with field errors. Generation-source
// failures are absorbed inside the pipeline, so a valid request only
// fails on unexpected persistence errors.
func (h *PaperHandler) Generate(c *gin.Context) {
	var req model.GeneratePaperRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	paper, err := h.paperService.GeneratePaper(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"paper": paper})
}

// Get godoc
// GET /api/v1/papers/:id
func (h *PaperHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	paper, err := h.paperService.GetPaper(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPaperNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"paper": paper})
}
