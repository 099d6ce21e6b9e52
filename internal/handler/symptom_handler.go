package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediconsult/platform/internal/repository"
)

type SymptomHandler struct {
	symptoms repository.SymptomRepository
}

func NewSymptomHandler(symptoms repository.SymptomRepository) *SymptomHandler {
	return &SymptomHandler{symptoms: symptoms}
}

// GET /api/symptoms?category=
func (h *SymptomHandler) List(c *gin.Context) {
	symptoms, err := h.symptoms.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch symptoms")
		return
	}
	respondOK(c, symptoms)
}

// GET /api/symptoms/categories
func (h *SymptomHandler) Categories(c *gin.Context) {
	categories, err := h.symptoms.Categories(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch categories")
		return
	}
	respondOK(c, categories)
}
