package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediconsult/platform/internal/repository"
)

type SpecialtyHandler struct {
	specialties repository.SpecialtyRepository
}

func NewSpecialtyHandler(specialties repository.SpecialtyRepository) *SpecialtyHandler {
	return &SpecialtyHandler{specialties: specialties}
}

// GET /api/specialties
func (h *SpecialtyHandler) List(c *gin.Context) {
	specialties, err := h.specialties.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch specialties")
		return
	}
	respondOK(c, specialties)
}

// GET /api/specialties/:id
func (h *SpecialtyHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	specialty, err := h.specialties.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch specialty")
		return
	}
	if specialty == nil {
		respondError(c, http.StatusNotFound, "specialty not found")
		return
	}
	respondOK(c, specialty)
}
