package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mediconsult/platform/internal/service"
)

type PreConsultationHandler struct {
	preConsultations *service.PreConsultationService
}

func NewPreConsultationHandler(preConsultations *service.PreConsultationService) *PreConsultationHandler {
	return &PreConsultationHandler{preConsultations: preConsultations}
}

type submitPreConsultationRequest struct {
	PatientID       uuid.UUID   `json:"patient_id" binding:"required"`
	SymptomIDs      []uuid.UUID `json:"symptom_ids" binding:"required"`
	AdditionalNotes string      `json:"additional_notes"`
}

type suggestRequest struct {
	SymptomIDs []uuid.UUID `json:"symptom_ids" binding:"required"`
}

// POST /api/pre-consultations
func (h *PreConsultationHandler) Store(c *gin.Context) {
	var req submitPreConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if len(req.SymptomIDs) == 0 {
		respondError(c, http.StatusUnprocessableEntity, "symptom_ids must not be empty")
		return
	}

	pc, err := h.preConsultations.Submit(c.Request.Context(), service.SubmitPreConsultationInput{
		PatientID:       req.PatientID,
		SymptomIDs:      req.SymptomIDs,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to submit pre-consultation")
		return
	}
	respondCreated(c, pc, "pre-consultation submitted")
}

// POST /api/pre-consultations/suggest
func (h *PreConsultationHandler) Suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	results, err := h.preConsultations.Suggest(c.Request.Context(), req.SymptomIDs)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to compute suggestions")
		return
	}
	respondOK(c, results)
}

// GET /api/pre-consultations?patient_id=
func (h *PreConsultationHandler) Index(c *gin.Context) {
	patientID, err := uuid.Parse(c.Query("patient_id"))
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "invalid patient_id")
		return
	}

	history, err := h.preConsultations.History(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch pre-consultations")
		return
	}
	respondOK(c, history)
}

// GET /api/pre-consultations/:id
func (h *PreConsultationHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pc, err := h.preConsultations.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch pre-consultation")
		return
	}
	if pc == nil {
		respondError(c, http.StatusNotFound, "pre-consultation not found")
		return
	}
	respondOK(c, pc)
}
