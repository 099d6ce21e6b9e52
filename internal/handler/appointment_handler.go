package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mediconsult/platform/internal/model"
	"github.com/mediconsult/platform/internal/pagination"
	"github.com/mediconsult/platform/internal/service"
)

type AppointmentHandler struct {
	appointments *service.AppointmentService
}

func NewAppointmentHandler(appointments *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

type bookAppointmentRequest struct {
	PatientID         uuid.UUID  `json:"patient_id" binding:"required"`
	DoctorID          uuid.UUID  `json:"doctor_id" binding:"required"`
	PreConsultationID *uuid.UUID `json:"pre_consultation_id"`
	ScheduledAt       time.Time  `json:"scheduled_at" binding:"required"`
	Notes             string     `json:"notes"`
}

type updateAppointmentRequest struct {
	Status             model.AppointmentStatus `json:"status" binding:"required"`
	CancellationReason string                  `json:"cancellation_reason"`
}

type cancelAppointmentRequest struct {
	CancellationReason string `json:"cancellation_reason"`
}

// GET /api/appointments?patient_id=&doctor_id=&page=&page_size=
func (h *AppointmentHandler) Index(c *gin.Context) {
	var patientID, doctorID *uuid.UUID
	if raw := c.Query("patient_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, http.StatusUnprocessableEntity, "invalid patient_id")
			return
		}
		patientID = &id
	}
	if raw := c.Query("doctor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, http.StatusUnprocessableEntity, "invalid doctor_id")
			return
		}
		doctorID = &id
	}

	appointments, err := h.appointments.List(c.Request.Context(), patientID, doctorID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch appointments")
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	respondOK(c, pagination.Paginate(appointments, page, pageSize))
}

// POST /api/appointments
func (h *AppointmentHandler) Store(c *gin.Context) {
	var req bookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	appointment, err := h.appointments.Book(c.Request.Context(), service.BookAppointmentInput{
		PatientID:         req.PatientID,
		DoctorID:          req.DoctorID,
		PreConsultationID: req.PreConsultationID,
		ScheduledAt:       req.ScheduledAt.UTC(),
		Notes:             req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrSlotTaken) {
			respondError(c, http.StatusUnprocessableEntity, "this time slot is already booked")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to book appointment")
		return
	}
	respondCreated(c, appointment, "appointment booked")
}

// GET /api/appointments/:id
func (h *AppointmentHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	appointment, err := h.appointments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch appointment")
		return
	}
	if appointment == nil {
		respondError(c, http.StatusNotFound, "appointment not found")
		return
	}
	respondOK(c, appointment)
}

// PUT /api/appointments/:id
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if !req.Status.Valid() {
		respondError(c, http.StatusUnprocessableEntity, "unknown appointment status")
		return
	}

	appointment, err := h.appointments.UpdateStatus(c.Request.Context(), id, req.Status, req.CancellationReason)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatusChange) {
			respondError(c, http.StatusUnprocessableEntity, "invalid status transition")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update appointment")
		return
	}
	if appointment == nil {
		respondError(c, http.StatusNotFound, "appointment not found")
		return
	}
	respondOKMessage(c, appointment, "appointment updated")
}

// DELETE /api/appointments/:id — отмена, а не удаление из БД.
func (h *AppointmentHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req cancelAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	appointment, err := h.appointments.Cancel(c.Request.Context(), id, req.CancellationReason)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatusChange) {
			respondError(c, http.StatusUnprocessableEntity, "appointment cannot be cancelled")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to cancel appointment")
		return
	}
	if appointment == nil {
		respondError(c, http.StatusNotFound, "appointment not found")
		return
	}
	respondOKMessage(c, appointment, "appointment cancelled")
}
