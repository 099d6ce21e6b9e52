package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mediconsult/platform/internal/pagination"
	"github.com/mediconsult/platform/internal/repository"
	"github.com/mediconsult/platform/internal/slots"
)

type DoctorHandler struct {
	doctors    repository.DoctorRepository
	schedules  repository.ScheduleRepository
	calculator *slots.Calculator
}

func NewDoctorHandler(
	doctors repository.DoctorRepository,
	schedules repository.ScheduleRepository,
	calculator *slots.Calculator,
) *DoctorHandler {
	return &DoctorHandler{
		doctors:    doctors,
		schedules:  schedules,
		calculator: calculator,
	}
}

// GET /api/doctors?specialty_id=&page=&page_size=
func (h *DoctorHandler) List(c *gin.Context) {
	var specialtyID *uuid.UUID
	if raw := c.Query("specialty_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(c, http.StatusUnprocessableEntity, "invalid specialty_id")
			return
		}
		specialtyID = &id
	}

	doctors, err := h.doctors.List(c.Request.Context(), specialtyID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch doctors")
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	respondOK(c, pagination.Paginate(doctors, page, pageSize))
}

// GET /api/doctors/:id
func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	doctor, err := h.doctors.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch doctor")
		return
	}
	if doctor == nil {
		respondError(c, http.StatusNotFound, "doctor not found")
		return
	}
	respondOK(c, doctor)
}

// GET /api/doctors/:id/schedules
func (h *DoctorHandler) Schedules(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	schedules, err := h.schedules.ListByDoctor(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch schedules")
		return
	}
	respondOK(c, schedules)
}

// GET /api/doctors/:id/slots?date=YYYY-MM-DD
func (h *DoctorHandler) Slots(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.UTC)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "date must be YYYY-MM-DD")
		return
	}

	daySlots, err := h.calculator.AvailableSlots(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to compute slots")
		return
	}
	if len(daySlots) == 0 {
		respondOKMessage(c, daySlots, "doctor is not available on this day")
		return
	}
	respondOK(c, daySlots)
}
