package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mediconsult/platform/internal/model"
	"github.com/mediconsult/platform/internal/repository"
)

type ScheduleHandler struct {
	schedules repository.ScheduleRepository
	doctors   repository.DoctorRepository
}

func NewScheduleHandler(
	schedules repository.ScheduleRepository,
	doctors repository.DoctorRepository,
) *ScheduleHandler {
	return &ScheduleHandler{
		schedules: schedules,
		doctors:   doctors,
	}
}

type createScheduleRequest struct {
	DoctorID    uuid.UUID `json:"doctor_id" binding:"required"`
	DayOfWeek   *int      `json:"day_of_week" binding:"required"`
	StartTime   string    `json:"start_time" binding:"required"`
	EndTime     string    `json:"end_time" binding:"required"`
	IsAvailable *bool     `json:"is_available"`
}

type updateScheduleRequest struct {
	DayOfWeek   *int    `json:"day_of_week"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	IsAvailable *bool   `json:"is_available"`
}

// POST /api/schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req createScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		respondError(c, http.StatusUnprocessableEntity, "day_of_week must be between 0 and 6")
		return
	}
	if !validHHMM(req.StartTime) || !validHHMM(req.EndTime) {
		respondError(c, http.StatusUnprocessableEntity, "start_time and end_time must be HH:MM")
		return
	}
	if req.EndTime <= req.StartTime {
		respondError(c, http.StatusUnprocessableEntity, "end_time must be after start_time")
		return
	}

	doctor, err := h.doctors.GetByID(c.Request.Context(), req.DoctorID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch doctor")
		return
	}
	if doctor == nil {
		respondError(c, http.StatusNotFound, "doctor not found")
		return
	}

	schedule := &model.Schedule{
		DoctorID:    req.DoctorID,
		DayOfWeek:   *req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		schedule.IsAvailable = *req.IsAvailable
	}

	if err := h.schedules.Create(c.Request.Context(), schedule); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create schedule")
		return
	}
	respondCreated(c, schedule, "schedule created")
}

// PUT /api/schedules/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	schedule, err := h.schedules.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch schedule")
		return
	}
	if schedule == nil {
		respondError(c, http.StatusNotFound, "schedule not found")
		return
	}

	if req.DayOfWeek != nil {
		if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
			respondError(c, http.StatusUnprocessableEntity, "day_of_week must be between 0 and 6")
			return
		}
		schedule.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		if !validHHMM(*req.StartTime) {
			respondError(c, http.StatusUnprocessableEntity, "start_time must be HH:MM")
			return
		}
		schedule.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if !validHHMM(*req.EndTime) {
			respondError(c, http.StatusUnprocessableEntity, "end_time must be HH:MM")
			return
		}
		schedule.EndTime = *req.EndTime
	}
	if req.IsAvailable != nil {
		schedule.IsAvailable = *req.IsAvailable
	}

	if err := h.schedules.Update(c.Request.Context(), schedule); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update schedule")
		return
	}
	respondOKMessage(c, schedule, "schedule updated")
}

// DELETE /api/schedules/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	schedule, err := h.schedules.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch schedule")
		return
	}
	if schedule == nil {
		respondError(c, http.StatusNotFound, "schedule not found")
		return
	}

	if err := h.schedules.Delete(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete schedule")
		return
	}
	respondOKMessage(c, nil, "schedule deleted")
}

func validHHMM(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
