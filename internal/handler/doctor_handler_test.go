package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mediconsult/platform/internal/model"
	"github.com/mediconsult/platform/internal/slots"
)

type fakeBookedStarts struct {
	taken map[time.Time]bool
}

func (f *fakeBookedStarts) ExistsActive(_ context.Context, _ uuid.UUID, at time.Time) (bool, error) {
	return f.taken[at.UTC()], nil
}

func newDoctorTestRouter(doctors *fakeDoctorRepo, schedules *fakeScheduleRepo, booked *fakeBookedStarts) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDoctorHandler(doctors, schedules, slots.NewCalculator(schedules, booked))
	r := gin.New()
	r.GET("/api/doctors/:id/slots", h.Slots)
	return r
}

func TestDoctorSlots(t *testing.T) {
	doctorID := uuid.New()
	doctors := &fakeDoctorRepo{doctors: map[uuid.UUID]*model.Doctor{
		doctorID: {ID: doctorID},
	}}
	schedules := newFakeScheduleRepo()
	// понедельник 09:00–10:30
	if err := schedules.Create(context.Background(), &model.Schedule{
		DoctorID:    doctorID,
		DayOfWeek:   1,
		StartTime:   "09:00",
		EndTime:     "10:30",
		IsAvailable: true,
	}); err != nil {
		t.Fatal(err)
	}
	booked := &fakeBookedStarts{taken: map[time.Time]bool{
		time.Date(2025, 3, 17, 9, 30, 0, 0, time.UTC): true,
	}}
	r := newDoctorTestRouter(doctors, schedules, booked)

	// 2025-03-17 — понедельник
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/doctors/%s/slots?date=2025-03-17", doctorID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", w.Code, http.StatusOK, w.Body)
	}

	var resp struct {
		Success bool         `json:"success"`
		Data    []slots.Slot `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []struct {
		time      string
		available bool
	}{
		{"09:00", true},
		{"09:30", false},
		{"10:00", true},
	}
	if len(resp.Data) != len(want) {
		t.Fatalf("got %d slots, want %d: %+v", len(resp.Data), len(want), resp.Data)
	}
	for i, w := range want {
		if resp.Data[i].Time != w.time || resp.Data[i].Available != w.available {
			t.Errorf("slot[%d] = %q/%v, want %q/%v", i, resp.Data[i].Time, resp.Data[i].Available, w.time, w.available)
		}
	}
}

func TestDoctorSlots_BadDate(t *testing.T) {
	doctorID := uuid.New()
	doctors := &fakeDoctorRepo{doctors: map[uuid.UUID]*model.Doctor{doctorID: {ID: doctorID}}}
	r := newDoctorTestRouter(doctors, newFakeScheduleRepo(), &fakeBookedStarts{taken: map[time.Time]bool{}})

	for _, raw := range []string{"", "17-03-2025", "2025-03-17T10:00:00Z"} {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/doctors/%s/slots?date=%s", doctorID, raw), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("date %q: status = %d, want %d", raw, w.Code, http.StatusUnprocessableEntity)
		}
	}
}

func TestDoctorSlots_NoScheduleForDay(t *testing.T) {
	doctorID := uuid.New()
	doctors := &fakeDoctorRepo{doctors: map[uuid.UUID]*model.Doctor{doctorID: {ID: doctorID}}}
	r := newDoctorTestRouter(doctors, newFakeScheduleRepo(), &fakeBookedStarts{taken: map[time.Time]bool{}})

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/doctors/%s/slots?date=2025-03-17", doctorID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Success bool         `json:"success"`
		Data    []slots.Slot `json:"data"`
		Message string       `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Errorf("expected empty slot list, got %+v", resp.Data)
	}
	if resp.Message == "" {
		t.Error("expected explanatory message for empty day")
	}
}
