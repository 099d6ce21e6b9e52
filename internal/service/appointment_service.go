package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mediconsult/platform/internal/model"
	"github.com/mediconsult/platform/internal/repository"
)

var (
	// Слот уже занят активной записью.
	ErrSlotTaken = errors.New("slot is already booked")
	// Недопустимый переход статуса.
	ErrInvalidStatusChange = errors.New("invalid status transition")
)

// AppointmentService создаёт записи на приём и ведёт их жизненный цикл.
type AppointmentService struct {
	appointments repository.AppointmentRepository
}

func NewAppointmentService(appointments repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

type BookAppointmentInput struct {
	PatientID         uuid.UUID
	DoctorID          uuid.UUID
	PreConsultationID *uuid.UUID
	ScheduledAt       time.Time
	Notes             string
}

// Book создаёт запись со статусом pending. Проверка занятости здесь —
// снимок; последнее слово за уникальным индексом активных записей в БД.
func (s *AppointmentService) Book(ctx context.Context, in BookAppointmentInput) (*model.Appointment, error) {
	taken, err := s.appointments.ExistsActive(ctx, in.DoctorID, in.ScheduledAt)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	appointment := &model.Appointment{
		PatientID:         in.PatientID,
		DoctorID:          in.DoctorID,
		PreConsultationID: in.PreConsultationID,
		ScheduledAt:       in.ScheduledAt,
		Status:            model.AppointmentStatusPending,
		Notes:             in.Notes,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	created, err := s.appointments.GetByID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return appointment, nil
	}
	return created, nil
}

// UpdateStatus переводит запись в новый статус с проверкой перехода.
// Возвращает nil, nil, если записи нет.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus, cancellationReason string) (*model.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, nil
	}

	if !canTransition(appointment.Status, status) {
		return nil, ErrInvalidStatusChange
	}

	var reason *string
	if status == model.AppointmentStatusCancelled {
		reason = &cancellationReason
	}

	if err := s.appointments.UpdateStatus(ctx, id, status, reason); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	return s.appointments.GetByID(ctx, id)
}

// Cancel отменяет запись, освобождая слот для повторного бронирования.
func (s *AppointmentService) Cancel(ctx context.Context, id uuid.UUID, reason string) (*model.Appointment, error) {
	return s.UpdateStatus(ctx, id, model.AppointmentStatusCancelled, reason)
}

// List возвращает записи с фильтрами по пациенту и врачу.
func (s *AppointmentService) List(ctx context.Context, patientID, doctorID *uuid.UUID) ([]model.Appointment, error) {
	return s.appointments.List(ctx, patientID, doctorID)
}

// Get возвращает запись или nil, nil.
func (s *AppointmentService) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// pending → confirmed | cancelled; confirmed → cancelled | completed.
// Отменённые и завершённые записи терминальны.
func canTransition(from, to model.AppointmentStatus) bool {
	switch from {
	case model.AppointmentStatusPending:
		return to == model.AppointmentStatusConfirmed || to == model.AppointmentStatusCancelled
	case model.AppointmentStatusConfirmed:
		return to == model.AppointmentStatusCancelled || to == model.AppointmentStatusCompleted
	default:
		return false
	}
}
