package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mediconsult/platform/internal/model"
)

type AppointmentRepository interface {
	// ExistsActive сообщает, есть ли у врача активная запись
	// (pending или confirmed) ровно на этот момент времени.
	ExistsActive(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error)
	// Create создаёт запись на приём.
	Create(ctx context.Context, appointment *model.Appointment) error
	// GetByID возвращает запись со связями или nil, nil.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	// List возвращает записи, опционально по пациенту и/или врачу,
	// от поздних к ранним.
	List(ctx context.Context, patientID, doctorID *uuid.UUID) ([]model.Appointment, error)
	// UpdateStatus меняет статус; для отмены можно передать причину.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus, cancellationReason *string) error
}

// Реализация на GORM.
type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) ExistsActive(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("doctor_id = ? AND scheduled_at = ?", doctorID, at).
		Where("status IN ?", []model.AppointmentStatus{
			model.AppointmentStatusPending,
			model.AppointmentStatusConfirmed,
		}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormAppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	var a model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor.User").
		Preload("Doctor.Specialty").
		Preload("PreConsultation").
		First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAppointmentRepository) List(ctx context.Context, patientID, doctorID *uuid.UUID) ([]model.Appointment, error) {
	q := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor.User").
		Preload("Doctor.Specialty").
		Order("scheduled_at DESC")

	if patientID != nil {
		q = q.Where("patient_id = ?", *patientID)
	}
	if doctorID != nil {
		q = q.Where("doctor_id = ?", *doctorID)
	}

	var appointments []model.Appointment
	if err := q.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus, cancellationReason *string) error {
	update := map[string]any{
		"status": status,
	}
	if cancellationReason != nil {
		update["cancellation_reason"] = *cancellationReason
	}

	return r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("id = ?", id).
		Updates(update).Error
}
