package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mediconsult/platform/internal/model"
)

type ScheduleRepository interface {
	// GetForDay возвращает первый доступный шаблон врача на день недели
	// (0=воскресенье..6=суббота) или nil, nil, если врач в этот день не работает.
	GetForDay(ctx context.Context, doctorID uuid.UUID, dayOfWeek int) (*model.Schedule, error)
	// ListByDoctor возвращает все шаблоны врача.
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]model.Schedule, error)
	// GetByID возвращает шаблон или nil, nil.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error)
	// Create создаёт шаблон.
	Create(ctx context.Context, schedule *model.Schedule) error
	// Update обновляет шаблон.
	Update(ctx context.Context, schedule *model.Schedule) error
	// Delete удаляет шаблон.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Реализация на GORM.
type GormScheduleRepository struct {
	db *gorm.DB
}

func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

func (r *GormScheduleRepository) GetForDay(ctx context.Context, doctorID uuid.UUID, dayOfWeek int) (*model.Schedule, error) {
	var s model.Schedule
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND day_of_week = ? AND is_available = ?", doctorID, dayOfWeek, true).
		Order("start_time ASC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormScheduleRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]model.Schedule, error) {
	var schedules []model.Schedule
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("day_of_week ASC, start_time ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *GormScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	var s model.Schedule
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormScheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *GormScheduleRepository) Update(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("id = ?", schedule.ID).
		Updates(map[string]any{
			"day_of_week":  schedule.DayOfWeek,
			"start_time":   schedule.StartTime,
			"end_time":     schedule.EndTime,
			"is_available": schedule.IsAvailable,
		}).Error
}

func (r *GormScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Schedule{}, "id = ?", id).Error
}
