package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mediconsult/platform/internal/model"
)

type DoctorRepository interface {
	// List возвращает врачей, опционально по специальности.
	List(ctx context.Context, specialtyID *uuid.UUID) ([]model.Doctor, error)
	// GetByID возвращает врача с профилем и специальностью или nil, nil.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
}

// Реализация на GORM.
type GormDoctorRepository struct {
	db *gorm.DB
}

func NewGormDoctorRepository(db *gorm.DB) *GormDoctorRepository {
	return &GormDoctorRepository{db: db}
}

func (r *GormDoctorRepository) List(ctx context.Context, specialtyID *uuid.UUID) ([]model.Doctor, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialty").
		Order("created_at ASC")

	if specialtyID != nil {
		q = q.Where("specialty_id = ?", *specialtyID)
	}

	var doctors []model.Doctor
	if err := q.Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *GormDoctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	var d model.Doctor
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialty").
		First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
