package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mediconsult/platform/internal/model"
)

type SpecialtyRepository interface {
	// List возвращает все специальности по алфавиту.
	List(ctx context.Context) ([]model.Specialty, error)
	// GetByID возвращает специальность или nil, nil, если её нет.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Specialty, error)
}

// Реализация на GORM.
type GormSpecialtyRepository struct {
	db *gorm.DB
}

func NewGormSpecialtyRepository(db *gorm.DB) *GormSpecialtyRepository {
	return &GormSpecialtyRepository{db: db}
}

func (r *GormSpecialtyRepository) List(ctx context.Context) ([]model.Specialty, error) {
	var specialties []model.Specialty
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *GormSpecialtyRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Specialty, error) {
	var s model.Specialty
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
