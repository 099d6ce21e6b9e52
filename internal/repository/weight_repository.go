package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mediconsult/platform/internal/model"
)

type WeightRepository interface {
	// ListBySymptoms возвращает все весовые записи для заданных симптомов.
	// Агрегацию по специальностям делает движок подсказок.
	ListBySymptoms(ctx context.Context, symptomIDs []uuid.UUID) ([]model.SymptomSpecialtyWeight, error)
}

// Реализация на GORM.
type GormWeightRepository struct {
	db *gorm.DB
}

func NewGormWeightRepository(db *gorm.DB) *GormWeightRepository {
	return &GormWeightRepository{db: db}
}

func (r *GormWeightRepository) ListBySymptoms(ctx context.Context, symptomIDs []uuid.UUID) ([]model.SymptomSpecialtyWeight, error) {
	if len(symptomIDs) == 0 {
		return nil, nil
	}

	var weights []model.SymptomSpecialtyWeight
	err := r.db.WithContext(ctx).
		Where("symptom_id IN ?", symptomIDs).
		Order("specialty_id ASC, symptom_id ASC").
		Find(&weights).Error
	if err != nil {
		return nil, err
	}
	return weights, nil
}
