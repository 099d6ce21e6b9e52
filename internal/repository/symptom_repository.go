package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mediconsult/platform/internal/model"
)

type SymptomRepository interface {
	// List возвращает симптомы, опционально отфильтрованные по категории.
	List(ctx context.Context, category string) ([]model.Symptom, error)
	// Categories возвращает список уникальных категорий симптомов.
	Categories(ctx context.Context) ([]string, error)
}

// Реализация на GORM.
type GormSymptomRepository struct {
	db *gorm.DB
}

func NewGormSymptomRepository(db *gorm.DB) *GormSymptomRepository {
	return &GormSymptomRepository{db: db}
}

func (r *GormSymptomRepository) List(ctx context.Context, category string) ([]model.Symptom, error) {
	q := r.db.WithContext(ctx).Order("category ASC, name ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var symptoms []model.Symptom
	if err := q.Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (r *GormSymptomRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&model.Symptom{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
