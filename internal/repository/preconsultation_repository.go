package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mediconsult/platform/internal/model"
)

type PreConsultationRepository interface {
	// Create сохраняет анкету преконсультации.
	Create(ctx context.Context, pc *model.PreConsultation) error
	// GetByID возвращает анкету с подсказанной специальностью или nil, nil.
	GetByID(ctx context.Context, id uuid.UUID) (*model.PreConsultation, error)
	// ListByPatient возвращает историю анкет пациента, от новых к старым.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]model.PreConsultation, error)
}

// Реализация на GORM.
type GormPreConsultationRepository struct {
	db *gorm.DB
}

func NewGormPreConsultationRepository(db *gorm.DB) *GormPreConsultationRepository {
	return &GormPreConsultationRepository{db: db}
}

func (r *GormPreConsultationRepository) Create(ctx context.Context, pc *model.PreConsultation) error {
	return r.db.WithContext(ctx).Create(pc).Error
}

func (r *GormPreConsultationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PreConsultation, error) {
	var pc model.PreConsultation
	err := r.db.WithContext(ctx).
		Preload("SuggestedSpecialty").
		First(&pc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *GormPreConsultationRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]model.PreConsultation, error) {
	var pcs []model.PreConsultation
	err := r.db.WithContext(ctx).
		Preload("SuggestedSpecialty").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&pcs).Error
	if err != nil {
		return nil, err
	}
	return pcs, nil
}
