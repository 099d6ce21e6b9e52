package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/mediconsult/platform/internal/model"
	"github.com/mediconsult/platform/internal/repository"
	"github.com/mediconsult/platform/internal/suggestion"
)

// PreConsultationService принимает анкету самодиагностики, считает
// лучшую подсказку специальности и сохраняет её вместе с анкетой.
type PreConsultationService struct {
	engine           *suggestion.Engine
	preConsultations repository.PreConsultationRepository
}

func NewPreConsultationService(
	engine *suggestion.Engine,
	preConsultations repository.PreConsultationRepository,
) *PreConsultationService {
	return &PreConsultationService{
		engine:           engine,
		preConsultations: preConsultations,
	}
}

type SubmitPreConsultationInput struct {
	PatientID       uuid.UUID
	SymptomIDs      []uuid.UUID
	AdditionalNotes string
}

// Submit сохраняет анкету. Если ни одна специальность не совпала,
// анкета сохраняется без подсказки — это не ошибка.
func (s *PreConsultationService) Submit(ctx context.Context, in SubmitPreConsultationInput) (*model.PreConsultation, error) {
	best, err := s.engine.BestSuggestion(ctx, in.SymptomIDs)
	if err != nil {
		return nil, fmt.Errorf("best suggestion: %w", err)
	}

	rawSymptoms, err := json.Marshal(in.SymptomIDs)
	if err != nil {
		return nil, fmt.Errorf("marshal symptoms: %w", err)
	}

	pc := &model.PreConsultation{
		PatientID:        in.PatientID,
		SymptomsSelected: datatypes.JSON(rawSymptoms),
		AdditionalNotes:  in.AdditionalNotes,
	}
	if best != nil {
		specialtyID := best.SpecialtyID
		confidence := best.ConfidenceScore
		pc.SuggestedSpecialtyID = &specialtyID
		pc.ConfidenceScore = &confidence
	}

	if err := s.preConsultations.Create(ctx, pc); err != nil {
		return nil, fmt.Errorf("create pre-consultation: %w", err)
	}

	// перечитываем со связями
	created, err := s.preConsultations.GetByID(ctx, pc.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return pc, nil
	}
	return created, nil
}

// Suggest возвращает топ подсказок без сохранения анкеты.
func (s *PreConsultationService) Suggest(ctx context.Context, symptomIDs []uuid.UUID) ([]suggestion.Result, error) {
	return s.engine.Suggest(ctx, symptomIDs, suggestion.DefaultTopN)
}

// History возвращает анкеты пациента, от новых к старым.
func (s *PreConsultationService) History(ctx context.Context, patientID uuid.UUID) ([]model.PreConsultation, error) {
	return s.preConsultations.ListByPatient(ctx, patientID)
}

// Get возвращает анкету или nil, nil.
func (s *PreConsultationService) Get(ctx context.Context, id uuid.UUID) (*model.PreConsultation, error) {
	return s.preConsultations.GetByID(ctx, id)
}
