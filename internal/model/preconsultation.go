package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// pre_consultations — анкета самодиагностики пациента и посчитанная
// для неё лучшая подсказка специальности.
type PreConsultation struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`

	// Список выбранных symptom_id как JSON-массив.
	SymptomsSelected datatypes.JSON `gorm:"type:jsonb;not null" json:"symptoms_selected"`

	SuggestedSpecialtyID *uuid.UUID `gorm:"type:uuid;index" json:"suggested_specialty_id,omitempty"`
	// Процент уверенности 0–100, один знак после запятой.
	ConfidenceScore *float64 `gorm:"type:numeric(5,2)" json:"confidence_score,omitempty"`

	AdditionalNotes string `gorm:"type:text" json:"additional_notes,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Patient            *User      `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	SuggestedSpecialty *Specialty `gorm:"foreignKey:SuggestedSpecialtyID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"suggested_specialty,omitempty"`
}
