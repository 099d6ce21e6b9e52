package model

import (
	"time"

	"github.com/google/uuid"
)

// symptoms — справочник симптомов для преконсультации.
type Symptom struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	// Группирующая метка, например "Респираторные".
	Category string `gorm:"type:varchar(64);not null;index" json:"category"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Specialties []Specialty `gorm:"many2many:symptom_specialty;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// symptom_specialty — кастомная join-таблица: вес диагностической
// значимости симптома для специальности. Вручную курируемая база знаний
// движка подсказок; диапазон веса [0.00, 1.00], пара (symptom, specialty)
// уникальна за счёт составного PK.
type SymptomSpecialtyWeight struct {
	SymptomID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"symptom_id"`
	SpecialtyID uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"specialty_id"`

	Weight float64 `gorm:"type:numeric(3,2);not null;default:0.50" json:"weight"`

	Symptom   *Symptom   `gorm:"foreignKey:SymptomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Specialty *Specialty `gorm:"foreignKey:SpecialtyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (SymptomSpecialtyWeight) TableName() string {
	return "symptom_specialty"
}
