package model

import (
	"time"

	"github.com/google/uuid"
)

// specialties — справочник медицинских специальностей.
// Неизменяемые справочные данные для ядра подсказок.
type Specialty struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Icon        string `gorm:"type:varchar(16)" json:"icon,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Doctors []Doctor `gorm:"foreignKey:SpecialtyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
