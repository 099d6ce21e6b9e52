package model

import (
	"time"

	"github.com/google/uuid"
)

// doctors — врач как профиль поверх учётной записи.
type Doctor struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// Пользователь может быть врачом только один раз.
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	SpecialtyID uuid.UUID `gorm:"type:uuid;not null;index" json:"specialty_id"`

	Bio           string `gorm:"type:text" json:"bio,omitempty"`
	Photo         string `gorm:"type:varchar(255)" json:"photo,omitempty"`
	LicenseNumber string `gorm:"type:varchar(64)" json:"license_number,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	// Навигационные поля для Preload.
	User      *User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Specialty *Specialty `gorm:"foreignKey:SpecialtyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"specialty,omitempty"`

	Schedules []Schedule `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
