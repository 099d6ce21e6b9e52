package model

import (
	"time"

	"github.com/google/uuid"
)

// Роль пользователя в клинике.
type UserRole string

const (
	UserRolePatient   UserRole = "patient"
	UserRoleDoctor    UserRole = "doctor"
	UserRoleSecretary UserRole = "secretary"
	UserRoleAdmin     UserRole = "admin"
)

// users — пациенты и персонал. Аутентификация живёт во внешнем шлюзе,
// здесь только учётная запись как сущность.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone string `gorm:"type:varchar(32)" json:"phone,omitempty"`

	Role     UserRole `gorm:"type:varchar(32);not null;default:'patient';index" json:"role"`
	IsActive bool     `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	// Навигационные поля (опционально)
	Doctor *Doctor `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
}
