package model

import (
	"time"

	"github.com/google/uuid"
)

// schedules — недельный шаблон доступности врача, без привязки
// к конкретным датам. Времена хранятся как "HH:MM".
type Schedule struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;index:idx_schedules_doctor_day" json:"doctor_id"`

	// 0=воскресенье .. 6=суббота
	DayOfWeek int `gorm:"not null;index:idx_schedules_doctor_day" json:"day_of_week"`

	StartTime string `gorm:"type:varchar(8);not null" json:"start_time"`
	EndTime   string `gorm:"type:varchar(8);not null" json:"end_time"`

	IsAvailable bool `gorm:"not null;default:true" json:"is_available"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Doctor *Doctor `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
