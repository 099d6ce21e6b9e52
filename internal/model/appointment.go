package model

import (
	"time"

	"github.com/google/uuid"
)

// Статус записи на приём.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Valid — известный ли это статус.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// Occupies — занимает ли запись с таким статусом слот.
// Отменённые и завершённые записи слот не блокируют.
func (s AppointmentStatus) Occupies() bool {
	return s == AppointmentStatusPending || s == AppointmentStatusConfirmed
}

// appointments
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	PatientID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_appointments_doctor_time" json:"doctor_id"`
	PreConsultationID *uuid.UUID `gorm:"type:uuid;index" json:"pre_consultation_id,omitempty"`

	ScheduledAt time.Time `gorm:"type:timestamp with time zone;not null;index:idx_appointments_doctor_time" json:"scheduled_at"`

	Status AppointmentStatus `gorm:"type:varchar(32);not null;default:'pending';index" json:"status"`

	Notes              string `gorm:"type:text" json:"notes,omitempty"`
	CancellationReason string `gorm:"type:text" json:"cancellation_reason,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	// Навигационные поля для Preload.
	Patient         *User            `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor          *Doctor          `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"doctor,omitempty"`
	PreConsultation *PreConsultation `gorm:"foreignKey:PreConsultationID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"pre_consultation,omitempty"`
}
