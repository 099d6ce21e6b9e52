package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей платформы.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Specialty{},
		&Symptom{},
		&SymptomSpecialtyWeight{},
		&Doctor{},
		&Schedule{},
		&PreConsultation{},
		&Appointment{},
	); err != nil {
		return err
	}

	// Гонка двойного бронирования закрывается на уровне БД:
	// не более одной активной записи на (doctor_id, scheduled_at).
	if db.Dialector.Name() == "postgres" {
		return db.Exec(
			`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_appointment
			 ON appointments (doctor_id, scheduled_at)
			 WHERE status IN ('pending', 'confirmed')`,
		).Error
	}

	return nil
}
