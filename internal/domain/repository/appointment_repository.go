package repository

import (
	"time"

	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	// FindForDoctorInRange returns the doctor's appointments with datetime
	// in the half-open interval [start, end).
	FindForDoctorInRange(db *gorm.DB, doctorID int, start, end time.Time) ([]entity.Appointment, error)
	Filter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id int) (int64, error)
}
