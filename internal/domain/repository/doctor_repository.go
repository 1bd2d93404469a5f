package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	// FindByIDForUpdate locks the doctor row for the duration of the
	// surrounding transaction so concurrent admission checks serialize.
	FindByIDForUpdate(db *gorm.DB, id int) (*entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id int) (int64, error)
}
