package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id int) (int64, error)
	UpdateVaccineByKTP(db *gorm.DB, noKTP string, vaccineType *string, vaccineCount *int) (int64, error)
}
