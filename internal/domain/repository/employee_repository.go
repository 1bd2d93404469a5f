package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(db *gorm.DB, employee *entity.Employee) error
	FindAll(db *gorm.DB) ([]entity.Employee, error)
	FindByID(db *gorm.DB, id int) (*entity.Employee, error)
	FindByUsername(db *gorm.DB, username string) (*entity.Employee, error)
	Update(db *gorm.DB, employee *entity.Employee) error
	Delete(db *gorm.DB, id int) (int64, error)
}
