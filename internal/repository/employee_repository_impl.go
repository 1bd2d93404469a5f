package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type employeeRepository struct{}

func NewEmployeeRepository() domainRepo.EmployeeRepository {
	return &employeeRepository{}
}

func (r *employeeRepository) Create(db *gorm.DB, employee *entity.Employee) error {
	return db.Create(employee).Error
}

func (r *employeeRepository) FindAll(db *gorm.DB) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := db.Order("id ASC").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) FindByID(db *gorm.DB, id int) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.Where("id = ?", id).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByUsername(db *gorm.DB, username string) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.Where("username = ?", username).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Update(db *gorm.DB, employee *entity.Employee) error {
	return db.Save(employee).Error
}

func (r *employeeRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Employee{})
	return result.RowsAffected, result.Error
}
