package usecase

import (
	"context"
	"time"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/pkg/apperr"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type EmployeeUsecase interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	List(ctx context.Context) (*dto.EmployeeListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id int) error
}

type employeeUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeUsecase(db *gorm.DB, log *logrus.Logger, employeeRepo repository.EmployeeRepository) EmployeeUsecase {
	return &employeeUsecase{
		db:           db,
		log:          log,
		employeeRepo: employeeRepo,
	}
}

func (u *employeeUsecase) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return nil, apperr.Validation("employee/invalid-birthdate", "invalid birthdate format, use YYYY-MM-DD")
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	employee := &entity.Employee{
		Name:      req.Name,
		Username:  req.Username,
		Password:  string(hashedPassword),
		Gender:    req.Gender,
		Birthdate: birthdate,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.employeeRepo.Create(tx, employee); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, apperr.Conflict("employee/username-exists", "username %s is already taken", req.Username)
		}
		u.log.Warnf("Failed to create employee: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.EmployeeToResponse(employee), nil
}

func (u *employeeUsecase) List(ctx context.Context) (*dto.EmployeeListResponse, error) {
	employees, err := u.employeeRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list employees: %+v", err)
		return nil, err
	}

	return &dto.EmployeeListResponse{
		Employees: converter.EmployeesToResponses(employees),
		Total:     len(employees),
	}, nil
}

func (u *employeeUsecase) GetByID(ctx context.Context, id int) (*dto.EmployeeResponse, error) {
	employee, err := u.employeeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find employee %d: %+v", id, err)
		return nil, err
	}
	if employee == nil {
		return nil, apperr.NotFound("employee/not-found", "employee with id %d is not found", id)
	}

	return converter.EmployeeToResponse(employee), nil
}

func (u *employeeUsecase) Update(ctx context.Context, id int, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	employee, err := u.employeeRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find employee %d: %+v", id, err)
		return nil, err
	}
	if employee == nil {
		return nil, apperr.NotFound("employee/not-found", "employee with id %d is not found", id)
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Username != nil {
		employee.Username = *req.Username
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		employee.Password = string(hashedPassword)
	}
	if req.Gender != nil {
		employee.Gender = *req.Gender
	}
	if req.Birthdate != nil {
		birthdate, err := time.Parse("2006-01-02", *req.Birthdate)
		if err != nil {
			return nil, apperr.Validation("employee/invalid-birthdate", "invalid birthdate format, use YYYY-MM-DD")
		}
		employee.Birthdate = birthdate
	}

	if err := u.employeeRepo.Update(tx, employee); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, apperr.Conflict("employee/username-exists", "username %s is already taken", employee.Username)
		}
		u.log.Warnf("Failed to update employee %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.EmployeeToResponse(employee), nil
}

func (u *employeeUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.deleteEmployee(tx, id); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *employeeUsecase) deleteEmployee(tx *gorm.DB, id int) error {
	rows, err := u.employeeRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete employee %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperr.NotFound("employee/not-found", "employee with id %d is not found", id)
	}
	return nil
}
