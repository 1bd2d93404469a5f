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

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	List(ctx context.Context) (*dto.DoctorListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id int) error
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return nil, apperr.Validation("doctor/invalid-birthdate", "invalid birthdate format, use YYYY-MM-DD")
	}

	if err := validateWorkingHours(req.WorkStartTime, req.WorkEndTime); err != nil {
		return nil, err
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	doctor := &entity.Doctor{
		Name:          req.Name,
		Username:      req.Username,
		Password:      string(hashedPassword),
		Gender:        req.Gender,
		Birthdate:     birthdate,
		WorkStartTime: req.WorkStartTime,
		WorkEndTime:   req.WorkEndTime,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, apperr.Conflict("doctor/username-exists", "username %s is already taken", req.Username)
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) List(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperr.NotFound("doctor/not-found", "doctor with id %d is not found", id)
	}

	return converter.DoctorToResponse(doctor), nil
}

// Update patches a doctor. Shrinking the working window does not touch
// already-admitted appointments; they keep their slots.
func (u *doctorUsecase) Update(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperr.NotFound("doctor/not-found", "doctor with id %d is not found", id)
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Username != nil {
		doctor.Username = *req.Username
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		doctor.Password = string(hashedPassword)
	}
	if req.Gender != nil {
		doctor.Gender = *req.Gender
	}
	if req.Birthdate != nil {
		birthdate, err := time.Parse("2006-01-02", *req.Birthdate)
		if err != nil {
			return nil, apperr.Validation("doctor/invalid-birthdate", "invalid birthdate format, use YYYY-MM-DD")
		}
		doctor.Birthdate = birthdate
	}
	if req.WorkStartTime != nil {
		doctor.WorkStartTime = *req.WorkStartTime
	}
	if req.WorkEndTime != nil {
		doctor.WorkEndTime = *req.WorkEndTime
	}

	if req.WorkStartTime != nil || req.WorkEndTime != nil {
		if err := validateWorkingHours(doctor.WorkStartTime, doctor.WorkEndTime); err != nil {
			return nil, err
		}
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, apperr.Conflict("doctor/username-exists", "username %s is already taken", doctor.Username)
		}
		u.log.Warnf("Failed to update doctor %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// Delete removes a doctor; the database cascades to their appointments.
func (u *doctorUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.deleteDoctor(tx, id); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *doctorUsecase) deleteDoctor(tx *gorm.DB, id int) error {
	rows, err := u.doctorRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperr.NotFound("doctor/not-found", "doctor with id %d is not found", id)
	}
	return nil
}

// validateWorkingHours checks that both clocks parse and the window is
// non-empty.
func validateWorkingHours(startClock, endClock string) error {
	start, err := entity.ParseClock(startClock)
	if err != nil {
		return apperr.Validation("doctor/invalid-working-hours", "invalid work start time, use HH:MM")
	}
	end, err := entity.ParseClock(endClock)
	if err != nil {
		return apperr.Validation("doctor/invalid-working-hours", "invalid work end time, use HH:MM")
	}
	if end <= start {
		return apperr.Validation("doctor/invalid-working-hours", "work end time must be after work start time")
	}
	return nil
}
