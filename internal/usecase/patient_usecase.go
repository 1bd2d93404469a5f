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
	"gorm.io/gorm"
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context) (*dto.PatientListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return nil, apperr.Validation("patient/invalid-birthdate", "invalid birthdate format, use YYYY-MM-DD")
	}

	patient := &entity.Patient{
		Name:      req.Name,
		Gender:    req.Gender,
		Birthdate: birthdate,
		NoKTP:     req.NoKTP,
		Address:   req.Address,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.createPatient(tx, patient); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// createPatient inserts the row inside the caller's transaction. The unique
// constraint on no_ktp is the backstop; a violation surfaces as a conflict
// naming the KTP number.
func (u *patientUsecase) createPatient(tx *gorm.DB, patient *entity.Patient) error {
	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "no_ktp") {
			return apperr.Conflict("patient/duplicate-ktp", "patient with KTP number %s is already registered", patient.NoKTP)
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return err
	}
	return nil
}

func (u *patientUsecase) List(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperr.NotFound("patient/not-found", "patient with id %d is not found", id)
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperr.NotFound("patient/not-found", "patient with id %d is not found", id)
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}
	if req.Birthdate != nil {
		birthdate, err := time.Parse("2006-01-02", *req.Birthdate)
		if err != nil {
			return nil, apperr.Validation("patient/invalid-birthdate", "invalid birthdate format, use YYYY-MM-DD")
		}
		patient.Birthdate = birthdate
	}
	if req.NoKTP != nil {
		patient.NoKTP = *req.NoKTP
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		if isDuplicateKeyError(err, "no_ktp") {
			return nil, apperr.Conflict("patient/duplicate-ktp", "patient with KTP number %s is already registered", patient.NoKTP)
		}
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// Delete removes a patient; the database cascades to their appointments.
func (u *patientUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.deletePatient(tx, id); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *patientUsecase) deletePatient(tx *gorm.DB, id int) error {
	rows, err := u.patientRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperr.NotFound("patient/not-found", "patient with id %d is not found", id)
	}
	return nil
}
