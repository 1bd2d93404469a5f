package usecase

import (
	"context"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/pkg/apperr"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	GetByID(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id int) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
	}
}

// Create admits a new appointment. The admission checks and the insert run
// in one transaction so the doctor's day cannot change under us.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	status := entity.AppointmentStatusInQueue
	if req.Status != "" {
		status = entity.AppointmentStatus(req.Status)
	}

	appointment := &entity.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Datetime:  req.Datetime,
		Status:    status,
		Diagnose:  req.Diagnose,
		Notes:     req.Notes,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.validateAdmission(tx, appointment, 0); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// List returns appointments matching the filter, ordered by datetime.
func (u *appointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.Filter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to filter appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperr.NotFound("appointment/not-found", "appointment with id %d is not found", id)
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Update applies a partial patch to a stored appointment. Patches that touch
// patient, doctor or datetime re-run admission control against the merged
// record; status, diagnose and notes changes go through unchecked.
func (u *appointmentUsecase) Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	stored, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if stored == nil {
		return nil, apperr.NotFound("appointment/not-found", "appointment with id %d is not found", id)
	}

	merged := applyPatch(stored, req)

	if req.AffectsSchedule() {
		if err := u.validateAdmission(tx, merged, merged.ID); err != nil {
			return nil, err
		}
	}

	if err := u.appointmentRepo.Update(tx, merged); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(merged), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.deleteAppointment(tx, id); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// deleteAppointment removes the row inside the caller's transaction. A miss
// reports NotFound, so deleting the same id twice answers the second call
// consistently instead of failing.
func (u *appointmentUsecase) deleteAppointment(tx *gorm.DB, id int) error {
	rows, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperr.NotFound("appointment/not-found", "appointment with id %d is not found", id)
	}
	return nil
}

// applyPatch merges a patch onto a stored appointment without mutating it.
// Nil patch fields keep the stored value.
func applyPatch(stored *entity.Appointment, req *dto.UpdateAppointmentRequest) *entity.Appointment {
	merged := *stored

	if req.PatientID != nil {
		merged.PatientID = *req.PatientID
	}
	if req.DoctorID != nil {
		merged.DoctorID = *req.DoctorID
	}
	if req.Datetime != nil {
		merged.Datetime = *req.Datetime
	}
	if req.Status != nil {
		merged.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.Diagnose != nil {
		merged.Diagnose = req.Diagnose
	}
	if req.Notes != nil {
		merged.Notes = req.Notes
	}

	return &merged
}
