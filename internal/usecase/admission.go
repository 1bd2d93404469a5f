package usecase

import (
	"time"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/pkg/apperr"

	"gorm.io/gorm"
)

// minAppointmentGap is the minimum spacing between two appointments of the
// same doctor. Anything closer, in either direction, is rejected.
const minAppointmentGap = 30 * time.Minute

// validateAdmission runs the admission checks for a candidate appointment
// inside the caller's transaction. The order is part of the API contract:
// doctor existence, patient existence, working-hours window, then the
// spacing check against the doctor's same-day appointments. The doctor row
// is locked so concurrent admissions for the same doctor serialize.
//
// excludeID is the appointment being rescheduled, or 0 on create; its own
// stored row never blocks the candidate.
func (u *appointmentUsecase) validateAdmission(tx *gorm.DB, candidate *entity.Appointment, excludeID int) error {
	// Step 1: Doctor must exist (locked for the rest of the transaction)
	doctor, err := u.doctorRepo.FindByIDForUpdate(tx, candidate.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", candidate.DoctorID, err)
		return err
	}
	if doctor == nil {
		return apperr.NotFound("appointment/doctor-not-found", "doctor with id %d is not found", candidate.DoctorID)
	}

	// Step 2: Patient must exist
	patient, err := u.patientRepo.FindByID(tx, candidate.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", candidate.PatientID, err)
		return err
	}
	if patient == nil {
		return apperr.NotFound("appointment/patient-not-found", "patient with id %d is not found", candidate.PatientID)
	}

	// Step 3: Appointment time must fall inside the doctor's working hours.
	// The window is half-open: the start minute is admissible, the end
	// minute is not.
	workStart, workEnd, err := doctor.WorkingWindow()
	if err != nil {
		u.log.Warnf("Doctor %d has malformed working hours: %+v", doctor.ID, err)
		return err
	}
	clock := entity.ClockOf(candidate.Datetime)
	if clock < workStart || clock >= workEnd {
		return apperr.Validation("appointment/outside-working-hours", "appointment time is outside of doctor's working hours")
	}

	// Step 4: No other appointment of this doctor within 30 minutes. The
	// scan covers the doctor's working window on the candidate's day, so a
	// stale booking left outside the current hours does not block anything.
	// Cancelled appointments still hold their slot.
	midnight := time.Date(
		candidate.Datetime.Year(), candidate.Datetime.Month(), candidate.Datetime.Day(),
		0, 0, 0, 0, candidate.Datetime.Location(),
	)
	rangeStart := midnight.Add(workStart)
	rangeEnd := midnight.Add(workEnd)

	existing, err := u.appointmentRepo.FindForDoctorInRange(tx, candidate.DoctorID, rangeStart, rangeEnd)
	if err != nil {
		u.log.Warnf("Failed to load appointments for doctor %d: %+v", candidate.DoctorID, err)
		return err
	}

	for i := range existing {
		if existing[i].ID == excludeID {
			continue
		}
		gap := candidate.Datetime.Sub(existing[i].Datetime)
		if gap < 0 {
			gap = -gap
		}
		if gap < minAppointmentGap {
			return apperr.Validation("appointment/doctor-busy", "doctor is already booked at this time")
		}
	}

	return nil
}
