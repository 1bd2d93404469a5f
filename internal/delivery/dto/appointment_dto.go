package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID int       `json:"patient_id" validate:"required"`
	DoctorID  int       `json:"doctor_id" validate:"required"`
	Datetime  time.Time `json:"datetime" validate:"required"`
	Status    string    `json:"status" validate:"omitempty,oneof=IN_QUEUE DONE CANCELLED"`
	Diagnose  *string   `json:"diagnose"`
	Notes     *string   `json:"notes"`
}

// UpdateAppointmentRequest is a patch: nil fields leave the stored value
// unchanged. Changing doctor, patient or datetime re-runs admission
// control against the merged record; the other fields bypass it.
type UpdateAppointmentRequest struct {
	PatientID *int       `json:"patient_id"`
	DoctorID  *int       `json:"doctor_id"`
	Datetime  *time.Time `json:"datetime"`
	Status    *string    `json:"status" validate:"omitempty,oneof=IN_QUEUE DONE CANCELLED"`
	Diagnose  *string    `json:"diagnose"`
	Notes     *string    `json:"notes"`
}

// AffectsSchedule reports whether the patch touches a field that is subject
// to admission control.
func (r *UpdateAppointmentRequest) AffectsSchedule() bool {
	return r.PatientID != nil || r.DoctorID != nil || r.Datetime != nil
}

// Response DTOs

type AppointmentResponse struct {
	ID        int       `json:"id"`
	PatientID int       `json:"patient_id"`
	DoctorID  int       `json:"doctor_id"`
	Datetime  time.Time `json:"datetime"`
	Status    string    `json:"status"`
	Diagnose  *string   `json:"diagnose,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Patient *PatientResponse `json:"patient,omitempty"`
	Doctor  *DoctorResponse  `json:"doctor,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
