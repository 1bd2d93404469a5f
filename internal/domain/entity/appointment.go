package entity

import "time"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusInQueue   AppointmentStatus = "IN_QUEUE"
	AppointmentStatusDone      AppointmentStatus = "DONE"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusInQueue, AppointmentStatusDone, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is a point-in-time booking of a patient with a doctor.
// There is no duration field; spacing between appointments for the same
// doctor is enforced by the admission check at write time.
type Appointment struct {
	ID        int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int               `gorm:"not null;index" json:"patient_id"`
	DoctorID  int               `gorm:"not null;index" json:"doctor_id"`
	Datetime  time.Time         `gorm:"not null;index" json:"datetime"`
	Status    AppointmentStatus `gorm:"type:varchar(16);not null;default:'IN_QUEUE'" json:"status"`
	Diagnose  *string           `gorm:"type:text" json:"diagnose,omitempty"`
	Notes     *string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentFilter narrows appointment listings; all fields are optional
// and combined with AND. The date range is half-open [StartDate, EndDate).
type AppointmentFilter struct {
	PatientID *int
	DoctorID  *int
	Status    *AppointmentStatus
	StartDate *time.Time
	EndDate   *time.Time
}
