package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	Name      string `json:"name" validate:"required,min=3,max=128"`
	Gender    string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Birthdate string `json:"birthdate" validate:"required,datetime=2006-01-02"`
	NoKTP     string `json:"no_ktp" validate:"required,len=16,numeric"`
	Address   string `json:"address" validate:"required,min=5,max=200"`
}

// UpdatePatientRequest is a patch: nil fields leave the stored value
// unchanged. Vaccine fields are deliberately absent; only the warehouse
// sync job writes them.
type UpdatePatientRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=3,max=128"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	Birthdate *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	NoKTP     *string `json:"no_ktp" validate:"omitempty,len=16,numeric"`
	Address   *string `json:"address" validate:"omitempty,min=5,max=200"`
}

// Response DTOs

type PatientResponse struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Gender       string    `json:"gender"`
	Birthdate    string    `json:"birthdate"`
	NoKTP        string    `json:"no_ktp"`
	Address      string    `json:"address"`
	VaccineType  *string   `json:"vaccine_type,omitempty"`
	VaccineCount *int      `json:"vaccine_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
