package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	Name          string `json:"name" validate:"required,min=3,max=128"`
	Username      string `json:"username" validate:"required,min=3,max=32,username"`
	Password      string `json:"password" validate:"required,min=8,max=32,password"`
	Gender        string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Birthdate     string `json:"birthdate" validate:"required,datetime=2006-01-02"`
	WorkStartTime string `json:"work_start_time" validate:"required,clock"`
	WorkEndTime   string `json:"work_end_time" validate:"required,clock"`
}

// UpdateDoctorRequest is a patch: nil fields leave the stored value
// unchanged.
type UpdateDoctorRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=3,max=128"`
	Username      *string `json:"username" validate:"omitempty,min=3,max=32,username"`
	Password      *string `json:"password" validate:"omitempty,min=8,max=32,password"`
	Gender        *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	Birthdate     *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	WorkStartTime *string `json:"work_start_time" validate:"omitempty,clock"`
	WorkEndTime   *string `json:"work_end_time" validate:"omitempty,clock"`
}

// Response DTOs

type DoctorResponse struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	Gender        string    `json:"gender"`
	Birthdate     string    `json:"birthdate"`
	WorkStartTime string    `json:"work_start_time"`
	WorkEndTime   string    `json:"work_end_time"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
