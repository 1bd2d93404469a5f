package dto

import "time"

// Request DTOs

type CreateEmployeeRequest struct {
	Name      string `json:"name" validate:"required,min=3,max=128"`
	Username  string `json:"username" validate:"required,min=3,max=32,username"`
	Password  string `json:"password" validate:"required,min=8,max=32,password"`
	Gender    string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Birthdate string `json:"birthdate" validate:"required,datetime=2006-01-02"`
}

// UpdateEmployeeRequest is a patch: nil fields leave the stored value
// unchanged.
type UpdateEmployeeRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=3,max=128"`
	Username  *string `json:"username" validate:"omitempty,min=3,max=32,username"`
	Password  *string `json:"password" validate:"omitempty,min=8,max=32,password"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	Birthdate *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type EmployeeResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Gender    string    `json:"gender"`
	Birthdate string    `json:"birthdate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}
