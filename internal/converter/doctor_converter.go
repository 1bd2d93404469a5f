package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:            doctor.ID,
		Name:          doctor.Name,
		Username:      doctor.Username,
		Gender:        doctor.Gender,
		Birthdate:     doctor.Birthdate.Format("2006-01-02"),
		WorkStartTime: doctor.WorkStartTime,
		WorkEndTime:   doctor.WorkEndTime,
		CreatedAt:     doctor.CreatedAt,
		UpdatedAt:     doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
