package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// EmployeeToResponse converts an Employee entity to EmployeeResponse DTO
func EmployeeToResponse(employee *entity.Employee) *dto.EmployeeResponse {
	if employee == nil {
		return nil
	}

	return &dto.EmployeeResponse{
		ID:        employee.ID,
		Name:      employee.Name,
		Username:  employee.Username,
		Gender:    employee.Gender,
		Birthdate: employee.Birthdate.Format("2006-01-02"),
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}

// EmployeesToResponses converts a slice of Employee entities to response DTOs
func EmployeesToResponses(employees []entity.Employee) []dto.EmployeeResponse {
	responses := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *EmployeeToResponse(&employees[i])
	}
	return responses
}
