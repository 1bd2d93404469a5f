package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type EmployeeHandler struct {
	employeeUsecase usecase.EmployeeUsecase
	validator       *validator.CustomValidator
}

func NewEmployeeHandler(employeeUsecase usecase.EmployeeUsecase, validator *validator.CustomValidator) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUsecase: employeeUsecase,
		validator:       validator,
	}
}

// Create registers a new employee
// @Summary Create employee
// @Tags Employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /employees [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ValidationError(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	employee, err := h.employeeUsecase.Create(r.Context(), &req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusCreated, employee)
}

// List returns all employees
// @Summary List employees
// @Tags Employees
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /employees [get]
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeUsecase.List(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, employees)
}

// GetByID returns one employee
// @Summary Get employee
// @Tags Employees
// @Security BearerAuth
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.ValidationError(w, "Invalid employee ID")
		return
	}

	employee, err := h.employeeUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, employee)
}

// Update patches an employee
// @Summary Update employee
// @Tags Employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Patch"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.ValidationError(w, "Invalid employee ID")
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ValidationError(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	employee, err := h.employeeUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, employee)
}

// Delete removes an employee
// @Summary Delete employee
// @Tags Employees
// @Security BearerAuth
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.ValidationError(w, "Invalid employee ID")
		return
	}

	if err := h.employeeUsecase.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}
