package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create admits a new appointment
// @Summary Create appointment
// @Description Book a patient with a doctor, subject to admission checks
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ValidationError(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusCreated, appointment)
}

// List returns appointments matching the optional query filters
// @Summary List appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param patient_id query int false "Patient ID"
// @Param doctor_id query int false "Doctor ID"
// @Param status query string false "Status" Enums(IN_QUEUE, DONE, CANCELLED)
// @Param start_date query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param end_date query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /appointments [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAppointmentFilter(r)
	if err != nil {
		response.ValidationError(w, err.Error())
		return
	}

	appointments, err := h.appointmentUsecase.List(r.Context(), filter)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, appointments)
}

// GetByID returns one appointment with its patient and doctor
// @Summary Get appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.ValidationError(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, appointment)
}

// Update patches an appointment; schedule changes re-run admission checks
// @Summary Update appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Patch"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.ValidationError(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ValidationError(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, appointment)
}

// Delete removes an appointment
// @Summary Delete appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.ValidationError(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}

	response.Success(w, http.StatusOK, map[string]string{"message": "Appointment deleted successfully"})
}

// parseAppointmentFilter builds a filter from query parameters. Dates are
// whole days: end_date is inclusive, so the repository range ends at the
// following midnight.
func parseAppointmentFilter(r *http.Request) (*entity.AppointmentFilter, error) {
	query := r.URL.Query()
	filter := &entity.AppointmentFilter{}

	if raw := query.Get("patient_id"); raw != "" {
		patientID, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("patient_id must be an integer")
		}
		filter.PatientID = &patientID
	}

	if raw := query.Get("doctor_id"); raw != "" {
		doctorID, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("doctor_id must be an integer")
		}
		filter.DoctorID = &doctorID
	}

	if raw := query.Get("status"); raw != "" {
		status := entity.AppointmentStatus(raw)
		if !status.Valid() {
			return nil, errors.New("status must be one of IN_QUEUE, DONE, CANCELLED")
		}
		filter.Status = &status
	}

	if raw := query.Get("start_date"); raw != "" {
		startDate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, errors.New("start_date must be YYYY-MM-DD")
		}
		filter.StartDate = &startDate
	}

	if raw := query.Get("end_date"); raw != "" {
		endDate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, errors.New("end_date must be YYYY-MM-DD")
		}
		endExclusive := endDate.Add(24 * time.Hour)
		filter.EndDate = &endExclusive
	}

	return filter, nil
}
