package usecase

import (
	"io"
	"testing"
	"time"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/pkg/apperr"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// -- Mock Repositories --

type mockDoctorRepo struct {
	doctors map[int]*entity.Doctor
}

func newMockDoctorRepo(doctors ...*entity.Doctor) *mockDoctorRepo {
	m := &mockDoctorRepo{doctors: make(map[int]*entity.Doctor)}
	for _, d := range doctors {
		m.doctors[d.ID] = d
	}
	return m
}

func (m *mockDoctorRepo) Create(_ *gorm.DB, doctor *entity.Doctor) error {
	m.doctors[doctor.ID] = doctor
	return nil
}

func (m *mockDoctorRepo) FindAll(_ *gorm.DB) ([]entity.Doctor, error) {
	var result []entity.Doctor
	for _, d := range m.doctors {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDoctorRepo) FindByID(_ *gorm.DB, id int) (*entity.Doctor, error) {
	return m.doctors[id], nil
}

func (m *mockDoctorRepo) FindByIDForUpdate(_ *gorm.DB, id int) (*entity.Doctor, error) {
	return m.doctors[id], nil
}

func (m *mockDoctorRepo) Update(_ *gorm.DB, doctor *entity.Doctor) error {
	m.doctors[doctor.ID] = doctor
	return nil
}

func (m *mockDoctorRepo) Delete(_ *gorm.DB, id int) (int64, error) {
	if _, ok := m.doctors[id]; !ok {
		return 0, nil
	}
	delete(m.doctors, id)
	return 1, nil
}

type mockPatientRepo struct {
	patients  map[int]*entity.Patient
	createErr error
}

func newMockPatientRepo(patients ...*entity.Patient) *mockPatientRepo {
	m := &mockPatientRepo{patients: make(map[int]*entity.Patient)}
	for _, p := range patients {
		m.patients[p.ID] = p
	}
	return m
}

func (m *mockPatientRepo) Create(_ *gorm.DB, patient *entity.Patient) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.patients[patient.ID] = patient
	return nil
}

func (m *mockPatientRepo) FindAll(_ *gorm.DB) ([]entity.Patient, error) {
	var result []entity.Patient
	for _, p := range m.patients {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPatientRepo) FindByID(_ *gorm.DB, id int) (*entity.Patient, error) {
	return m.patients[id], nil
}

func (m *mockPatientRepo) Update(_ *gorm.DB, patient *entity.Patient) error {
	m.patients[patient.ID] = patient
	return nil
}

func (m *mockPatientRepo) Delete(_ *gorm.DB, id int) (int64, error) {
	if _, ok := m.patients[id]; !ok {
		return 0, nil
	}
	delete(m.patients, id)
	return 1, nil
}

func (m *mockPatientRepo) UpdateVaccineByKTP(_ *gorm.DB, noKTP string, vaccineType *string, vaccineCount *int) (int64, error) {
	for _, p := range m.patients {
		if p.NoKTP == noKTP {
			p.VaccineType = vaccineType
			p.VaccineCount = vaccineCount
			return 1, nil
		}
	}
	return 0, nil
}

type mockAppointmentRepo struct {
	appointments map[int]*entity.Appointment
	nextID       int
}

func newMockAppointmentRepo(appointments ...*entity.Appointment) *mockAppointmentRepo {
	m := &mockAppointmentRepo{appointments: make(map[int]*entity.Appointment), nextID: 1}
	for _, a := range appointments {
		m.appointments[a.ID] = a
		if a.ID >= m.nextID {
			m.nextID = a.ID + 1
		}
	}
	return m
}

func (m *mockAppointmentRepo) Create(_ *gorm.DB, appointment *entity.Appointment) error {
	appointment.ID = m.nextID
	m.nextID++
	m.appointments[appointment.ID] = appointment
	return nil
}

func (m *mockAppointmentRepo) FindByID(_ *gorm.DB, id int) (*entity.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *mockAppointmentRepo) FindForDoctorInRange(_ *gorm.DB, doctorID int, start, end time.Time) ([]entity.Appointment, error) {
	var result []entity.Appointment
	for _, a := range m.appointments {
		if a.DoctorID != doctorID {
			continue
		}
		if a.Datetime.Before(start) || !a.Datetime.Before(end) {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) Filter(_ *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var result []entity.Appointment
	for _, a := range m.appointments {
		if filter.PatientID != nil && a.PatientID != *filter.PatientID {
			continue
		}
		if filter.DoctorID != nil && a.DoctorID != *filter.DoctorID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && a.Datetime.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && !a.Datetime.Before(*filter.EndDate) {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) Update(_ *gorm.DB, appointment *entity.Appointment) error {
	m.appointments[appointment.ID] = appointment
	return nil
}

func (m *mockAppointmentRepo) Delete(_ *gorm.DB, id int) (int64, error) {
	if _, ok := m.appointments[id]; !ok {
		return 0, nil
	}
	delete(m.appointments, id)
	return 1, nil
}

// -- Helpers --

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testDoctor() *entity.Doctor {
	return &entity.Doctor{
		ID:            1,
		Name:          "Dr. Alice Johnson",
		Username:      "dralice",
		WorkStartTime: "09:00",
		WorkEndTime:   "17:00",
	}
}

func testPatient() *entity.Patient {
	return &entity.Patient{
		ID:    1,
		Name:  "Budi Santoso",
		NoKTP: "3175031234567890",
	}
}

func newTestAppointmentUsecase(doctors *mockDoctorRepo, patients *mockPatientRepo, appointments *mockAppointmentRepo) *appointmentUsecase {
	return &appointmentUsecase{
		log:             testLogger(),
		appointmentRepo: appointments,
		doctorRepo:      doctors,
		patientRepo:     patients,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 14, hour, minute, 0, 0, time.UTC)
}

func wantCode(t *testing.T, err error, kind apperr.Kind, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	appErr, ok := apperr.As(err)
	if !ok {
		t.Fatalf("expected tagged error, got %v", err)
	}
	if appErr.Kind != kind {
		t.Errorf("expected kind %s, got %s", kind, appErr.Kind)
	}
	if appErr.Code != code {
		t.Errorf("expected code %s, got %s", code, appErr.Code)
	}
}

// -- Tests --

func TestValidateAdmissionDoctorNotFound(t *testing.T) {
	u := newTestAppointmentUsecase(newMockDoctorRepo(), newMockPatientRepo(testPatient()), newMockAppointmentRepo())

	err := u.validateAdmission(nil, &entity.Appointment{PatientID: 1, DoctorID: 99, Datetime: at(10, 0)}, 0)
	wantCode(t, err, apperr.KindNotFound, "appointment/doctor-not-found")
}

func TestValidateAdmissionPatientNotFound(t *testing.T) {
	u := newTestAppointmentUsecase(newMockDoctorRepo(testDoctor()), newMockPatientRepo(), newMockAppointmentRepo())

	err := u.validateAdmission(nil, &entity.Appointment{PatientID: 99, DoctorID: 1, Datetime: at(10, 0)}, 0)
	wantCode(t, err, apperr.KindNotFound, "appointment/patient-not-found")
}

func TestValidateAdmissionChecksDoctorBeforePatient(t *testing.T) {
	// Neither exists; the doctor check must win.
	u := newTestAppointmentUsecase(newMockDoctorRepo(), newMockPatientRepo(), newMockAppointmentRepo())

	err := u.validateAdmission(nil, &entity.Appointment{PatientID: 99, DoctorID: 99, Datetime: at(10, 0)}, 0)
	wantCode(t, err, apperr.KindNotFound, "appointment/doctor-not-found")
}

func TestValidateAdmissionWorkingHoursWindow(t *testing.T) {
	// Doctor works 09:00-17:00; start inclusive, end exclusive.
	tests := []struct {
		name     string
		datetime time.Time
		wantErr  bool
	}{
		{"before window", at(8, 59), true},
		{"at window start", at(9, 0), false},
		{"mid window", at(12, 30), false},
		{"last admissible minute", at(16, 59), false},
		{"at window end", at(17, 0), true},
		{"after window", at(18, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := newTestAppointmentUsecase(newMockDoctorRepo(testDoctor()), newMockPatientRepo(testPatient()), newMockAppointmentRepo())

			err := u.validateAdmission(nil, &entity.Appointment{PatientID: 1, DoctorID: 1, Datetime: tc.datetime}, 0)
			if tc.wantErr {
				wantCode(t, err, apperr.KindValidation, "appointment/outside-working-hours")
			} else if err != nil {
				t.Fatalf("expected admission to pass, got %v", err)
			}
		})
	}
}

func TestValidateAdmissionSpacing(t *testing.T) {
	// Existing appointment at 10:00; anything closer than 30 minutes in
	// either direction is rejected, exactly 30 minutes is allowed.
	tests := []struct {
		name     string
		datetime time.Time
		wantErr  bool
	}{
		{"29 minutes after", at(10, 29), true},
		{"30 minutes after", at(10, 30), false},
		{"29 minutes before", at(9, 31), true},
		{"30 minutes before", at(9, 30), false},
		{"same minute", at(10, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			existing := &entity.Appointment{ID: 7, PatientID: 2, DoctorID: 1, Datetime: at(10, 0), Status: entity.AppointmentStatusInQueue}
			u := newTestAppointmentUsecase(newMockDoctorRepo(testDoctor()), newMockPatientRepo(testPatient()), newMockAppointmentRepo(existing))

			err := u.validateAdmission(nil, &entity.Appointment{PatientID: 1, DoctorID: 1, Datetime: tc.datetime}, 0)
			if tc.wantErr {
				wantCode(t, err, apperr.KindValidation, "appointment/doctor-busy")
			} else if err != nil {
				t.Fatalf("expected admission to pass, got %v", err)
			}
		})
	}
}

func TestValidateAdmissionIgnoresOtherDoctors(t *testing.T) {
	otherDoctor := testDoctor()
	otherDoctor.ID = 2
	otherDoctor.Username = "drbob"
	existing := &entity.Appointment{ID: 7, PatientID: 2, DoctorID: 2, Datetime: at(10, 0)}
	u := newTestAppointmentUsecase(newMockDoctorRepo(testDoctor(), otherDoctor), newMockPatientRepo(testPatient()), newMockAppointmentRepo(existing))

	if err := u.validateAdmission(nil, &entity.Appointment{PatientID: 1, DoctorID: 1, Datetime: at(10, 0)}, 0); err != nil {
		t.Fatalf("expected admission to pass, got %v", err)
	}
}

func TestValidateAdmissionExcludesOwnRow(t *testing.T) {
	// Rescheduling within 30 minutes of the appointment's own stored slot
	// must not conflict with itself.
	existing := &entity.Appointment{ID: 7, PatientID: 1, DoctorID: 1, Datetime: at(10, 0)}
	u := newTestAppointmentUsecase(newMockDoctorRepo(testDoctor()), newMockPatientRepo(testPatient()), newMockAppointmentRepo(existing))

	if err := u.validateAdmission(nil, &entity.Appointment{ID: 7, PatientID: 1, DoctorID: 1, Datetime: at(10, 10)}, 7); err != nil {
		t.Fatalf("expected admission to pass, got %v", err)
	}
}

func TestValidateAdmissionIgnoresBookingOutsideWorkingWindow(t *testing.T) {
	// A leftover booking before the doctor's current hours must not block a
	// candidate at the start of the window, even though the two are less
	// than 30 minutes apart.
	stale := &entity.Appointment{ID: 7, PatientID: 2, DoctorID: 1, Datetime: at(8, 45)}
	u := newTestAppointmentUsecase(newMockDoctorRepo(testDoctor()), newMockPatientRepo(testPatient()), newMockAppointmentRepo(stale))

	if err := u.validateAdmission(nil, &entity.Appointment{PatientID: 1, DoctorID: 1, Datetime: at(9, 0)}, 0); err != nil {
		t.Fatalf("expected admission to pass, got %v", err)
	}
}

func TestValidateAdmissionCancelledStillBlocks(t *testing.T) {
	existing := &entity.Appointment{ID: 7, PatientID: 2, DoctorID: 1, Datetime: at(10, 0), Status: entity.AppointmentStatusCancelled}
	u := newTestAppointmentUsecase(newMockDoctorRepo(testDoctor()), newMockPatientRepo(testPatient()), newMockAppointmentRepo(existing))

	err := u.validateAdmission(nil, &entity.Appointment{PatientID: 1, DoctorID: 1, Datetime: at(10, 15)}, 0)
	wantCode(t, err, apperr.KindValidation, "appointment/doctor-busy")
}
