package usecase

import (
	"testing"
	"time"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/pkg/apperr"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func TestApplyPatchKeepsUnsetFields(t *testing.T) {
	stored := &entity.Appointment{
		ID:        7,
		PatientID: 1,
		DoctorID:  2,
		Datetime:  at(10, 0),
		Status:    entity.AppointmentStatusInQueue,
		Notes:     strPtr("first visit"),
	}

	merged := applyPatch(stored, &dto.UpdateAppointmentRequest{
		Status:   strPtr(string(entity.AppointmentStatusDone)),
		Diagnose: strPtr("common cold"),
	})

	if merged.PatientID != 1 || merged.DoctorID != 2 || !merged.Datetime.Equal(at(10, 0)) {
		t.Errorf("unset fields changed: %+v", merged)
	}
	if merged.Status != entity.AppointmentStatusDone {
		t.Errorf("expected status DONE, got %s", merged.Status)
	}
	if merged.Diagnose == nil || *merged.Diagnose != "common cold" {
		t.Errorf("expected diagnose to be set, got %v", merged.Diagnose)
	}
	if merged.Notes == nil || *merged.Notes != "first visit" {
		t.Errorf("expected notes to survive, got %v", merged.Notes)
	}
}

func TestApplyPatchDoesNotMutateStored(t *testing.T) {
	stored := &entity.Appointment{ID: 7, PatientID: 1, DoctorID: 2, Datetime: at(10, 0)}

	merged := applyPatch(stored, &dto.UpdateAppointmentRequest{
		DoctorID: intPtr(5),
		Datetime: timePtr(at(14, 0)),
	})

	if stored.DoctorID != 2 || !stored.Datetime.Equal(at(10, 0)) {
		t.Errorf("stored appointment mutated: %+v", stored)
	}
	if merged.DoctorID != 5 || !merged.Datetime.Equal(at(14, 0)) {
		t.Errorf("patch not applied: %+v", merged)
	}
}

func TestDeleteAppointmentTwice(t *testing.T) {
	existing := &entity.Appointment{ID: 7, PatientID: 1, DoctorID: 1, Datetime: at(10, 0)}
	u := newTestAppointmentUsecase(newMockDoctorRepo(testDoctor()), newMockPatientRepo(testPatient()), newMockAppointmentRepo(existing))

	if err := u.deleteAppointment(nil, 7); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}

	err := u.deleteAppointment(nil, 7)
	wantCode(t, err, apperr.KindNotFound, "appointment/not-found")
}

func TestUpdateRequestAffectsSchedule(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateAppointmentRequest
		want bool
	}{
		{"empty patch", dto.UpdateAppointmentRequest{}, false},
		{"status only", dto.UpdateAppointmentRequest{Status: strPtr("DONE")}, false},
		{"diagnose and notes", dto.UpdateAppointmentRequest{Diagnose: strPtr("flu"), Notes: strPtr("rest")}, false},
		{"datetime", dto.UpdateAppointmentRequest{Datetime: timePtr(at(11, 0))}, true},
		{"doctor", dto.UpdateAppointmentRequest{DoctorID: intPtr(3)}, true},
		{"patient", dto.UpdateAppointmentRequest{PatientID: intPtr(3)}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.AffectsSchedule(); got != tc.want {
				t.Errorf("AffectsSchedule() = %v, want %v", got, tc.want)
			}
		})
	}
}
