package entity

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"09:00", 9 * time.Hour, false},
		{"17:30", 17*time.Hour + 30*time.Minute, false},
		{"09:00:00", 9 * time.Hour, false},
		{"00:00", 0, false},
		{"25:00", 0, true},
		{"nine", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseClock(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestClockOf(t *testing.T) {
	moment := time.Date(2026, 9, 14, 10, 30, 15, 0, time.UTC)
	want := 10*time.Hour + 30*time.Minute + 15*time.Second
	if got := ClockOf(moment); got != want {
		t.Errorf("ClockOf() = %v, want %v", got, want)
	}
}

func TestWorkingWindow(t *testing.T) {
	doctor := &Doctor{WorkStartTime: "09:00", WorkEndTime: "17:00"}

	start, end, err := doctor.WorkingWindow()
	if err != nil {
		t.Fatalf("WorkingWindow(): %v", err)
	}
	if start != 9*time.Hour || end != 17*time.Hour {
		t.Errorf("WorkingWindow() = (%v, %v), want (9h, 17h)", start, end)
	}

	broken := &Doctor{WorkStartTime: "soon", WorkEndTime: "17:00"}
	if _, _, err := broken.WorkingWindow(); err == nil {
		t.Error("expected malformed start time to error")
	}
}

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{AppointmentStatusInQueue, AppointmentStatusDone, AppointmentStatusCancelled} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if AppointmentStatus("PENDING").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}
