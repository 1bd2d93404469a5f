package entity

import (
	"fmt"
	"time"
)

// Doctor represents a practicing doctor with a recurring daily availability
// window. WorkStartTime/WorkEndTime are clock values ("HH:MM"); the window is
// half-open: the start minute is bookable, the end minute is not.
type Doctor struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(128);not null" json:"name"`
	Username      string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"username"`
	Password      string    `gorm:"type:varchar(128);not null" json:"-"`
	Gender        string    `gorm:"type:varchar(6);not null" json:"gender"`
	Birthdate     time.Time `gorm:"type:date;not null" json:"birthdate"`
	WorkStartTime string    `gorm:"type:time;not null" json:"work_start_time"`
	WorkEndTime   string    `gorm:"type:time;not null" json:"work_end_time"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Appointments []Appointment `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// WorkingWindow returns the doctor's availability as offsets from midnight.
func (d *Doctor) WorkingWindow() (start, end time.Duration, err error) {
	start, err = ParseClock(d.WorkStartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseClock(d.WorkEndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// ParseClock parses "HH:MM" or "HH:MM:SS" (the Postgres time column scans
// back with seconds) into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
		}
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// ClockOf returns t's time-of-day as an offset from midnight.
func ClockOf(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}
