package entity

import "time"

// Patient represents a registered patient. VaccineType and VaccineCount are
// written only by the warehouse sync job, never by appointment logic.
type Patient struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(128);not null" json:"name"`
	Gender       string    `gorm:"type:varchar(6);not null" json:"gender"`
	Birthdate    time.Time `gorm:"type:date;not null" json:"birthdate"`
	NoKTP        string    `gorm:"column:no_ktp;type:char(16);uniqueIndex;not null" json:"no_ktp"`
	Address      string    `gorm:"type:varchar(200);not null" json:"address"`
	VaccineType  *string   `gorm:"type:varchar(50)" json:"vaccine_type,omitempty"`
	VaccineCount *int      `json:"vaccine_count,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Appointments []Appointment `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
