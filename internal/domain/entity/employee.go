package entity

import "time"

// Gender constants shared by Employee, Doctor and Patient
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// Employee represents a clinic staff member able to log in
type Employee struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(128);not null" json:"name"`
	Username  string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:varchar(128);not null" json:"-"`
	Gender    string    `gorm:"type:varchar(6);not null" json:"gender"`
	Birthdate time.Time `gorm:"type:date;not null" json:"birthdate"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
