package main

import (
	"time"

	"clinic-backend/config"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the database with an initial set of employees and doctors. Safe to
// run repeatedly; existing data is left alone.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seedEmployees(db); err != nil {
		logrus.Fatalf("Failed to seed employees: %v", err)
	}

	if err := seedDoctors(db); err != nil {
		logrus.Fatalf("Failed to seed doctors: %v", err)
	}

	logrus.Info("Database seeding completed")
}

func seedEmployees(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("Employees data already exists, skipping...")
		return nil
	}

	logrus.Info("Seeding employees...")
	employees := []entity.Employee{
		{
			Name:      "John Doe",
			Username:  "johndoe",
			Password:  mustHash("password123"),
			Gender:    entity.GenderMale,
			Birthdate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:      "Jane Smith",
			Username:  "janesmith",
			Password:  mustHash("password456"),
			Gender:    entity.GenderFemale,
			Birthdate: time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	return db.Create(&employees).Error
}

func seedDoctors(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Doctor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("Doctors data already exists, skipping...")
		return nil
	}

	logrus.Info("Seeding doctors...")
	doctors := []entity.Doctor{
		{
			Name:          "Dr. Alice Johnson",
			Username:      "dralice",
			Password:      mustHash("doctorpass123"),
			Gender:        entity.GenderFemale,
			Birthdate:     time.Date(1980, 3, 20, 0, 0, 0, 0, time.UTC),
			WorkStartTime: "09:00",
			WorkEndTime:   "17:00",
		},
		{
			Name:          "Dr. Bob Williams",
			Username:      "drbob",
			Password:      mustHash("doctorpass456"),
			Gender:        entity.GenderMale,
			Birthdate:     time.Date(1975, 7, 10, 0, 0, 0, 0, time.UTC),
			WorkStartTime: "10:00",
			WorkEndTime:   "18:00",
		},
	}

	return db.Create(&doctors).Error
}

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("Failed to hash password: %v", err)
	}
	return string(hashed)
}
