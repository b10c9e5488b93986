package db

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/medpoint/hospital-scheduler/internal/models"
)

// Seed inserts the default admin account and a starter set of doctors.
// Existing rows are left untouched, so running it on every boot is
// safe.
func Seed(db *gorm.DB) error {
	doctors := []models.Doctor{
		{Name: "Dr. Sarah Johnson", Specialty: "Cardiology", WorkingHoursStart: "09:00", WorkingHoursEnd: "17:00"},
		{Name: "Dr. Michael Chen", Specialty: "Pediatrics", WorkingHoursStart: "08:00", WorkingHoursEnd: "16:00"},
		{Name: "Dr. Emily Rodriguez", Specialty: "Dermatology", WorkingHoursStart: "10:00", WorkingHoursEnd: "18:00"},
		{Name: "Dr. James Wilson", Specialty: "Orthopedics", WorkingHoursStart: "09:00", WorkingHoursEnd: "17:00"},
		{Name: "Dr. Lisa Anderson", Specialty: "Neurology", WorkingHoursStart: "08:30", WorkingHoursEnd: "16:30"},
	}

	for _, d := range doctors {
		var count int64
		db.Model(&models.Doctor{}).
			Where("name = ? AND specialty = ?", d.Name, d.Specialty).
			Count(&count)
		if count == 0 {
			if err := db.Create(&d).Error; err != nil {
				return err
			}
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     "admin",
		Email:        "admin@hospital.com",
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error
}
