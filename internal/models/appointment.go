package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint   `gorm:"not null;uniqueIndex:idx_doctor_slot" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"doctor"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	PatientName string `gorm:"size:100;not null" json:"patient_name"`

	// Calendar date "YYYY-MM-DD" and wall-clock time "HH:MM", stored
	// timezone-naive. The composite unique index is the authoritative
	// backstop against double booking.
	Date string `gorm:"size:10;not null;uniqueIndex:idx_doctor_slot" json:"date"`
	Time string `gorm:"size:5;not null;uniqueIndex:idx_doctor_slot" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
