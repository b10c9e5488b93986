package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100;not null" json:"specialty"`

	// Wall-clock "HH:MM", 24-hour. Start must be before end.
	WorkingHoursStart string `gorm:"size:5;not null" json:"working_hours_start"`
	WorkingHoursEnd   string `gorm:"size:5;not null" json:"working_hours_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
