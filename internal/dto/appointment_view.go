package dto

import (
	"time"

	"github.com/medpoint/hospital-scheduler/internal/models"
)

type DoctorSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AppointmentView is the denormalized shape an appointment takes
// whenever it crosses the API boundary.
type AppointmentView struct {
	ID          uint          `json:"id"`
	PatientName string        `json:"patient_name"`
	Doctor      DoctorSummary `json:"doctor"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`

	// Populated only on admin views.
	User *UserSummary `json:"user,omitempty"`
}

// NewAppointmentView is the single projection point for appointment
// responses. The appointment must have Doctor preloaded.
func NewAppointmentView(ap *models.Appointment) AppointmentView {
	return AppointmentView{
		ID:          ap.ID,
		PatientName: ap.PatientName,
		Doctor: DoctorSummary{
			ID:        ap.DoctorID,
			Name:      ap.Doctor.Name,
			Specialty: ap.Doctor.Specialty,
		},
		Date:      ap.Date,
		Time:      ap.Time,
		Status:    ap.Status,
		CreatedAt: ap.CreatedAt,
	}
}

// NewAdminAppointmentView additionally exposes the owning user.
func NewAdminAppointmentView(ap *models.Appointment) AppointmentView {
	view := NewAppointmentView(ap)
	view.User = &UserSummary{
		ID:       ap.UserID,
		Username: ap.User.Username,
		Email:    ap.User.Email,
	}
	return view
}
