package schedule

import (
	"context"

	"github.com/medpoint/hospital-scheduler/internal/models"
)

// Repository is the persistence port for the scheduling core. Lookups
// return (nil, nil) when the record is absent; errors are reserved for
// storage failures.
type Repository interface {
	// -------- Doctor --------
	FindDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	CountAppointmentsForDoctor(
		ctx context.Context,
		doctorID uint,
	) (int64, error)

	DeleteDoctor(
		ctx context.Context,
		id uint,
	) error

	// -------- Appointment (create / conflict) --------
	FindAppointmentByDoctorDateTime(
		ctx context.Context,
		doctorID uint,
		date string,
		timeOfDay string,
	) (*models.Appointment, error)

	// InsertAppointment persists a new booking. A violation of the
	// (doctor, date, time) unique index is reported as the slot_taken
	// business error, never as a generic storage failure.
	InsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	FindAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	FindAppointmentForUser(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Availability --------
	ListBookedTimes(
		ctx context.Context,
		doctorID uint,
		date string,
	) ([]string, error)
}
