package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/medpoint/hospital-scheduler/internal/audit"
	domain "github.com/medpoint/hospital-scheduler/internal/domain/schedule"
	"github.com/medpoint/hospital-scheduler/internal/httperr"
	"github.com/medpoint/hospital-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	DoctorID    uint
	PatientName string

	Date string // YYYY-MM-DD
	Time string // HH:MM

	UserID uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	doctor, err := uc.repo.FindDoctorByID(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if domain.IsWeekend(date) {
		return nil, httperr.ErrBusiness("weekend_not_allowed")
	}

	if domain.IsPastDate(date, uc.now()) {
		return nil, httperr.ErrBusiness("past_date")
	}

	ok, err := domain.WithinWorkingHours(
		doctor.WorkingHoursStart,
		doctor.WorkingHoursEnd,
		in.Time,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if !ok {
		return nil, httperr.ErrBusinessMsg(
			"outside_working_hours",
			fmt.Sprintf(
				"Appointment time must be within doctor's working hours (%s - %s).",
				doctor.WorkingHoursStart,
				doctor.WorkingHoursEnd,
			),
		)
	}

	existing, err := uc.repo.FindAppointmentByDoctorDateTime(
		ctx,
		in.DoctorID,
		in.Date,
		in.Time,
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	ap := &models.Appointment{
		DoctorID:    in.DoctorID,
		UserID:      in.UserID,
		PatientName: in.PatientName,
		Date:        in.Date,
		Time:        in.Time,
		Status:      string(domain.InitialStatus()),
	}

	// The pre-check above can race with a concurrent booking; the
	// repository remaps the unique-index violation to slot_taken.
	if err := uc.repo.InsertAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// Reload with doctor details for the denormalized response.
	created, err := uc.repo.FindAppointmentByID(ctx, ap.ID)
	if err != nil || created == nil {
		return ap, nil
	}
	return created, nil
}
