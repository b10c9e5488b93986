package booking

import (
	"context"

	"github.com/medpoint/hospital-scheduler/internal/httperr"
	"github.com/medpoint/hospital-scheduler/internal/models"
)

// memRepo is an in-memory schedule.Repository for use-case tests. Its
// insert enforces the (doctor, date, time) uniqueness rule the same way
// the database index does, so the race backstop is testable without
// storage: set hideFromPrecheck and the existence pre-check reports a
// free slot while the insert still collides.
type memRepo struct {
	doctors      map[uint]*models.Doctor
	appointments map[uint]*models.Appointment
	nextID       uint

	hideFromPrecheck bool
}

func newMemRepo() *memRepo {
	return &memRepo{
		doctors:      make(map[uint]*models.Doctor),
		appointments: make(map[uint]*models.Appointment),
	}
}

func (r *memRepo) addDoctor(d models.Doctor) *models.Doctor {
	r.nextID++
	d.ID = r.nextID
	r.doctors[d.ID] = &d
	return &d
}

func (r *memRepo) FindDoctorByID(_ context.Context, id uint) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}

func (r *memRepo) CountAppointmentsForDoctor(_ context.Context, doctorID uint) (int64, error) {
	var count int64
	for _, ap := range r.appointments {
		if ap.DoctorID == doctorID {
			count++
		}
	}
	return count, nil
}

func (r *memRepo) DeleteDoctor(_ context.Context, id uint) error {
	delete(r.doctors, id)
	return nil
}

func (r *memRepo) FindAppointmentByDoctorDateTime(
	_ context.Context,
	doctorID uint,
	date string,
	timeOfDay string,
) (*models.Appointment, error) {
	if r.hideFromPrecheck {
		return nil, nil
	}
	for _, ap := range r.appointments {
		if ap.DoctorID == doctorID && ap.Date == date && ap.Time == timeOfDay {
			return ap, nil
		}
	}
	return nil, nil
}

func (r *memRepo) InsertAppointment(_ context.Context, ap *models.Appointment) error {
	for _, existing := range r.appointments {
		if existing.DoctorID == ap.DoctorID && existing.Date == ap.Date && existing.Time == ap.Time {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	r.nextID++
	ap.ID = r.nextID
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *memRepo) FindAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := *ap
	if d, ok := r.doctors[ap.DoctorID]; ok {
		cp.Doctor = *d
	}
	return &cp, nil
}

func (r *memRepo) FindAppointmentForUser(
	_ context.Context,
	id uint,
	userID uint,
) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok || ap.UserID != userID {
		return nil, nil
	}
	cp := *ap
	if d, ok := r.doctors[ap.DoctorID]; ok {
		cp.Doctor = *d
	}
	return &cp, nil
}

func (r *memRepo) UpdateAppointmentStatus(_ context.Context, ap *models.Appointment) error {
	stored, ok := r.appointments[ap.ID]
	if !ok {
		return nil
	}
	stored.Status = ap.Status
	return nil
}

func (r *memRepo) DeleteAppointment(_ context.Context, id uint) error {
	delete(r.appointments, id)
	return nil
}

func (r *memRepo) ListBookedTimes(
	_ context.Context,
	doctorID uint,
	date string,
) ([]string, error) {
	var times []string
	for _, ap := range r.appointments {
		if ap.DoctorID == doctorID && ap.Date == date {
			times = append(times, ap.Time)
		}
	}
	return times, nil
}
