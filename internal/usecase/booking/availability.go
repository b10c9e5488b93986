package booking

import (
	"context"
	"time"

	domain "github.com/medpoint/hospital-scheduler/internal/domain/schedule"
	"github.com/medpoint/hospital-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the doctor's open slots for a date: the 30-minute
// grid over their working hours minus already-booked times. Weekend
// dates have no bookable slots.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorID uint,
	dateStr string,
) ([]string, error) {

	doctor, err := uc.repo.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if domain.IsWeekend(date) {
		return []string{}, nil
	}

	slots := domain.Slots(doctor.WorkingHoursStart, doctor.WorkingHoursEnd)
	if len(slots) == 0 {
		return []string{}, nil
	}

	booked, err := uc.repo.ListBookedTimes(ctx, doctorID, dateStr)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	open := make([]string, 0, len(slots))
	for _, s := range slots {
		if !taken[s] {
			open = append(open, s)
		}
	}
	return open, nil
}
