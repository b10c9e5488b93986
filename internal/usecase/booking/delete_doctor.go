package booking

import (
	"context"

	"github.com/medpoint/hospital-scheduler/internal/audit"
	domain "github.com/medpoint/hospital-scheduler/internal/domain/schedule"
	"github.com/medpoint/hospital-scheduler/internal/httperr"
)

// DeleteDoctor removes a doctor only when no appointment references
// them, regardless of appointment status. Referential-integrity guard,
// not a cascading delete.
type DeleteDoctor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteDoctor(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteDoctor {
	return &DeleteDoctor{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteDoctor) Execute(
	ctx context.Context,
	doctorID uint,
	actorID uint,
) error {

	doctor, err := uc.repo.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return httperr.ErrBusiness("doctor_not_found")
	}

	count, err := uc.repo.CountAppointmentsForDoctor(ctx, doctorID)
	if err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("doctor_has_appointments")
	}

	if err := uc.repo.DeleteDoctor(ctx, doctorID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "doctor_deleted",
		Entity:   "doctor",
		EntityID: &doctorID,
	})

	return nil
}
