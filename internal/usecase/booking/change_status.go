package booking

import (
	"context"

	"github.com/medpoint/hospital-scheduler/internal/audit"
	domain "github.com/medpoint/hospital-scheduler/internal/domain/schedule"
	"github.com/medpoint/hospital-scheduler/internal/httperr"
	"github.com/medpoint/hospital-scheduler/internal/models"
)

type ChangeStatusInput struct {
	AppointmentID uint
	NewStatus     string

	ActorID   uint
	ActorRole string
}

type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	in ChangeStatusInput,
) (*models.Appointment, error) {

	next := domain.Status(in.NewStatus)
	if !next.IsValid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	// Non-admins can only reach their own appointments; anything else
	// answers not-found so existence is never revealed.
	var ap *models.Appointment
	var err error
	if in.ActorRole == "admin" {
		ap, err = uc.repo.FindAppointmentByID(ctx, in.AppointmentID)
	} else {
		ap, err = uc.repo.FindAppointmentForUser(ctx, in.AppointmentID, in.ActorID)
	}
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !domain.CanTransition(domain.Status(ap.Status), next) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap.Status = string(next)
	if err := uc.repo.UpdateAppointmentStatus(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	return ap, nil
}
