package booking

import (
	"context"
	"testing"

	"github.com/medpoint/hospital-scheduler/internal/models"
)

func seedAppointment(repo *memRepo, doctorID, userID uint) *models.Appointment {
	ap := &models.Appointment{
		DoctorID:    doctorID,
		UserID:      userID,
		PatientName: "John Smith",
		Date:        wednesday,
		Time:        "09:00",
		Status:      "pending",
	}
	_ = repo.InsertAppointment(context.Background(), ap)
	return ap
}

func TestChangeStatusOwner(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	ap := seedAppointment(repo, doctor.ID, 7)
	uc := NewChangeStatus(repo, nil)

	updated, err := uc.Execute(context.Background(), ChangeStatusInput{
		AppointmentID: ap.ID,
		NewStatus:     "completed",
		ActorID:       7,
		ActorRole:     "user",
	})
	if err != nil {
		t.Fatalf("change status: %v", err)
	}
	if updated.Status != "completed" {
		t.Errorf("status = %q, want completed", updated.Status)
	}
}

func TestChangeStatusRoundTrip(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	ap := seedAppointment(repo, doctor.ID, 7)
	uc := NewChangeStatus(repo, nil)

	// pending → completed → pending: the lifecycle is deliberately
	// permissive, a finished appointment can be reopened.
	for _, status := range []string{"completed", "pending"} {
		if _, err := uc.Execute(context.Background(), ChangeStatusInput{
			AppointmentID: ap.ID,
			NewStatus:     status,
			ActorID:       7,
			ActorRole:     "user",
		}); err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
	}

	stored, _ := repo.FindAppointmentByID(context.Background(), ap.ID)
	if stored.Status != "pending" {
		t.Errorf("status after round trip = %q, want pending", stored.Status)
	}
}

func TestChangeStatusCancelledBack(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	ap := seedAppointment(repo, doctor.ID, 7)
	uc := NewChangeStatus(repo, nil)

	for _, status := range []string{"cancelled", "completed", "cancelled", "pending"} {
		if _, err := uc.Execute(context.Background(), ChangeStatusInput{
			AppointmentID: ap.ID,
			NewStatus:     status,
			ActorID:       7,
			ActorRole:     "user",
		}); err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
	}
}

func TestChangeStatusInvalid(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	ap := seedAppointment(repo, doctor.ID, 7)
	uc := NewChangeStatus(repo, nil)

	for _, status := range []string{"confirmed", "done", "", "PENDING"} {
		_, err := uc.Execute(context.Background(), ChangeStatusInput{
			AppointmentID: ap.ID,
			NewStatus:     status,
			ActorID:       7,
			ActorRole:     "user",
		})
		assertBusinessCode(t, err, "invalid_status")
	}
}

func TestChangeStatusNonOwnerDenied(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	ap := seedAppointment(repo, doctor.ID, 7)
	uc := NewChangeStatus(repo, nil)

	// A different non-admin user gets the same not-found answer as a
	// missing appointment, so existence is not leaked.
	_, err := uc.Execute(context.Background(), ChangeStatusInput{
		AppointmentID: ap.ID,
		NewStatus:     "cancelled",
		ActorID:       8,
		ActorRole:     "user",
	})
	assertBusinessCode(t, err, "appointment_not_found")

	stored, _ := repo.FindAppointmentByID(context.Background(), ap.ID)
	if stored.Status != "pending" {
		t.Errorf("status mutated by denied actor: %q", stored.Status)
	}
}

func TestChangeStatusAdminAnyAppointment(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	ap := seedAppointment(repo, doctor.ID, 7)
	uc := NewChangeStatus(repo, nil)

	updated, err := uc.Execute(context.Background(), ChangeStatusInput{
		AppointmentID: ap.ID,
		NewStatus:     "cancelled",
		ActorID:       1, // admin, not the owner
		ActorRole:     "admin",
	})
	if err != nil {
		t.Fatalf("admin change status: %v", err)
	}
	if updated.Status != "cancelled" {
		t.Errorf("status = %q, want cancelled", updated.Status)
	}
}

func TestChangeStatusMissingAppointment(t *testing.T) {
	repo := newMemRepo()
	uc := NewChangeStatus(repo, nil)

	_, err := uc.Execute(context.Background(), ChangeStatusInput{
		AppointmentID: 42,
		NewStatus:     "completed",
		ActorID:       1,
		ActorRole:     "admin",
	})
	assertBusinessCode(t, err, "appointment_not_found")
}
