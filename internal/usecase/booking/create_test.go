package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/medpoint/hospital-scheduler/internal/httperr"
	"github.com/medpoint/hospital-scheduler/internal/models"
)

// Monday, so the whole test week is deterministic.
var testNow = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.Local)

const (
	wednesday = "2026-03-04"
	saturday  = "2026-03-07"
	sunday    = "2026-03-08"
	lastWeek  = "2026-02-27" // a Friday in the past
)

func newCreateUC(repo *memRepo) *CreateBooking {
	uc := NewCreateBooking(repo, nil)
	uc.now = func() time.Time { return testNow }
	return uc
}

func seedDoctor(repo *memRepo) *models.Doctor {
	return repo.addDoctor(models.Doctor{
		Name:              "Dr. A",
		Specialty:         "Cardiology",
		WorkingHoursStart: "09:00",
		WorkingHoursEnd:   "17:00",
	})
}

func assertBusinessCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", code)
	}
	if !httperr.IsBusiness(err, code) {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func TestCreateBooking(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), CreateBookingInput{
		DoctorID:    doctor.ID,
		PatientName: "John Smith",
		Date:        wednesday,
		Time:        "09:00",
		UserID:      7,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if ap.Status != "pending" {
		t.Errorf("status = %q, want pending", ap.Status)
	}
	if ap.DoctorID != doctor.ID || ap.UserID != 7 {
		t.Errorf("ownership wrong: doctor=%d user=%d", ap.DoctorID, ap.UserID)
	}
	if ap.Date != wednesday || ap.Time != "09:00" {
		t.Errorf("slot wrong: %s %s", ap.Date, ap.Time)
	}
	if ap.Doctor.Name != "Dr. A" {
		t.Errorf("doctor not denormalized: %+v", ap.Doctor)
	}
}

func TestCreateBookingDoctorNotFound(t *testing.T) {
	uc := newCreateUC(newMemRepo())

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		DoctorID:    99,
		PatientName: "John Smith",
		Date:        wednesday,
		Time:        "09:00",
		UserID:      1,
	})
	assertBusinessCode(t, err, "doctor_not_found")
}

func TestCreateBookingWeekend(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	uc := newCreateUC(repo)

	for _, date := range []string{saturday, sunday} {
		_, err := uc.Execute(context.Background(), CreateBookingInput{
			DoctorID:    doctor.ID,
			PatientName: "John Smith",
			Date:        date,
			Time:        "10:00", // valid time of day; the date alone disqualifies
			UserID:      1,
		})
		assertBusinessCode(t, err, "weekend_not_allowed")
	}
}

func TestCreateBookingPastDate(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		DoctorID:    doctor.ID,
		PatientName: "John Smith",
		Date:        lastWeek,
		Time:        "10:00",
		UserID:      1,
	})
	assertBusinessCode(t, err, "past_date")
}

func TestCreateBookingTodayAllowed(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	uc := newCreateUC(repo)

	// testNow is midday; a booking for today must still pass, the
	// past-date rule compares calendar days only.
	_, err := uc.Execute(context.Background(), CreateBookingInput{
		DoctorID:    doctor.ID,
		PatientName: "John Smith",
		Date:        "2026-03-02",
		Time:        "09:30",
		UserID:      1,
	})
	if err != nil {
		t.Fatalf("same-day booking rejected: %v", err)
	}
}

func TestCreateBookingWorkingHoursBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		time     string
		wantCode string
	}{
		{"at start is bookable", "09:00", ""},
		{"before start", "08:59", "outside_working_hours"},
		{"at end is not bookable", "17:00", "outside_working_hours"},
		{"after end", "18:30", "outside_working_hours"},
		{"inside window off the grid", "09:10", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			doctor := seedDoctor(repo)
			uc := newCreateUC(repo)

			_, err := uc.Execute(context.Background(), CreateBookingInput{
				DoctorID:    doctor.ID,
				PatientName: "John Smith",
				Date:        wednesday,
				Time:        tt.time,
				UserID:      1,
			})

			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}
			assertBusinessCode(t, err, tt.wantCode)
		})
	}
}

func TestCreateBookingOutsideHoursMentionsSchedule(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		DoctorID:    doctor.ID,
		PatientName: "John Smith",
		Date:        wednesday,
		Time:        "17:00",
		UserID:      1,
	})

	var be httperr.BusinessError
	if !errors.As(err, &be) {
		t.Fatalf("expected business error, got %v", err)
	}
	if !strings.Contains(be.Message, "09:00 - 17:00") {
		t.Errorf("message should include the doctor's hours, got %q", be.Message)
	}
}

func TestCreateBookingSlotTaken(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	uc := newCreateUC(repo)

	in := CreateBookingInput{
		DoctorID:    doctor.ID,
		PatientName: "John Smith",
		Date:        wednesday,
		Time:        "09:00",
		UserID:      1,
	}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	in.UserID = 2
	in.PatientName = "Jane Doe"
	_, err := uc.Execute(context.Background(), in)
	assertBusinessCode(t, err, "slot_taken")
}

func TestCreateBookingConstraintBackstop(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	uc := newCreateUC(repo)

	in := CreateBookingInput{
		DoctorID:    doctor.ID,
		PatientName: "John Smith",
		Date:        wednesday,
		Time:        "10:00",
		UserID:      1,
	}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// A concurrent writer can land between the existence check and the
	// insert. The unique index then decides, and the loser must still
	// see slot_taken.
	repo.hideFromPrecheck = true

	in.UserID = 2
	_, err := uc.Execute(context.Background(), in)
	assertBusinessCode(t, err, "slot_taken")
}

func TestCreateBookingDifferentSlotsNoConflict(t *testing.T) {
	repo := newMemRepo()
	doctor := seedDoctor(repo)
	other := repo.addDoctor(models.Doctor{
		Name:              "Dr. B",
		Specialty:         "Neurology",
		WorkingHoursStart: "09:00",
		WorkingHoursEnd:   "17:00",
	})
	uc := newCreateUC(repo)

	inputs := []CreateBookingInput{
		{DoctorID: doctor.ID, PatientName: "P1", Date: wednesday, Time: "09:00", UserID: 1},
		{DoctorID: doctor.ID, PatientName: "P2", Date: wednesday, Time: "09:30", UserID: 2},
		{DoctorID: doctor.ID, PatientName: "P3", Date: "2026-03-05", Time: "09:00", UserID: 3},
		{DoctorID: other.ID, PatientName: "P4", Date: wednesday, Time: "09:00", UserID: 4},
	}

	for _, in := range inputs {
		if _, err := uc.Execute(context.Background(), in); err != nil {
			t.Fatalf("booking %s %s for doctor %d: %v", in.Date, in.Time, in.DoctorID, err)
		}
	}
}
