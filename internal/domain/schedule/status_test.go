package schedule

import "testing"

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusCompleted, StatusCancelled} {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []Status{"confirmed", "done", "", "Pending", "CANCELLED"} {
		if s.IsValid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Errorf("initial status = %s, want pending", InitialStatus())
	}
}

func TestCanTransition(t *testing.T) {
	valid := []Status{StatusPending, StatusCompleted, StatusCancelled}

	// Any pair of valid statuses is allowed, in both directions.
	for _, from := range valid {
		for _, to := range valid {
			if !CanTransition(from, to) {
				t.Errorf("CanTransition(%s, %s) = false, want true", from, to)
			}
		}
	}

	if CanTransition(StatusPending, "archived") {
		t.Error("transition to unknown status allowed")
	}
	if CanTransition("archived", StatusPending) {
		t.Error("transition from unknown status allowed")
	}
}
