package schedule

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus is the status every accepted booking starts in.
func InitialStatus() Status {
	return StatusPending
}

// CanTransition reports whether an appointment may move between two
// statuses. Every transition between valid statuses is allowed,
// including resetting a completed or cancelled appointment back to
// pending.
func CanTransition(from, to Status) bool {
	return from.IsValid() && to.IsValid()
}
