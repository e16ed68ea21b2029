package appointment

import "github.com/valleclinic/clinic-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// Status only moves forward: pending → confirmed → completed, with
// cancellation allowed from pending or confirmed. Completed and cancelled
// are terminal.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}

	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCompleted || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}

func Transition(from, to Status) error {
	if !IsValidStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if !CanTransition(from, to) {
		return httperr.ErrBusiness("invalid_status_transition")
	}
	return nil
}
