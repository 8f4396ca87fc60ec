package appointment

import (
	"errors"
	"fmt"
	"time"
)

// Status values for an appointment. Pending is the only initial state and is
// never re-entered once a decision has been made.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
)

// ValidStatuses contains all valid status values.
var ValidStatuses = []string{StatusPending, StatusConfirmed, StatusRejected}

// Domain errors
var (
	ErrInvalidStatus     = errors.New("status must be 'pending', 'confirmed', or 'rejected'")
	ErrInvalidTarget     = errors.New("target status must be 'confirmed' or 'rejected'")
	ErrInvalidFlagPair   = errors.New("appointment cannot be both confirmed and rejected")
	ErrMissingMember     = errors.New("appointment must reference a member")
	ErrMissingTrainer    = errors.New("appointment must reference a trainer")
	ErrMissingService    = errors.New("appointment must reference a service")
	ErrZeroStart         = errors.New("appointment start time cannot be zero")
	ErrNegativePrice     = errors.New("appointment price cannot be negative")
	ErrNotOwner          = errors.New("appointment belongs to another member")
)

// Appointment is a member's booking request for a service with a trainer.
// Price is a snapshot of the service price at booking time and is never
// re-derived from the catalog.
type Appointment struct {
	ID        string
	MemberID  string
	TrainerID string
	ServiceID string
	StartsAt  time.Time
	Price     int
	Status    string
	CreatedAt time.Time
}

// Validate checks if the Appointment has valid data.
// PRE: Appointment struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Appointment) Validate() error {
	if a.MemberID == "" {
		return ErrMissingMember
	}
	if a.TrainerID == "" {
		return ErrMissingTrainer
	}
	if a.ServiceID == "" {
		return ErrMissingService
	}
	if a.StartsAt.IsZero() {
		return ErrZeroStart
	}
	if a.Price < 0 {
		return ErrNegativePrice
	}
	if !isValidStatus(a.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// IsPending returns true if no decision has been made yet.
// INVARIANT: Appointment fields are not mutated
func (a *Appointment) IsPending() bool {
	return a.Status == StatusPending
}

// Confirm transitions the appointment to confirmed. Rejected appointments may
// be confirmed again; confirming twice is a no-op.
// POST: Status is confirmed
func (a *Appointment) Confirm() {
	a.Status = StatusConfirmed
}

// Reject transitions the appointment to rejected. Confirmed appointments may
// be rejected again; rejecting twice is a no-op. Member cancellation shares
// this terminal state with admin rejection.
// POST: Status is rejected
func (a *Appointment) Reject() {
	a.Status = StatusRejected
}

// Transition applies a target status chosen by an administrator.
// PRE: target is confirmed or rejected (pending is never re-enterable)
// POST: Status equals target
func (a *Appointment) Transition(target string) error {
	switch target {
	case StatusConfirmed:
		a.Confirm()
	case StatusRejected:
		a.Reject()
	default:
		return ErrInvalidTarget
	}
	return nil
}

// Flags returns the legacy (confirmed, rejected) boolean pair for the storage
// boundary. The internal enum makes the (true, true) combination unreachable.
// INVARIANT: Appointment fields are not mutated
func (a *Appointment) Flags() (confirmed, rejected bool) {
	return a.Status == StatusConfirmed, a.Status == StatusRejected
}

// StatusFromFlags decodes the stored boolean pair into a status value.
// The (true, true) combination is invalid: the engine never writes it, so a
// row carrying it indicates corruption and is reported.
func StatusFromFlags(confirmed, rejected bool) (string, error) {
	switch {
	case confirmed && rejected:
		return "", ErrInvalidFlagPair
	case confirmed:
		return StatusConfirmed, nil
	case rejected:
		return StatusRejected, nil
	default:
		return StatusPending, nil
	}
}

// CombineDateTime builds the appointment instant from a calendar date and a
// time-of-day chosen independently in the booking form.
// PRE: date is "2006-01-02", timeOfDay is "15:04"
// POST: Returns the combined instant in the local timezone
func CombineDateTime(date, timeOfDay string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", timeOfDay, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

func isValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if status == s {
			return true
		}
	}
	return false
}
