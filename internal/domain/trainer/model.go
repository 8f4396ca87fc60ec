package trainer

import (
	"errors"
	"strings"
	"time"
)

// MaxNameLength limits user-editable names.
const MaxNameLength = 100

// DefaultImageFile is used when no image is uploaded for a trainer.
const DefaultImageFile = "default-user.png"

// Default working-hours window assigned when none is supplied.
const (
	DefaultWorkStart = "09:00"
	DefaultWorkEnd   = "17:00"
)

// Domain errors
var (
	ErrEmptyName            = errors.New("trainer name cannot be empty")
	ErrEmptySpecialization  = errors.New("trainer specialization cannot be empty")
	ErrInvalidWorkingHours  = errors.New("working hours must be HH:MM times")
	ErrInvertedWorkingHours = errors.New("work start must be before work end")
)

// Trainer is a member of staff offering sessions. WorkStart and WorkEnd are
// time-of-day strings in "HH:MM" form.
type Trainer struct {
	ID             string
	FullName       string
	Specialization string
	WorkStart      string
	WorkEnd        string
	ImageFile      string
}

// Validate checks if the Trainer has valid data.
// POST: Returns nil if valid, error otherwise
func (t *Trainer) Validate() error {
	if strings.TrimSpace(t.FullName) == "" {
		return ErrEmptyName
	}
	if len(t.FullName) > MaxNameLength {
		return errors.New("trainer name cannot exceed 100 characters")
	}
	if strings.TrimSpace(t.Specialization) == "" {
		return ErrEmptySpecialization
	}
	start, err := time.Parse("15:04", t.WorkStart)
	if err != nil {
		return ErrInvalidWorkingHours
	}
	end, err := time.Parse("15:04", t.WorkEnd)
	if err != nil {
		return ErrInvalidWorkingHours
	}
	if !start.Before(end) {
		return ErrInvertedWorkingHours
	}
	return nil
}

// ApplyDefaultWorkingHours fills in the 09:00-17:00 window when either end of
// the range is missing.
// POST: WorkStart and WorkEnd are non-empty
func (t *Trainer) ApplyDefaultWorkingHours() {
	if t.WorkStart == "" {
		t.WorkStart = DefaultWorkStart
	}
	if t.WorkEnd == "" {
		t.WorkEnd = DefaultWorkEnd
	}
}

// WorkingHours returns the display form of the working-hours window.
// INVARIANT: Trainer fields are not mutated
func (t *Trainer) WorkingHours() string {
	return t.WorkStart + " - " + t.WorkEnd
}

// MatchesSpecialization reports whether the trainer's specialization contains
// the query as a case-insensitive substring. An empty query matches everyone.
// INVARIANT: Trainer fields are not mutated
func (t *Trainer) MatchesSpecialization(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Specialization), strings.ToLower(query))
}

// Image returns the stored image filename, falling back to the default.
// INVARIANT: Trainer fields are not mutated
func (t *Trainer) Image() string {
	if t.ImageFile == "" {
		return DefaultImageFile
	}
	return t.ImageFile
}
