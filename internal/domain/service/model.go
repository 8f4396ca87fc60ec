package service

import (
	"errors"
	"strings"
)

// MaxNameLength limits user-editable names.
const MaxNameLength = 100

// DefaultImageFile is used when no image is uploaded for a service.
const DefaultImageFile = "default-service.jpg"

// Domain errors
var (
	ErrEmptyName       = errors.New("service name cannot be empty")
	ErrInvalidDuration = errors.New("service duration must be positive")
	ErrNegativePrice   = errors.New("service price cannot be negative")
)

// Service is a bookable offering in the catalog. Description is markdown.
type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           int
	ImageFile       string
}

// Validate checks if the Service has valid data.
// POST: Returns nil if valid, error otherwise
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if len(s.Name) > MaxNameLength {
		return errors.New("service name cannot exceed 100 characters")
	}
	if s.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if s.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Image returns the stored image filename, falling back to the default.
// INVARIANT: Service fields are not mutated
func (s *Service) Image() string {
	if s.ImageFile == "" {
		return DefaultImageFile
	}
	return s.ImageFile
}
