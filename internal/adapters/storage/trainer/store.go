package trainer

import (
	"context"

	domain "fitstudio/internal/domain/trainer"
)

// Store persists Trainer state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Trainer, error)
	Save(ctx context.Context, value domain.Trainer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Trainer, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	// Specialization filters by case-insensitive substring match.
	Specialization string
}
