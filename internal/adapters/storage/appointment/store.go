package appointment

import (
	"context"
	"time"

	domain "fitstudio/internal/domain/appointment"
)

// Store persists Appointment state. The status enum is serialized to the
// legacy (confirmed, rejected) boolean pair at this boundary.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Appointment, error)
	Save(ctx context.Context, value domain.Appointment) error
	ListByMember(ctx context.Context, memberID string) ([]domain.Appointment, error)
	ListAll(ctx context.Context) ([]AdminRow, error)
}

// AdminRow is an appointment joined to the names the back-office list shows.
type AdminRow struct {
	ID          string
	MemberName  string
	MemberEmail string
	TrainerName string
	ServiceName string
	StartsAt    time.Time
	Price       int
	Status      string
}
