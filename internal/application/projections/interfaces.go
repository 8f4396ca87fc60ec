package projections

import (
	"context"

	"fitstudio/internal/adapters/storage/appointment"
	"fitstudio/internal/adapters/storage/trainer"
	domainAppointment "fitstudio/internal/domain/appointment"
	domainService "fitstudio/internal/domain/service"
	domainTrainer "fitstudio/internal/domain/trainer"
)

// AppointmentStore interface for appointment queries.
type AppointmentStore interface {
	ListByMember(ctx context.Context, memberID string) ([]domainAppointment.Appointment, error)
	ListAll(ctx context.Context) ([]appointment.AdminRow, error)
}

// ServiceStore interface for catalog queries.
type ServiceStore interface {
	List(ctx context.Context) ([]domainService.Service, error)
}

// TrainerStore interface for catalog queries.
type TrainerStore interface {
	GetByID(ctx context.Context, id string) (domainTrainer.Trainer, error)
	List(ctx context.Context, filter trainer.ListFilter) ([]domainTrainer.Trainer, error)
}
