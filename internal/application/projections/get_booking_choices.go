package projections

import (
	"context"

	"fitstudio/internal/adapters/storage/trainer"
	domainService "fitstudio/internal/domain/service"
	domainTrainer "fitstudio/internal/domain/trainer"
)

// GetBookingChoicesResult carries the catalog rows the booking form offers.
type GetBookingChoicesResult struct {
	Services []domainService.Service
	Trainers []domainTrainer.Trainer
}

// GetBookingChoicesDeps holds dependencies for GetBookingChoices.
type GetBookingChoicesDeps struct {
	ServiceStore ServiceStore
	TrainerStore TrainerStore
}

// QueryGetBookingChoices retrieves the current services and trainers for the
// booking form dropdowns.
func QueryGetBookingChoices(ctx context.Context, deps GetBookingChoicesDeps) (GetBookingChoicesResult, error) {
	services, err := deps.ServiceStore.List(ctx)
	if err != nil {
		return GetBookingChoicesResult{}, err
	}
	trainers, err := deps.TrainerStore.List(ctx, trainer.ListFilter{})
	if err != nil {
		return GetBookingChoicesResult{}, err
	}
	return GetBookingChoicesResult{Services: services, Trainers: trainers}, nil
}
