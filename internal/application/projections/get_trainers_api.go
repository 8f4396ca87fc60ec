package projections

import (
	"context"
	"database/sql"
	"errors"

	"fitstudio/internal/adapters/storage/trainer"
)

// TrainerView is the public API representation of a trainer. Image filenames
// and internal ids beyond the opaque ID are not exposed.
type TrainerView struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Specialization string `json:"specialization"`
	WorkingHours   string `json:"workingHours"`
}

// GetTrainersQuery carries query parameters for the public trainer listing.
type GetTrainersQuery struct {
	// Specialization, when non-empty, keeps only trainers whose
	// specialization contains it, case-insensitively.
	Specialization string
}

// GetTrainersDeps holds dependencies for GetTrainers.
type GetTrainersDeps struct {
	TrainerStore TrainerStore
}

// QueryGetTrainers retrieves trainers for the public API, optionally filtered
// by specialization substring.
// POST: Result is never nil; an empty catalog yields an empty slice
func QueryGetTrainers(ctx context.Context, query GetTrainersQuery, deps GetTrainersDeps) ([]TrainerView, error) {
	trainers, err := deps.TrainerStore.List(ctx, trainer.ListFilter{Specialization: query.Specialization})
	if err != nil {
		return nil, err
	}

	views := make([]TrainerView, 0, len(trainers))
	for _, tr := range trainers {
		views = append(views, TrainerView{
			ID:             tr.ID,
			FullName:       tr.FullName,
			Specialization: tr.Specialization,
			WorkingHours:   tr.WorkingHours(),
		})
	}
	return views, nil
}

// QueryGetTrainer retrieves a single trainer view by id. The boolean reports
// whether the trainer exists; an unknown id is not an error.
func QueryGetTrainer(ctx context.Context, id string, deps GetTrainersDeps) (TrainerView, bool, error) {
	tr, err := deps.TrainerStore.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return TrainerView{}, false, nil
	}
	if err != nil {
		return TrainerView{}, false, err
	}
	return TrainerView{
		ID:             tr.ID,
		FullName:       tr.FullName,
		Specialization: tr.Specialization,
		WorkingHours:   tr.WorkingHours(),
	}, true, nil
}
