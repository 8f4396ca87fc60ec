package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fitstudio/internal/domain/service"

	"github.com/brianvoe/gofakeit/v7"
)

// SyntheticSeedDeps holds dependencies for the development seeder.
type SyntheticSeedDeps struct {
	ServiceStore interface {
		List(ctx context.Context) ([]service.Service, error)
	}
	Catalog CatalogDeps
}

// seedSpecializations is the pool of specializations assigned to fake trainers.
var seedSpecializations = []string{
	"Yoga", "Pilates", "CrossFit", "Bodybuilding", "Cardio & Conditioning",
	"Kickboxing", "Mobility & Stretching", "Weight Loss Coaching",
}

// seedServices is the fixed catalog created in development environments.
var seedServices = []struct {
	name     string
	duration int
	price    int
}{
	{"Personal Training", 60, 500},
	{"Group Fitness Class", 45, 150},
	{"Nutrition Consultation", 30, 300},
	{"Yoga Session", 60, 200},
}

// ExecuteSeedSynthetic populates the catalog with fake trainers and a fixed
// service list for development. Idempotent: a non-empty catalog is left alone.
// PRE: Not called in production
// POST: Catalog holds demo services and trainers if it was empty
func ExecuteSeedSynthetic(ctx context.Context, deps SyntheticSeedDeps, trainerCount int) error {
	existing, err := deps.ServiceStore.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	gofakeit.Seed(time.Now().UnixNano())

	for _, s := range seedServices {
		_, err := ExecuteCreateService(ctx, CreateServiceInput{
			Name:            s.name,
			Description:     gofakeit.Sentence(12),
			DurationMinutes: s.duration,
			Price:           s.price,
		}, deps.Catalog)
		if err != nil {
			return fmt.Errorf("failed to seed service %q: %w", s.name, err)
		}
	}

	for i := 0; i < trainerCount; i++ {
		spec := seedSpecializations[gofakeit.Number(0, len(seedSpecializations)-1)]
		_, err := ExecuteCreateTrainer(ctx, CreateTrainerInput{
			FullName:       gofakeit.Name(),
			Specialization: spec,
		}, deps.Catalog)
		if err != nil {
			return fmt.Errorf("failed to seed trainer: %w", err)
		}
	}

	slog.Info("seed_event", "event", "synthetic_seeded", "services", len(seedServices), "trainers", trainerCount)
	return nil
}
