package orchestrators

import (
	"context"
	"io"
	"log/slog"

	"fitstudio/internal/domain/service"
	"fitstudio/internal/domain/trainer"

	"github.com/google/uuid"
)

// ServiceStoreForCatalog defines the store interface needed by catalog management.
type ServiceStoreForCatalog interface {
	Save(ctx context.Context, s service.Service) error
	Delete(ctx context.Context, id string) error
}

// TrainerStoreForCatalog defines the store interface needed by catalog management.
type TrainerStoreForCatalog interface {
	Save(ctx context.Context, t trainer.Trainer) error
	Delete(ctx context.Context, id string) error
}

// ImageSaver persists an uploaded image and returns its stored filename.
type ImageSaver interface {
	Save(src io.Reader, originalName string) (string, error)
}

// Upload carries an optional uploaded file from a multipart form.
type Upload struct {
	File io.Reader
	Name string
}

// CreateServiceInput carries the admin form fields for a new service.
type CreateServiceInput struct {
	Name            string
	Description     string
	DurationMinutes int
	Price           int
	Image           *Upload
}

// CreateTrainerInput carries the admin form fields for a new trainer.
type CreateTrainerInput struct {
	FullName       string
	Specialization string
	WorkStart      string
	WorkEnd        string
	Image          *Upload
}

// CatalogDeps holds dependencies for catalog management.
type CatalogDeps struct {
	ServiceStore ServiceStoreForCatalog
	TrainerStore TrainerStoreForCatalog
	Images       ImageSaver
}

// ExecuteCreateService adds a service to the catalog. The image is streamed to
// durable storage first; if that fails no catalog row is written. A missing
// upload falls back to the default image filename.
// PRE: caller is an administrator (enforced at the routing boundary)
// POST: Service row exists referencing a stored or default image
func ExecuteCreateService(ctx context.Context, input CreateServiceInput, deps CatalogDeps) (service.Service, error) {
	imageFile := service.DefaultImageFile
	if input.Image != nil {
		name, err := deps.Images.Save(input.Image.File, input.Image.Name)
		if err != nil {
			return service.Service{}, err
		}
		imageFile = name
	}

	svc := service.Service{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		ImageFile:       imageFile,
	}
	if err := svc.Validate(); err != nil {
		return service.Service{}, err
	}

	if err := deps.ServiceStore.Save(ctx, svc); err != nil {
		return service.Service{}, err
	}

	slog.Info("catalog_event", "event", "service_created", "service_id", svc.ID, "name", svc.Name, "price", svc.Price)
	return svc, nil
}

// ExecuteCreateTrainer adds a trainer to the catalog, assigning the default
// working-hours window when none is supplied.
// PRE: caller is an administrator (enforced at the routing boundary)
// POST: Trainer row exists referencing a stored or default image
func ExecuteCreateTrainer(ctx context.Context, input CreateTrainerInput, deps CatalogDeps) (trainer.Trainer, error) {
	imageFile := trainer.DefaultImageFile
	if input.Image != nil {
		name, err := deps.Images.Save(input.Image.File, input.Image.Name)
		if err != nil {
			return trainer.Trainer{}, err
		}
		imageFile = name
	}

	tr := trainer.Trainer{
		ID:             uuid.New().String(),
		FullName:       input.FullName,
		Specialization: input.Specialization,
		WorkStart:      input.WorkStart,
		WorkEnd:        input.WorkEnd,
		ImageFile:      imageFile,
	}
	tr.ApplyDefaultWorkingHours()
	if err := tr.Validate(); err != nil {
		return trainer.Trainer{}, err
	}

	if err := deps.TrainerStore.Save(ctx, tr); err != nil {
		return trainer.Trainer{}, err
	}

	slog.Info("catalog_event", "event", "trainer_created", "trainer_id", tr.ID, "name", tr.FullName, "specialization", tr.Specialization)
	return tr, nil
}

// ExecuteDeleteService removes a service from the catalog. Appointments that
// reference it keep their snapshotted price and remain listable.
func ExecuteDeleteService(ctx context.Context, id string, deps CatalogDeps) error {
	if err := deps.ServiceStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("catalog_event", "event", "service_deleted", "service_id", id)
	return nil
}

// ExecuteDeleteTrainer removes a trainer from the catalog.
func ExecuteDeleteTrainer(ctx context.Context, id string, deps CatalogDeps) error {
	if err := deps.TrainerStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("catalog_event", "event", "trainer_deleted", "trainer_id", id)
	return nil
}
