package orchestrators

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"fitstudio/internal/domain/service"
	"fitstudio/internal/domain/trainer"
)

// mockImageSaver implements ImageSaver for testing.
type mockImageSaver struct {
	stored  string
	failErr error
	calls   int
}

// Save implements ImageSaver.
func (m *mockImageSaver) Save(src io.Reader, originalName string) (string, error) {
	m.calls++
	if m.failErr != nil {
		return "", m.failErr
	}
	io.Copy(io.Discard, src)
	return m.stored, nil
}

func catalogDeps() (CatalogDeps, *mockServiceStore, *mockTrainerStore, *mockImageSaver) {
	svcStore := newMockServiceStore()
	trStore := newMockTrainerStore()
	images := &mockImageSaver{stored: "abc123.jpg"}
	return CatalogDeps{ServiceStore: svcStore, TrainerStore: trStore, Images: images}, svcStore, trStore, images
}

// TestExecuteCreateService_WithUpload tests the happy path with an image.
func TestExecuteCreateService_WithUpload(t *testing.T) {
	deps, svcStore, _, _ := catalogDeps()

	svc, err := ExecuteCreateService(context.Background(), CreateServiceInput{
		Name:            "Pilates",
		Description:     "Mat pilates for all levels.",
		DurationMinutes: 50,
		Price:           350,
		Image:           &Upload{File: strings.NewReader("fake image bytes"), Name: "pilates.jpg"},
	}, deps)
	if err != nil {
		t.Fatalf("ExecuteCreateService() error = %v", err)
	}

	if svc.ImageFile != "abc123.jpg" {
		t.Errorf("ImageFile = %q, want stored filename", svc.ImageFile)
	}
	if _, ok := svcStore.services[svc.ID]; !ok {
		t.Error("service was not persisted")
	}
}

// TestExecuteCreateService_NoUpload tests the default image fallback.
func TestExecuteCreateService_NoUpload(t *testing.T) {
	deps, _, _, images := catalogDeps()

	svc, err := ExecuteCreateService(context.Background(), CreateServiceInput{
		Name:            "Pilates",
		DurationMinutes: 50,
		Price:           350,
	}, deps)
	if err != nil {
		t.Fatalf("ExecuteCreateService() error = %v", err)
	}
	if svc.ImageFile != service.DefaultImageFile {
		t.Errorf("ImageFile = %q, want default", svc.ImageFile)
	}
	if images.calls != 0 {
		t.Error("image saver was called without an upload")
	}
}

// TestExecuteCreateService_ImageFailure tests that a failed upload leaves no
// catalog row behind.
func TestExecuteCreateService_ImageFailure(t *testing.T) {
	deps, svcStore, _, images := catalogDeps()
	images.failErr = errors.New("disk full")

	_, err := ExecuteCreateService(context.Background(), CreateServiceInput{
		Name:            "Pilates",
		DurationMinutes: 50,
		Price:           350,
		Image:           &Upload{File: strings.NewReader("fake"), Name: "pilates.jpg"},
	}, deps)
	if err == nil {
		t.Fatal("expected error from image saver")
	}
	if len(svcStore.services) != 0 {
		t.Error("service row written despite failed upload")
	}
}

// TestExecuteCreateService_Invalid tests domain validation on the way in.
func TestExecuteCreateService_Invalid(t *testing.T) {
	deps, svcStore, _, _ := catalogDeps()

	_, err := ExecuteCreateService(context.Background(), CreateServiceInput{
		Name:            "",
		DurationMinutes: 50,
		Price:           350,
	}, deps)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(svcStore.services) != 0 {
		t.Error("invalid service was persisted")
	}
}

// TestExecuteCreateTrainer_DefaultHours tests that omitted working hours get
// the standard window.
func TestExecuteCreateTrainer_DefaultHours(t *testing.T) {
	deps, _, trStore, _ := catalogDeps()

	tr, err := ExecuteCreateTrainer(context.Background(), CreateTrainerInput{
		FullName:       "Mehmet Kaya",
		Specialization: "CrossFit",
	}, deps)
	if err != nil {
		t.Fatalf("ExecuteCreateTrainer() error = %v", err)
	}
	if tr.WorkStart != trainer.DefaultWorkStart || tr.WorkEnd != trainer.DefaultWorkEnd {
		t.Errorf("working hours = %s-%s, want defaults", tr.WorkStart, tr.WorkEnd)
	}
	if tr.ImageFile != trainer.DefaultImageFile {
		t.Errorf("ImageFile = %q, want default", tr.ImageFile)
	}
	if _, ok := trStore.trainers[tr.ID]; !ok {
		t.Error("trainer was not persisted")
	}
}

// TestExecuteCreateTrainer_BadHours tests rejection of an inverted window.
func TestExecuteCreateTrainer_BadHours(t *testing.T) {
	deps, _, trStore, _ := catalogDeps()

	_, err := ExecuteCreateTrainer(context.Background(), CreateTrainerInput{
		FullName:       "Mehmet Kaya",
		Specialization: "CrossFit",
		WorkStart:      "18:00",
		WorkEnd:        "09:00",
	}, deps)
	if err == nil {
		t.Fatal("expected validation error for inverted hours")
	}
	if len(trStore.trainers) != 0 {
		t.Error("invalid trainer was persisted")
	}
}

// TestExecuteDeleteService tests removal.
func TestExecuteDeleteService(t *testing.T) {
	deps, svcStore, _, _ := catalogDeps()
	svcStore.services["svc-1"] = service.Service{ID: "svc-1", Name: "Pilates", DurationMinutes: 50, Price: 350}

	if err := ExecuteDeleteService(context.Background(), "svc-1", deps); err != nil {
		t.Fatalf("ExecuteDeleteService() error = %v", err)
	}
	if len(svcStore.services) != 0 {
		t.Error("service still present after delete")
	}
}
