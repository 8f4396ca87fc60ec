package trainer_test

import (
	"testing"

	"fitstudio/internal/domain/trainer"
)

// TestTrainer_Validate tests validation of Trainer.
func TestTrainer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		trainer trainer.Trainer
		wantErr bool
	}{
		{
			name:    "valid trainer",
			trainer: trainer.Trainer{ID: "1", FullName: "Ayşe Demir", Specialization: "Yoga", WorkStart: "09:00", WorkEnd: "17:00"},
			wantErr: false,
		},
		{
			name:    "empty name",
			trainer: trainer.Trainer{ID: "2", Specialization: "Yoga", WorkStart: "09:00", WorkEnd: "17:00"},
			wantErr: true,
		},
		{
			name:    "empty specialization",
			trainer: trainer.Trainer{ID: "3", FullName: "Ayşe Demir", WorkStart: "09:00", WorkEnd: "17:00"},
			wantErr: true,
		},
		{
			name:    "malformed hours",
			trainer: trainer.Trainer{ID: "4", FullName: "Ayşe Demir", Specialization: "Yoga", WorkStart: "9am", WorkEnd: "5pm"},
			wantErr: true,
		},
		{
			name:    "inverted hours",
			trainer: trainer.Trainer{ID: "5", FullName: "Ayşe Demir", Specialization: "Yoga", WorkStart: "17:00", WorkEnd: "09:00"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trainer.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestTrainer_ApplyDefaultWorkingHours tests the default window assignment.
func TestTrainer_ApplyDefaultWorkingHours(t *testing.T) {
	tr := trainer.Trainer{FullName: "Ayşe Demir", Specialization: "Yoga"}
	tr.ApplyDefaultWorkingHours()
	if tr.WorkStart != trainer.DefaultWorkStart || tr.WorkEnd != trainer.DefaultWorkEnd {
		t.Errorf("defaults = %q-%q, want %q-%q", tr.WorkStart, tr.WorkEnd, trainer.DefaultWorkStart, trainer.DefaultWorkEnd)
	}

	tr = trainer.Trainer{WorkStart: "06:00", WorkEnd: "14:00"}
	tr.ApplyDefaultWorkingHours()
	if tr.WorkStart != "06:00" || tr.WorkEnd != "14:00" {
		t.Error("ApplyDefaultWorkingHours() overwrote an explicit window")
	}
}

// TestTrainer_MatchesSpecialization tests the substring filter.
func TestTrainer_MatchesSpecialization(t *testing.T) {
	tr := trainer.Trainer{Specialization: "Yoga & Pilates"}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"Yoga", true},
		{"yoga", true},
		{"Pilates", true},
		{"CrossFit", false},
	}
	for _, tt := range tests {
		if got := tr.MatchesSpecialization(tt.query); got != tt.want {
			t.Errorf("MatchesSpecialization(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

// TestTrainer_Image tests the default image fallback.
func TestTrainer_Image(t *testing.T) {
	tr := trainer.Trainer{}
	if got := tr.Image(); got != trainer.DefaultImageFile {
		t.Errorf("Image() = %q, want default %q", got, trainer.DefaultImageFile)
	}
	tr.ImageFile = "abc.png"
	if got := tr.Image(); got != "abc.png" {
		t.Errorf("Image() = %q, want %q", got, "abc.png")
	}
}
