package images

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stream broke")
}

// TestStore_Save verifies the happy path writes a uuid-named file.
func TestStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	name, err := store.Save(strings.NewReader("fake image bytes"), "photo.PNG")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("stored name = %q, want lowercase .png extension", name)
	}
	if name == "photo.png" {
		t.Error("stored name must not reuse the client filename")
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read stored file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("stored content = %q", data)
	}
}

// TestStore_Save_UnsupportedType verifies non-image extensions are rejected.
func TestStore_Save_UnsupportedType(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if _, err := store.Save(strings.NewReader("x"), "script.exe"); err == nil {
		t.Error("Save() expected error for unsupported extension")
	}
}

// TestStore_Save_CopyFailureCleansUp verifies no partial file survives a
// failed stream copy.
func TestStore_Save_CopyFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	if _, err := store.Save(failingReader{}, "photo.jpg"); err == nil {
		t.Fatal("Save() expected error for failing reader")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("dir has %d leftover files after failed copy, want 0", len(entries))
	}
}
