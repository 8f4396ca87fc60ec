package images

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedExtensions limits uploads to common image formats.
var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// Store writes uploaded images under a public static-assets directory.
// Catalog rows reference images by filename only.
type Store struct {
	dir string
}

// NewStore creates an image store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create images dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes into, for serving files back.
func (s *Store) Dir() string {
	return s.dir
}

// Save streams an uploaded file to disk under a fresh uuid filename and
// returns that filename. On any mid-copy failure the partial file is removed
// so no catalog row can reference it.
// PRE: originalName carries the client's file extension
// POST: Returns the stored filename, or an error with no file left behind
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close image file: %w", err)
	}

	slog.Info("image_saved", "file", name)
	return name, nil
}
