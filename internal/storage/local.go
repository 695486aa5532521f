package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage keeps uploaded equipment images on the local filesystem under
// a single directory; keys are opaque file names handed out on upload.
type LocalStorage struct {
	baseURL   string
	imagesDir string
}

func NewLocalStorage(baseURL, uploadDir string) (*LocalStorage, error) {
	imagesDir := filepath.Join(uploadDir, "images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &LocalStorage{
		baseURL:   baseURL,
		imagesDir: imagesDir,
	}, nil
}

// Save stores the image bytes and returns the generated key
func (s *LocalStorage) Save(ext string, r io.Reader) (string, error) {
	key := uuid.New().String() + normalizeExt(ext)
	f, err := os.Create(filepath.Join(s.imagesDir, key))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return key, nil
}

// Open returns a reader for a stored image
func (s *LocalStorage) Open(key string) (io.ReadCloser, error) {
	// Keys are uuid-based names we issued; reject anything path-like
	if key != filepath.Base(key) || strings.Contains(key, "..") {
		return nil, fmt.Errorf("invalid storage key")
	}
	return os.Open(filepath.Join(s.imagesDir, key))
}

// Delete removes a stored image; missing files are not an error
func (s *LocalStorage) Delete(key string) error {
	if key != filepath.Base(key) {
		return fmt.Errorf("invalid storage key")
	}
	err := os.Remove(filepath.Join(s.imagesDir, key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URL returns the public download URL for a key
func (s *LocalStorage) URL(key string) string {
	return fmt.Sprintf("%s/api/download/%s", s.baseURL, key)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ".bin"
	}
}
