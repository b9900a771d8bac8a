// Package uploads stores admin-submitted images (logos, QR codes, tutorial
// illustrations) on local disk. Files are accepted by sniffing their content,
// never by extension, and are renamed to server-generated filenames before the
// relative path is persisted on the owning row.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
var ErrUnsupportedType = errors.New("unsupported file type")

var allowedTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

type Manager struct {
	Dir      string
	MaxBytes int64
}

func NewManager(dir string, maxBytes int64) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Manager{Dir: dir, MaxBytes: maxBytes}, nil
}

// SniffExtension returns the canonical extension for the detected MIME type,
// or ErrUnsupportedType when the content is not an allowed image format.
func SniffExtension(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	for allowed, ext := range allowedTypes {
		if mt.Is(allowed) {
			return ext, nil
		}
	}
	return "", ErrUnsupportedType
}

// Save validates the uploaded file and writes it into the upload directory
// under a generated unique name, returning the stored relative path.
func (m *Manager) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > m.MaxBytes {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	if int64(len(data)) > m.MaxBytes {
		return "", ErrFileTooLarge
	}

	ext, err := SniffExtension(data)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(m.Dir, name), data, 0o644); err != nil {
		return "", err
	}
	return filepath.Join(filepath.Base(m.Dir), name), nil
}

// Delete removes a previously stored file. Only the basename of the stored
// path is used, so a row value can never reach outside the upload directory.
func (m *Manager) Delete(storedPath string) {
	if storedPath == "" {
		return
	}
	name := filepath.Base(storedPath)
	if name == "." || name == string(filepath.Separator) {
		return
	}
	if err := os.Remove(filepath.Join(m.Dir, name)); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to delete upload %s: %v", name, err)
	}
}

// DeleteIfSet is a convenience for the nullable path columns on models.
func (m *Manager) DeleteIfSet(storedPath *string) {
	if storedPath != nil {
		m.Delete(*storedPath)
	}
}
