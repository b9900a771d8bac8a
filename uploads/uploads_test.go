package uploads

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}
var exeMagic = []byte{'M', 'Z', 0x90, 0x00, 0x03, 0x00, 0x00, 0x00, 0x04}

// buildFileHeader assembles a real multipart.FileHeader so Save sees the same
// input a fiber handler would.
func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write multipart content: %v", err)
	}
	w.Close()

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["file"][0]
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir(), 5*1024*1024)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestSniffExtension(t *testing.T) {
	ext, err := SniffExtension(pngMagic)
	if err != nil {
		t.Fatalf("SniffExtension(png) returned error: %v", err)
	}
	if ext != ".png" {
		t.Errorf("SniffExtension(png) = %q, want .png", ext)
	}

	if _, err := SniffExtension(exeMagic); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("SniffExtension(exe) error = %v, want ErrUnsupportedType", err)
	}

	gif := []byte("GIF89a\x01\x00\x01\x00")
	ext, err = SniffExtension(gif)
	if err != nil {
		t.Fatalf("SniffExtension(gif) returned error: %v", err)
	}
	if ext != ".gif" {
		t.Errorf("SniffExtension(gif) = %q, want .gif", ext)
	}
}

func TestSaveSniffsContentNotExtension(t *testing.T) {
	m := newTestManager(t)

	// An executable renamed to .png must still be rejected.
	fh := buildFileHeader(t, "innocent.png", exeMagic)
	if _, err := m.Save(fh); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Save(exe as .png) error = %v, want ErrUnsupportedType", err)
	}

	// Genuine PNG content is stored with a generated name and .png extension.
	fh = buildFileHeader(t, "whatever.exe", pngMagic)
	stored, err := m.Save(fh)
	if err != nil {
		t.Fatalf("Save(png) returned error: %v", err)
	}
	if filepath.Ext(stored) != ".png" {
		t.Errorf("stored path %q does not carry .png extension", stored)
	}
	if filepath.Base(stored) == "whatever.exe" {
		t.Error("stored file kept the client-supplied name")
	}
	if _, err := os.Stat(filepath.Join(m.Dir, filepath.Base(stored))); err != nil {
		t.Errorf("stored file missing on disk: %v", err)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	m, err := NewManager(t.TempDir(), 16)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	fh := buildFileHeader(t, "big.png", append(pngMagic, make([]byte, 64)...))
	if _, err := m.Save(fh); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("Save(oversized) error = %v, want ErrFileTooLarge", err)
	}
}

func TestDeleteUsesBasenameOnly(t *testing.T) {
	m := newTestManager(t)

	name := "logo.png"
	path := filepath.Join(m.Dir, name)
	if err := os.WriteFile(path, pngMagic, 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	// A stored value with traversal components still resolves inside the
	// upload directory.
	m.Delete("../../outside/" + name)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file inside upload dir was not removed via basename lookup")
	}

	// Deleting a missing file is a no-op.
	m.Delete("does-not-exist.png")
}
