package localfs

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveUniqueSuffixesCollisions(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	first, err := s.SaveUnique(ctx, "resume.pdf", strings.NewReader("first"))
	if err != nil {
		t.Fatalf("SaveUnique() error = %v", err)
	}
	second, err := s.SaveUnique(ctx, "resume.pdf", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("SaveUnique() error = %v", err)
	}

	if filepath.Base(first) != "resume.pdf" {
		t.Errorf("first path = %q", first)
	}
	if filepath.Base(second) != "resume (1).pdf" {
		t.Errorf("second path = %q, want numeric suffix", second)
	}

	rc, err := s.Open(ctx, second)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("content = %q, first file was overwritten", data)
	}
}

func TestSaveUniqueStripsDirectoryComponents(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	path, err := s.SaveUnique(context.Background(), "../../etc/resume.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("SaveUnique() error = %v", err)
	}
	if filepath.Base(path) != "resume.pdf" || strings.Contains(path, "..") {
		t.Fatalf("path = %q, want components stripped", path)
	}
}
