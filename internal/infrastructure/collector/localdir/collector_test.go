package localdir

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestCollectFiltersAndOrders(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b_resume.pdf", "a_resume.docx", "notes.txt", "image.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "archive.pdf"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	c := New(dir, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	docs, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("collected %d documents, want 2", len(docs))
	}
	if docs[0].FileName != "a_resume.docx" || docs[1].FileName != "b_resume.pdf" {
		t.Fatalf("documents out of name order: %v, %v", docs[0].FileName, docs[1].FileName)
	}
	for _, doc := range docs {
		if doc.ID == "" {
			t.Errorf("document %s has no ID", doc.FileName)
		}
		if doc.FilePath != filepath.Join(dir, doc.FileName) {
			t.Errorf("FilePath = %q", doc.FilePath)
		}
		if doc.HasReceivedTime() {
			t.Errorf("drop documents must carry no received time")
		}
	}
}

func TestCollectMissingDirFails(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "absent"), slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	if _, err := c.Collect(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
