package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadVocabularyDefaults(t *testing.T) {
	vocab, err := LoadVocabulary("")
	if err != nil {
		t.Fatalf("LoadVocabulary() error = %v", err)
	}
	if len(vocab.Skills) == 0 || len(vocab.SectionHeaders) == 0 {
		t.Fatal("expected built-in vocabulary")
	}
}

func TestLoadVocabularyOverridesListedSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	content := "skills:\n  - Go\n  - Kubernetes\nconnectors:\n  - von\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write vocab file: %v", err)
	}

	vocab, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary() error = %v", err)
	}
	if len(vocab.Skills) != 2 || vocab.Skills[0] != "Go" {
		t.Fatalf("Skills = %v, want override", vocab.Skills)
	}
	if len(vocab.Connectors) != 1 || vocab.Connectors[0] != "von" {
		t.Fatalf("Connectors = %v, want override", vocab.Connectors)
	}
	// Sections absent from the file keep their defaults.
	if len(vocab.SectionHeaders) == 0 {
		t.Fatal("SectionHeaders lost their defaults")
	}
}

func TestLoadVocabularyMissingFileFails(t *testing.T) {
	if _, err := LoadVocabulary(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadUsesEnvDefaults(t *testing.T) {
	t.Setenv("STORE", "")
	t.Setenv("COLLECTOR", "")
	t.Setenv("CYCLE_INTERVAL_MINUTES", "")

	cfg := Load()
	if cfg.Store != "excel" {
		t.Errorf("Store = %q, want excel default", cfg.Store)
	}
	if cfg.Collector != "imap" {
		t.Errorf("Collector = %q, want imap default", cfg.Collector)
	}
	if cfg.CycleInterval.Minutes() != 30 {
		t.Errorf("CycleInterval = %v, want 30m default", cfg.CycleInterval)
	}
}
