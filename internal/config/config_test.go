package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgallion1/doclens/internal/rank"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DOCLENS_API_KEY", "WORKER_COUNT", "MAX_QUEUE_SIZE",
		"MAX_UPLOAD_BYTES", "TOP_SECTIONS", "TOP_EXCERPTS", "JOB_TTL",
		"PDF_FALLBACK_PDFTOTEXT",
	} {
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8091" {
		t.Errorf("expected default port 8091, got %q", cfg.Port)
	}
	if cfg.APIKey != "" {
		t.Errorf("expected auth disabled by default, got %q", cfg.APIKey)
	}
	if cfg.WorkerCount != 4 || cfg.MaxQueueSize != 100 {
		t.Errorf("unexpected pool defaults: %d workers, queue %d", cfg.WorkerCount, cfg.MaxQueueSize)
	}
	if cfg.TopSections != rank.DefaultTopSections || cfg.TopExcerpts != rank.DefaultTopExcerpts {
		t.Errorf("unexpected ranking defaults: %d/%d", cfg.TopSections, cfg.TopExcerpts)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected 1h TTL, got %v", cfg.JobTTL)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback enabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("JOB_TTL", "30m")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "false")

	cfg := Load()
	if cfg.Port != "9000" || cfg.WorkerCount != 8 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.JobTTL != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %v", cfg.JobTTL)
	}
	if cfg.PDFFallbackPdftotext {
		t.Error("expected fallback disabled")
	}
}

func TestLoad_InvalidValuesClamped(t *testing.T) {
	t.Setenv("WORKER_COUNT", "-3")
	t.Setenv("MAX_QUEUE_SIZE", "not-a-number")
	t.Setenv("JOB_TTL", "bogus")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("expected clamped worker count, got %d", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("expected fallback queue size, got %d", cfg.MaxQueueSize)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected fallback TTL, got %v", cfg.JobTTL)
	}
}

func TestFileConfig_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doclens.yaml")
	content := "workers: 12\ntop_sections: 7\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := Config{WorkerCount: 4, TopSections: 10, TopExcerpts: 5, MaxUploadBytes: 1024}
	fc.Apply(&cfg)

	if cfg.WorkerCount != 12 || cfg.TopSections != 7 {
		t.Errorf("overlay not applied: %+v", cfg)
	}
	// Fields absent from the file stay untouched.
	if cfg.TopExcerpts != 5 || cfg.MaxUploadBytes != 1024 {
		t.Errorf("absent fields were clobbered: %+v", cfg)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("workers: [not an int"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}
