package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParse_EmptyConfig(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// check defaults applied
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Timings.AdvanceInterval.Duration() != 5*time.Second {
		t.Errorf("AdvanceInterval = %v, want 5s", cfg.Timings.AdvanceInterval.Duration())
	}
	if cfg.Timings.ProgressInterval.Duration() != 50*time.Millisecond {
		t.Errorf("ProgressInterval = %v, want 50ms", cfg.Timings.ProgressInterval.Duration())
	}
	if cfg.Timings.FactInterval.Duration() != 10*time.Second {
		t.Errorf("FactInterval = %v, want 10s", cfg.Timings.FactInterval.Duration())
	}
	if cfg.Timings.NoticeDelay.Duration() != 3*time.Second {
		t.Errorf("NoticeDelay = %v, want 3s", cfg.Timings.NoticeDelay.Duration())
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json", cfg.Log)
	}
	if cfg.Log.MaxSizeMB != 10 || cfg.Log.MaxBackups != 3 || cfg.Log.MaxAgeDays != 14 {
		t.Errorf("Log rotation = %+v, want 10/3/14", cfg.Log)
	}
	if len(cfg.Images) != 0 || len(cfg.Facts) != 0 || len(cfg.Breeds) != 0 {
		t.Error("content lists should stay empty")
	}
}

func TestParse_FullConfig(t *testing.T) {
	yaml := `
title: Office Cats
tagline: Who sits on the keyboard
port: 9090
reduce_motion: true
seed: 42

timings:
  advance_interval: 8s
  progress_interval: 80ms
  fact_interval: 20s
  notice_delay: 2s

log:
  level: debug
  format: text
  file: /tmp/purrboard.log
  max_size_mb: 5
  max_backups: 1
  max_age_days: 7

images:
  - url: https://example.com/a.jpg
    caption: Nap time
  - url: http://example.com/b.jpg

facts:
  - Cats purr at 25 Hz.

breeds:
  - name: Sphynx
    description: Hairless.
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Title != "Office Cats" || cfg.Tagline != "Who sits on the keyboard" {
		t.Errorf("Title/Tagline = %q/%q", cfg.Title, cfg.Tagline)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if !cfg.ReduceMotion {
		t.Error("ReduceMotion = false, want true")
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Timings.AdvanceInterval.Duration() != 8*time.Second {
		t.Errorf("AdvanceInterval = %v, want 8s", cfg.Timings.AdvanceInterval.Duration())
	}
	if cfg.Timings.ProgressInterval.Duration() != 80*time.Millisecond {
		t.Errorf("ProgressInterval = %v, want 80ms", cfg.Timings.ProgressInterval.Duration())
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" || cfg.Log.File != "/tmp/purrboard.log" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Log.MaxSizeMB != 5 || cfg.Log.MaxBackups != 1 || cfg.Log.MaxAgeDays != 7 {
		t.Errorf("Log rotation = %+v, want 5/1/7", cfg.Log)
	}
	if len(cfg.Images) != 2 || cfg.Images[0].Caption != "Nap time" || cfg.Images[1].Caption != "" {
		t.Errorf("Images = %+v", cfg.Images)
	}
	if len(cfg.Facts) != 1 || cfg.Facts[0] != "Cats purr at 25 Hz." {
		t.Errorf("Facts = %v", cfg.Facts)
	}
	if len(cfg.Breeds) != 1 || cfg.Breeds[0].Name != "Sphynx" {
		t.Errorf("Breeds = %+v", cfg.Breeds)
	}
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "port too high",
			yaml:    "port: 70000",
			wantErr: "port must be between 1 and 65535",
		},
		{
			name:    "negative port",
			yaml:    "port: -1",
			wantErr: "port must be between 1 and 65535",
		},
		{
			name:    "invalid duration",
			yaml:    "timings:\n  advance_interval: soon",
			wantErr: "invalid duration",
		},
		{
			name:    "negative notice delay",
			yaml:    "timings:\n  notice_delay: -1s",
			wantErr: "timings.notice_delay must be positive",
		},
		{
			name:    "progress too fast",
			yaml:    "timings:\n  progress_interval: 1ms",
			wantErr: "timings.progress_interval must be at least 10ms",
		},
		{
			name:    "advance too fast",
			yaml:    "timings:\n  advance_interval: 50ms",
			wantErr: "timings.advance_interval must be at least 100ms",
		},
		{
			name:    "fact too fast",
			yaml:    "timings:\n  fact_interval: 10ms",
			wantErr: "timings.fact_interval must be at least 100ms",
		},
		{
			name:    "unknown level",
			yaml:    "log:\n  level: loud",
			wantErr: "log.level",
		},
		{
			name:    "unknown format",
			yaml:    "log:\n  format: xml",
			wantErr: "log.format",
		},
		{
			name:    "negative rotation",
			yaml:    "log:\n  max_backups: -2",
			wantErr: "cannot be negative",
		},
		{
			name:    "image without url",
			yaml:    "images:\n  - caption: lost",
			wantErr: "images[0]: url is required",
		},
		{
			name:    "image without scheme",
			yaml:    "images:\n  - url: https://example.com/a.jpg\n  - url: example.com/b.jpg",
			wantErr: "images[1]: url must have a scheme",
		},
		{
			name:    "image with ftp scheme",
			yaml:    "images:\n  - url: ftp://example.com/a.jpg",
			wantErr: "url scheme must be http or https",
		},
		{
			name:    "image without host",
			yaml:    "images:\n  - url: https:///a.jpg",
			wantErr: "images[0]: url must have a host",
		},
		{
			name:    "empty fact",
			yaml:    "facts:\n  - one\n  - \"\"",
			wantErr: "facts[1]: text is required",
		},
		{
			name:    "breed without name",
			yaml:    "breeds:\n  - description: mystery",
			wantErr: "breeds[0]: name is required",
		},
		{
			name:    "malformed yaml",
			yaml:    "images: [",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Parse() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("PURRBOARD_TEST_HOST", "cats.example.com")
	t.Setenv("PURRBOARD_TEST_EMPTY", "")

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"no vars", "https://example.com", "https://example.com", false},
		{"set var", "https://${PURRBOARD_TEST_HOST}/a.jpg", "https://cats.example.com/a.jpg", false},
		{"set var ignores default", "${PURRBOARD_TEST_HOST:-other}", "cats.example.com", false},
		{"empty var is set", "x${PURRBOARD_TEST_EMPTY:-fallback}x", "xx", false},
		{"unset with default", "${PURRBOARD_TEST_MISSING:-fallback}", "fallback", false},
		{"unset with empty default", "a${PURRBOARD_TEST_MISSING:-}b", "ab", false},
		{"unset without default", "${PURRBOARD_TEST_MISSING}", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandEnvVars(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expandEnvVars() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("expandEnvVars() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_ExpandsEnvVars(t *testing.T) {
	t.Setenv("PURRBOARD_TEST_TITLE", "Cats of Floor 3")
	t.Setenv("PURRBOARD_TEST_CDN", "https://cdn.example.com")

	yaml := `
title: ${PURRBOARD_TEST_TITLE}
tagline: ${PURRBOARD_TEST_TAGLINE:-All cats, all day}
images:
  - url: ${PURRBOARD_TEST_CDN}/tabby.jpg
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Title != "Cats of Floor 3" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Tagline != "All cats, all day" {
		t.Errorf("Tagline = %q", cfg.Tagline)
	}
	if cfg.Images[0].URL != "https://cdn.example.com/tabby.jpg" {
		t.Errorf("Images[0].URL = %q", cfg.Images[0].URL)
	}
}

func TestParse_MissingEnvVar(t *testing.T) {
	yaml := `
images:
  - url: ${PURRBOARD_TEST_NOT_SET}/tabby.jpg
`
	_, err := Parse([]byte(yaml))
	if err == nil {
		t.Fatal("Parse() expected error for unset variable, got nil")
	}
	if !strings.Contains(err.Error(), "images[0]: url") || !strings.Contains(err.Error(), "PURRBOARD_TEST_NOT_SET") {
		t.Errorf("Parse() error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "purrboard.yaml")
	if err := os.WriteFile(path, []byte("port: 9191\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 9191 {
		t.Errorf("Port = %d, want 9191", cfg.Port)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Load() error = %v, want read error", err)
	}
}
