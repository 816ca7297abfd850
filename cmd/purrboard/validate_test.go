package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeCmd runs the root command with args and returns captured output
// and any error.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestRunValidate_ValidConfig(t *testing.T) {
	configPath := writeConfigFile(t, `
title: Office Cats
port: 9090
timings:
  advance_interval: 8s
images:
  - url: https://example.com/a.jpg
    caption: Nap time
  - url: https://example.com/b.jpg
facts:
  - Cats purr at 25 Hz.
`)

	output, err := executeCmd(t, "validate", "-c", configPath)
	if err != nil {
		t.Fatalf("validate command error = %v", err)
	}

	expectedPhrases := []string{
		"Config is valid!",
		"Title:    Office Cats",
		"Port:     9090",
		"advance 8s, progress 50ms, fact 10s, notice 3s",
		"2 images, 1 facts, 5 breeds",
	}

	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	configPath := writeConfigFile(t, `
breeds:
  - description: A cat with no name
`)

	_, err := executeCmd(t, "validate", "-c", configPath)
	if err == nil {
		t.Fatal("validate command expected error for invalid config, got nil")
	}

	if !strings.Contains(err.Error(), "breeds[0]: name is required") {
		t.Errorf("error should mention 'breeds[0]: name is required', got: %v", err)
	}
}

func TestRunValidate_MissingFile(t *testing.T) {
	_, err := executeCmd(t, "validate", "-c", "/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("validate command expected error for missing file, got nil")
	}

	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error should mention 'failed to read', got: %v", err)
	}
}

func TestVersion(t *testing.T) {
	output, err := executeCmd(t, "version")
	if err != nil {
		t.Fatalf("version command error = %v", err)
	}
	if !strings.Contains(output, "purrboard dev") {
		t.Errorf("output = %q, want version line", output)
	}
}

func TestRunServe_WatchRequiresConfig(t *testing.T) {
	_, err := executeCmd(t, "serve", "--watch")
	if err == nil {
		t.Fatal("serve --watch without config expected error, got nil")
	}
	if !strings.Contains(err.Error(), "--watch requires --config") {
		t.Errorf("error = %v", err)
	}
}

func TestRunServe_InvalidPortFlag(t *testing.T) {
	configPath := writeConfigFile(t, "log:\n  file: "+filepath.Join(t.TempDir(), "serve.log")+"\n")

	_, err := executeCmd(t, "serve", "-c", configPath, "--port", "70000", "--watch=false")
	if err == nil {
		t.Fatal("serve with invalid port expected error, got nil")
	}
	if !strings.Contains(err.Error(), "port must be between 1 and 65535") {
		t.Errorf("error = %v", err)
	}
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}

	board, err := newBoard(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("newBoard() error = %v", err)
	}
	if len(board.Content().Images) != 5 {
		t.Errorf("len(Images) = %d, want 5", len(board.Content().Images))
	}
}

func TestRunValidate_Probe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cat.jpg" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
	}))
	defer server.Close()
	t.Cleanup(func() { _ = validateCmd.Flags().Set("probe", "false") })

	good := writeConfigFile(t, "images:\n  - url: "+server.URL+"/cat.jpg\n")
	output, err := executeCmd(t, "validate", "-c", good, "--probe")
	if err != nil {
		t.Fatalf("validate --probe error = %v\nGot: %s", err, output)
	}
	if !strings.Contains(output, "ok    images[0]") {
		t.Errorf("output missing ok line\nGot: %s", output)
	}

	bad := writeConfigFile(t, "images:\n  - url: "+server.URL+"/cat.jpg\n  - url: "+server.URL+"/gone.jpg\n")
	output, err = executeCmd(t, "validate", "-c", bad, "--probe")
	if err == nil {
		t.Fatal("validate --probe expected error for missing image, got nil")
	}
	if !strings.Contains(err.Error(), "1 of 2 images cannot be shown") {
		t.Errorf("error = %v", err)
	}
	if !strings.Contains(output, "FAIL  images[1]") || !strings.Contains(output, "status 404") {
		t.Errorf("output missing failure line\nGot: %s", output)
	}
}
