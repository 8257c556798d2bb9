package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gauransh/gitingest/internal/model"
)

func TestLoadFileConfigMissingFile(t *testing.T) {
	cfg, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Missing config file should not be an error: %v", err)
	}

	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerURL, cfg.ServerURL)
	}
	if cfg.SliderPosition != model.DefaultSliderPosition {
		t.Errorf("Expected default slider position %d, got %d", model.DefaultSliderPosition, cfg.SliderPosition)
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "server_url: http://localhost:8000\noutput_dir: /tmp/digests\nslider_position: 800\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("Expected custom server URL, got %s", cfg.ServerURL)
	}
	if cfg.OutputDir != "/tmp/digests" {
		t.Errorf("Expected output dir /tmp/digests, got %s", cfg.OutputDir)
	}
	// Out-of-range slider positions are clamped, not rejected
	if cfg.SliderPosition != 500 {
		t.Errorf("Expected slider position clamped to 500, got %d", cfg.SliderPosition)
	}
}

func TestLoadFileConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("server_url: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFileConfig(path); err == nil {
		t.Error("Malformed config file should be an error")
	}
}
