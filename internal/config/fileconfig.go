package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gauransh/gitingest/internal/model"
	"github.com/gauransh/gitingest/internal/scale"
)

// CLI config file location under the user config directory.
const (
	FileConfigDir  = "gitingest"
	FileConfigName = "config.yml"
)

// FileConfig is the optional YAML configuration for the command-line client.
type FileConfig struct {
	ServerURL      string `yaml:"server_url"`
	OutputDir      string `yaml:"output_dir"`
	SliderPosition int    `yaml:"slider_position"`
}

// DefaultFileConfig returns the configuration used when no file exists.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		ServerURL:      DefaultServerURL,
		SliderPosition: model.DefaultSliderPosition,
	}
}

// DefaultFileConfigPath returns the per-user config file path, or "" when the
// user config directory cannot be resolved.
func DefaultFileConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, FileConfigDir, FileConfigName)
}

// LoadFileConfig reads the YAML config at path. A missing file yields the
// defaults without error; a malformed file is an error so typos do not
// silently fall back.
func LoadFileConfig(path string) (*FileConfig, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	cfg.SliderPosition = scale.ClampPosition(cfg.SliderPosition)

	return cfg, nil
}
