package config

import (
	"os"
	"path/filepath"

	"github.com/zhubert/studdy/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".studdy"
	configFileName = "config.yaml"
)

// DefaultPath returns ~/.studdy/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads and parses the preferences file at path.
// Returns nil, nil if the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.ConfigLoadFailed(path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	return &cfg, nil
}

// LoadAndMerge loads the preferences file, fills gaps from DefaultConfig
// and validates the result. A missing file yields the defaults.
func LoadAndMerge(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	if cfg == nil {
		return defaults, nil
	}

	merged := Merge(cfg, defaults)
	if errs := Validate(merged); len(errs) > 0 {
		return nil, errors.ConfigInvalid(JoinErrors(errs))
	}
	return merged, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}
