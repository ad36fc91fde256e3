package shell

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ecalc/ecalc/pkg/env"
)

// Config is the content of rc.yaml.
type Config struct {
	// Prompt shown before each line in interactive mode.
	Prompt string `yaml:"prompt"`
	// Number of decimal digits used to show non-integral results.
	Precision int `yaml:"precision"`
	// Use the line-buffered editor even if the terminal supports raw mode.
	BasicEditor bool `yaml:"basic-editor"`
}

// MaxPrecision is the largest supported value of Config.Precision.
const MaxPrecision = 17

// DefaultConfig returns the configuration used when there is no rc file.
func DefaultConfig() *Config {
	return &Config{Prompt: "> ", Precision: 8}
}

// RCPath returns the default path of rc.yaml.
func RCPath() (string, error) {
	if dir := os.Getenv(env.XDG_CONFIG_HOME); dir != "" {
		return filepath.Join(dir, "ecalc", "rc.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find rc.yaml: %w", err)
	}
	return filepath.Join(home, ".config", "ecalc", "rc.yaml"), nil
}

// LoadConfig reads the configuration from the given rc file. Keys missing
// from the file take their default values; unknown keys are errors.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	err = dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Precision < 0 || cfg.Precision > MaxPrecision {
		return nil, fmt.Errorf("%s: precision must be between 0 and %d, got %d",
			path, MaxPrecision, cfg.Precision)
	}
	return cfg, nil
}
