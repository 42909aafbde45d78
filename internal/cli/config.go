package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("cli: invalid config")

// Config holds settings that can live in a YAML file. Command-line flags
// take precedence over it.
type Config struct {
	// Workers is the number of goroutines per pivot round.
	Workers int `yaml:"workers"`

	// Plain selects the unstyled output layout.
	Plain bool `yaml:"plain"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a single worker, styled output and info logging.
func DefaultConfig() Config {
	return Config{
		Workers:  1,
		Plain:    false,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.level(); err != nil {
		return err
	}

	return nil
}

func (c Config) level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return level, nil
}
