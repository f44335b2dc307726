package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/vk/cellgrid/internal/coord"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SheetPath string   // hcl file or directory
	Cells     []string // cells to report; empty means every declared cell

	LogFormat string
	LogLevel  string

	Watch    bool
	Debounce time.Duration
	HTTPPort int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.SheetPath == "" {
		return nil, errors.New("SheetPath is a required configuration field and cannot be empty")
	}
	for _, raw := range cfg.Cells {
		if _, err := coord.Parse(raw); err != nil {
			return nil, fmt.Errorf("invalid cell in report list: %w", err)
		}
	}
	if cfg.HTTPPort < 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("HTTPPort out of range: %d", cfg.HTTPPort)
	}
	if cfg.Debounce < 0 {
		return nil, fmt.Errorf("Debounce cannot be negative: %s", cfg.Debounce)
	}

	return &cfg, nil
}
