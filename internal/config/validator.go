package config

import (
	"fmt"
	"path/filepath"
)

// Validate checks every setting and reports all problems at once.
func Validate(cfg *Config) error {
	var errors []string

	if cfg.Repeat <= 0 {
		errors = append(errors, fmt.Sprintf("repeat must be positive, got: %d", cfg.Repeat))
	}
	if cfg.Shape.Rows <= 0 {
		errors = append(errors, fmt.Sprintf("shape.rows must be positive, got: %d", cfg.Shape.Rows))
	}
	if cfg.Shape.Cols <= 0 {
		errors = append(errors, fmt.Sprintf("shape.cols must be positive, got: %d", cfg.Shape.Cols))
	}
	if cfg.Output == "" {
		errors = append(errors, "output must not be empty")
	}

	// Every file the run writes must be distinct.
	written := map[string]string{}
	for key, path := range map[string]string{
		"output":       cfg.Output,
		"metrics_file": cfg.MetricsFile,
		"history_db":   cfg.HistoryDB,
		"log_file":     cfg.LogFile,
	} {
		if path == "" {
			continue
		}
		clean := filepath.Clean(path)
		if other, ok := written[clean]; ok {
			errors = append(errors, fmt.Sprintf("%s and %s both point to %s", other, key, path))
			continue
		}
		written[clean] = key
	}

	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}
