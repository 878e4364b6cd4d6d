package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	var errs []error

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Classification.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("classification: %w", err))
	}

	if err := c.Datasets.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("datasets: %w", err))
	}

	return errors.Join(errs...)
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s (valid: json, text)", l.Format)
	}

	return nil
}

func (c *ClassificationConfig) Validate() error {
	var errs []error

	if c.Method == "" {
		errs = append(errs, fmt.Errorf("method cannot be empty"))
	}

	if c.NumFolds < 1 {
		errs = append(errs, fmt.Errorf("num_folds must be at least 1, got %d", c.NumFolds))
	}

	if c.NumJobs == 0 || c.NumJobs < -1 {
		errs = append(errs, fmt.Errorf("n_jobs must be positive or -1, got %d", c.NumJobs))
	}

	return errors.Join(errs...)
}

func (d *DatasetsConfig) Validate() error {
	if d.AnnotationsDir == "" {
		return fmt.Errorf("annotations_dir cannot be empty")
	}
	return nil
}
