package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateClassifier(); err != nil {
		return err
	}
	if err := c.validateLabeling(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return fmt.Errorf("paths.data_dir must not be empty")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return fmt.Errorf("paths.log_dir must not be empty")
	}
	return nil
}

func (c *Config) validateClassifier() error {
	if !strings.HasPrefix(c.Classifier.BaseURL, "http://") && !strings.HasPrefix(c.Classifier.BaseURL, "https://") {
		return fmt.Errorf("classifier.base_url %q must start with http:// or https://", c.Classifier.BaseURL)
	}
	if c.Classifier.EmotionModel == "" {
		return fmt.Errorf("classifier.emotion_model must not be empty")
	}
	if c.Classifier.ThemeModel == "" {
		return fmt.Errorf("classifier.theme_model must not be empty")
	}
	if c.Classifier.TimeoutSeconds <= 0 {
		return fmt.Errorf("classifier.timeout_seconds must be positive, got %d", c.Classifier.TimeoutSeconds)
	}
	return nil
}

func (c *Config) validateLabeling() error {
	if c.Labeling.Threshold < 0 || c.Labeling.Threshold > 1 {
		return fmt.Errorf("labeling.threshold must be between 0 and 1, got %g", c.Labeling.Threshold)
	}
	if c.Labeling.BatchSize <= 0 {
		return fmt.Errorf("labeling.batch_size must be positive, got %d", c.Labeling.BatchSize)
	}
	if len(c.Labeling.ThemeLabels) == 0 {
		return fmt.Errorf("labeling.theme_labels must not be empty")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be debug, info, warn, or error", c.Logging.Level)
	}
	return nil
}
