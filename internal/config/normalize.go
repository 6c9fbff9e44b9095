package config

import (
	"fmt"
	"os"
	"strings"

	"versemood/internal/labels"
	"versemood/internal/textutil"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeClassifier()
	c.normalizeLabeling()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeClassifier() {
	c.Classifier.APIKey = strings.TrimSpace(c.Classifier.APIKey)
	if c.Classifier.APIKey == "" {
		if value, ok := os.LookupEnv("HUGGING_FACE_HUB_TOKEN"); ok {
			c.Classifier.APIKey = strings.TrimSpace(value)
		} else if value, ok := os.LookupEnv("HF_TOKEN"); ok {
			c.Classifier.APIKey = strings.TrimSpace(value)
		}
	}
	c.Classifier.BaseURL = strings.TrimSpace(c.Classifier.BaseURL)
	if c.Classifier.BaseURL == "" {
		c.Classifier.BaseURL = defaultBaseURL
	}
	c.Classifier.EmotionModel = strings.TrimSpace(c.Classifier.EmotionModel)
	if c.Classifier.EmotionModel == "" {
		c.Classifier.EmotionModel = defaultEmotionModel
	}
	c.Classifier.ThemeModel = strings.TrimSpace(c.Classifier.ThemeModel)
	if c.Classifier.ThemeModel == "" {
		c.Classifier.ThemeModel = defaultThemeModel
	}
	if c.Classifier.TimeoutSeconds <= 0 {
		c.Classifier.TimeoutSeconds = defaultTimeoutSeconds
	}
}

func (c *Config) normalizeLabeling() {
	if c.Labeling.Threshold == 0 {
		c.Labeling.Threshold = defaultThreshold
	}
	if c.Labeling.BatchSize <= 0 {
		c.Labeling.BatchSize = defaultBatchSize
	}
	if len(c.Labeling.ThemeLabels) == 0 {
		c.Labeling.ThemeLabels = append([]string(nil), labels.DefaultThemeLabels...)
		return
	}
	cleaned := make([]string, 0, len(c.Labeling.ThemeLabels))
	seen := make(map[string]struct{}, len(c.Labeling.ThemeLabels))
	for _, label := range c.Labeling.ThemeLabels {
		trimmed := strings.TrimSpace(label)
		if trimmed == "" {
			continue
		}
		key := textutil.Normalize(trimmed)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, trimmed)
	}
	if len(cleaned) == 0 {
		cleaned = append([]string(nil), labels.DefaultThemeLabels...)
	}
	c.Labeling.ThemeLabels = cleaned
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
