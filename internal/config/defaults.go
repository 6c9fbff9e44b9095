package config

import "versemood/internal/labels"

const (
	defaultDataDir        = "~/.local/share/versemood"
	defaultLogDir         = "~/.local/share/versemood/logs"
	defaultBaseURL        = "https://api-inference.huggingface.co/models"
	defaultEmotionModel   = "j-hartmann/emotion-english-distilroberta-base"
	defaultThemeModel     = "facebook/bart-large-mnli"
	defaultTimeoutSeconds = 60
	defaultThreshold      = 0.7
	defaultBatchSize      = 32
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Classifier: Classifier{
			BaseURL:        defaultBaseURL,
			EmotionModel:   defaultEmotionModel,
			ThemeModel:     defaultThemeModel,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Labeling: Labeling{
			Threshold:   defaultThreshold,
			BatchSize:   defaultBatchSize,
			ThemeLabels: append([]string(nil), labels.DefaultThemeLabels...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
