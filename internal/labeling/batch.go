package labeling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"versemood/internal/classifier"
	"versemood/internal/corpus"
	"versemood/internal/labels"
)

// ErrLengthMismatch indicates a classifier returned a result list whose length
// differs from its input list. This is never zipped against the wrong items;
// it fails the surrounding file instead.
var ErrLengthMismatch = errors.New("classifier result length mismatch")

// Labeler assigns emotion and theme labels to batches of verse text.
type Labeler struct {
	emotion     classifier.EmotionClassifier
	theme       classifier.ThemeClassifier
	themeLabels []string
	threshold   float64
	batchSize   int
	logger      *slog.Logger
}

// NewLabeler wires a labeler over the two classification capabilities.
// Zero-valued tuning fields fall back to package defaults.
func NewLabeler(emotion classifier.EmotionClassifier, theme classifier.ThemeClassifier, themeLabels []string, threshold float64, batchSize int, logger *slog.Logger) *Labeler {
	if len(themeLabels) == 0 {
		themeLabels = labels.DefaultThemeLabels
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Labeler{
		emotion:     emotion,
		theme:       theme,
		themeLabels: themeLabels,
		threshold:   threshold,
		batchSize:   batchSize,
		logger:      logger,
	}
}

// EmotionBatch classifies one batch of texts into top-1 emotion labels. A
// classifier failure marks every item in the batch with the error sentinel
// rather than dropping rows, so output length always equals input length.
func (l *Labeler) EmotionBatch(ctx context.Context, texts []string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	ranked, err := l.emotion.ClassifyEmotion(ctx, texts)
	if err != nil {
		l.logger.Error("emotion batch failed", "error", err, "items", len(texts))
		return sentinelFill(len(texts)), nil
	}
	if len(ranked) != len(texts) {
		return nil, fmt.Errorf("%w: %d results for %d texts", ErrLengthMismatch, len(ranked), len(texts))
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = AssignEmotion(r)
	}
	return out, nil
}

// ThemeBatch classifies one batch of texts into serialized theme values
// (labels joined in descending-score order). Failure semantics match
// EmotionBatch: per-item error sentinel on classifier failure, hard error on a
// length mismatch.
func (l *Labeler) ThemeBatch(ctx context.Context, texts []string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	ranked, err := l.theme.ClassifyThemes(ctx, texts, l.themeLabels)
	if err != nil {
		l.logger.Error("theme batch failed", "error", err, "items", len(texts))
		return sentinelFill(len(texts)), nil
	}
	if len(ranked) != len(texts) {
		return nil, fmt.Errorf("%w: %d results for %d texts", ErrLengthMismatch, len(ranked), len(texts))
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = labels.JoinThemes(AssignThemes(r, l.threshold))
	}
	return out, nil
}

// LabelEmotions walks texts in batches and returns one emotion label per text.
func (l *Labeler) LabelEmotions(ctx context.Context, texts []string) ([]string, error) {
	return l.inBatches(ctx, texts, l.EmotionBatch)
}

// LabelThemes walks texts in batches and returns one serialized theme value
// per text.
func (l *Labeler) LabelThemes(ctx context.Context, texts []string) ([]string, error) {
	return l.inBatches(ctx, texts, l.ThemeBatch)
}

func (l *Labeler) inBatches(ctx context.Context, texts []string, classify func(context.Context, []string) ([]string, error)) ([]string, error) {
	out := make([]string, 0, len(texts))
	for start := 0; start < len(texts); start += l.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := start + l.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch, err := classify(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	if len(out) != len(texts) {
		return nil, fmt.Errorf("%w: %d labels for %d texts", ErrLengthMismatch, len(out), len(texts))
	}
	return out, nil
}

func sentinelFill(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = corpus.EmotionError
	}
	return out
}
