package classifier

import "context"

// LabelScore is one (label, confidence) pair from a classifier.
type LabelScore struct {
	Label string
	Score float64
}

// Ranked is a classifier's output for one input string, ordered by descending
// score. Ordering is produced upstream; consumers must not re-sort it, so ties
// keep the classifier's preference.
type Ranked []LabelScore

// Top returns the highest-scoring entry, or false for an empty ranking.
func (r Ranked) Top() (LabelScore, bool) {
	if len(r) == 0 {
		return LabelScore{}, false
	}
	return r[0], true
}

// EmotionClassifier ranks the closed emotion vocabulary for each input text.
// Implementations must return exactly one ranking per input.
type EmotionClassifier interface {
	ClassifyEmotion(ctx context.Context, texts []string) ([]Ranked, error)
}

// ThemeClassifier ranks the supplied candidate labels for each input text
// (zero-shot, multi-label). Implementations must return exactly one ranking
// per input.
type ThemeClassifier interface {
	ClassifyThemes(ctx context.Context, texts []string, candidates []string) ([]Ranked, error)
}
