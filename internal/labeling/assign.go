package labeling

import (
	"versemood/internal/classifier"
)

// DefaultThreshold is the confidence a theme label must reach to be stored.
const DefaultThreshold = 0.7

// DefaultBatchSize is how many verses go into one classifier call.
const DefaultBatchSize = 32

// AssignEmotion picks the single highest-scoring label. Emotion assignment is
// forced-choice: no threshold applies, and ties keep whichever label the
// upstream ranking lists first. An empty ranking yields the empty string.
func AssignEmotion(ranked classifier.Ranked) string {
	top, ok := ranked.Top()
	if !ok {
		return ""
	}
	return top.Label
}

// AssignThemes keeps every label whose score is at or above threshold. The
// comparison is >=, so a score exactly at the threshold passes. Input order
// (descending score) is preserved; an empty result is a valid terminal state.
func AssignThemes(ranked classifier.Ranked, threshold float64) []string {
	var out []string
	for _, entry := range ranked {
		if entry.Score >= threshold {
			out = append(out, entry.Label)
		}
	}
	return out
}
