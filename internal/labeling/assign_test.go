package labeling

import (
	"reflect"
	"testing"

	"versemood/internal/classifier"
	"versemood/internal/labels"
)

func TestAssignEmotion(t *testing.T) {
	tests := []struct {
		name   string
		ranked classifier.Ranked
		want   string
	}{
		{
			name:   "top label wins",
			ranked: classifier.Ranked{{Label: "joy", Score: 0.9}, {Label: "sadness", Score: 0.1}},
			want:   "joy",
		},
		{
			name:   "ties keep upstream order",
			ranked: classifier.Ranked{{Label: "anger", Score: 0.5}, {Label: "fear", Score: 0.5}},
			want:   "anger",
		},
		{
			name:   "low score still wins, emotion is forced-choice",
			ranked: classifier.Ranked{{Label: "neutral", Score: 0.2}},
			want:   "neutral",
		},
		{
			name:   "empty ranking",
			ranked: nil,
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssignEmotion(tt.ranked); got != tt.want {
				t.Errorf("AssignEmotion = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssignThemes(t *testing.T) {
	ranked := classifier.Ranked{
		{Label: "love", Score: 0.8},
		{Label: "faith", Score: 0.75},
		{Label: "hope", Score: 0.1},
		{Label: "forgiveness", Score: 0.2},
		{Label: "fear", Score: 0.9},
	}
	got := AssignThemes(ranked, 0.7)
	if !reflect.DeepEqual(got, []string{"love", "faith", "fear"}) {
		t.Errorf("AssignThemes = %v, want [love faith fear]", got)
	}
	if joined := labels.JoinThemes(got); joined != "love;faith;fear" {
		t.Errorf("serialized = %q, want love;faith;fear", joined)
	}
}

func TestAssignThemesBoundary(t *testing.T) {
	ranked := classifier.Ranked{{Label: "love", Score: 0.7}, {Label: "faith", Score: 0.6999}}
	got := AssignThemes(ranked, 0.7)
	// Comparison is >=, not >.
	if !reflect.DeepEqual(got, []string{"love"}) {
		t.Errorf("AssignThemes at boundary = %v, want [love]", got)
	}
}

func TestAssignThemesEmptyResultIsValid(t *testing.T) {
	ranked := classifier.Ranked{{Label: "love", Score: 0.3}}
	if got := AssignThemes(ranked, 0.7); got != nil {
		t.Errorf("AssignThemes = %v, want nil", got)
	}
}

func TestAssignThemesMonotonic(t *testing.T) {
	ranked := classifier.Ranked{
		{Label: "fear", Score: 0.9},
		{Label: "love", Score: 0.8},
		{Label: "faith", Score: 0.75},
		{Label: "forgiveness", Score: 0.2},
		{Label: "hope", Score: 0.1},
	}
	prev := len(AssignThemes(ranked, 0))
	for _, threshold := range []float64{0.05, 0.1, 0.2, 0.5, 0.7, 0.75, 0.8, 0.9, 1.0} {
		count := len(AssignThemes(ranked, threshold))
		if count > prev {
			t.Fatalf("raising threshold to %v increased label count from %d to %d", threshold, prev, count)
		}
		prev = count
	}
}
