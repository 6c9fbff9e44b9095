package labeling

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"versemood/internal/classifier"
	"versemood/internal/logging"
)

type fakeEmotion struct {
	rankings []classifier.Ranked
	err      error
}

func (f *fakeEmotion) ClassifyEmotion(_ context.Context, texts []string) ([]classifier.Ranked, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.rankings != nil {
		return f.rankings, nil
	}
	out := make([]classifier.Ranked, len(texts))
	for i := range texts {
		out[i] = classifier.Ranked{{Label: "neutral", Score: 1}}
	}
	return out, nil
}

type fakeTheme struct {
	rankings []classifier.Ranked
	err      error
}

func (f *fakeTheme) ClassifyThemes(_ context.Context, texts []string, _ []string) ([]classifier.Ranked, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.rankings != nil {
		return f.rankings, nil
	}
	out := make([]classifier.Ranked, len(texts))
	for i := range texts {
		out[i] = classifier.Ranked{{Label: "love", Score: 0.9}}
	}
	return out, nil
}

func newTestLabeler(emotion classifier.EmotionClassifier, theme classifier.ThemeClassifier) *Labeler {
	return NewLabeler(emotion, theme, nil, DefaultThreshold, 2, logging.NewNop())
}

func TestEmotionBatchTopOne(t *testing.T) {
	emotion := &fakeEmotion{rankings: []classifier.Ranked{
		{{Label: "joy", Score: 0.9}, {Label: "sadness", Score: 0.1}},
		{{Label: "anger", Score: 0.8}, {Label: "joy", Score: 0.2}},
	}}
	labeler := newTestLabeler(emotion, &fakeTheme{})
	got, err := labeler.EmotionBatch(context.Background(), []string{"joy", "anger"})
	if err != nil {
		t.Fatalf("EmotionBatch: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"joy", "anger"}) {
		t.Errorf("EmotionBatch = %v, want [joy anger]", got)
	}
}

func TestEmotionBatchFailureMarksAllItems(t *testing.T) {
	labeler := newTestLabeler(&fakeEmotion{err: errors.New("inference down")}, &fakeTheme{})
	got, err := labeler.EmotionBatch(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("classifier failure must not abort the batch: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"error", "error", "error"}) {
		t.Errorf("EmotionBatch on failure = %v, want all error sentinels", got)
	}
}

func TestThemeBatchFailureMarksAllItems(t *testing.T) {
	labeler := newTestLabeler(&fakeEmotion{}, &fakeTheme{err: errors.New("inference down")})
	got, err := labeler.ThemeBatch(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("classifier failure must not abort the batch: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"error", "error"}) {
		t.Errorf("ThemeBatch on failure = %v, want error sentinels", got)
	}
}

func TestBatchLengthMismatchIsHardFailure(t *testing.T) {
	emotion := &fakeEmotion{rankings: []classifier.Ranked{{{Label: "joy", Score: 1}}}}
	labeler := newTestLabeler(emotion, &fakeTheme{})
	_, err := labeler.EmotionBatch(context.Background(), []string{"a", "b"})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("EmotionBatch error = %v, want ErrLengthMismatch", err)
	}
}

func TestLabelEmotionsPreservesLengthAcrossBatches(t *testing.T) {
	labeler := newTestLabeler(&fakeEmotion{}, &fakeTheme{})
	texts := []string{"a", "b", "c", "d", "e"} // batch size 2 -> 3 calls
	got, err := labeler.LabelEmotions(context.Background(), texts)
	if err != nil {
		t.Fatalf("LabelEmotions: %v", err)
	}
	if len(got) != len(texts) {
		t.Fatalf("got %d labels for %d texts", len(got), len(texts))
	}
}

func TestLabelThemesSerializesDescending(t *testing.T) {
	theme := &fakeTheme{rankings: []classifier.Ranked{{
		{Label: "fear", Score: 0.9},
		{Label: "love", Score: 0.8},
		{Label: "faith", Score: 0.75},
		{Label: "forgiveness", Score: 0.2},
		{Label: "hope", Score: 0.1},
	}}}
	labeler := newTestLabeler(&fakeEmotion{}, theme)
	got, err := labeler.LabelThemes(context.Background(), []string{"verse"})
	if err != nil {
		t.Fatalf("LabelThemes: %v", err)
	}
	if got[0] != "fear;love;faith" {
		t.Errorf("LabelThemes = %q, want fear;love;faith", got[0])
	}
}
