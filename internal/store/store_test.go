package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"versemood/internal/config"
	"versemood/internal/corpus"
	"versemood/internal/labels"
	"versemood/internal/store"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	base := t.TempDir()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}

func openStore(t *testing.T, cfg *config.Config) *store.Store {
	t.Helper()
	s, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestImportAndLoadCorpus(t *testing.T) {
	s := openStore(t, testConfig(t))
	ctx := context.Background()

	verses := []corpus.Verse{
		{Book: "john", Chapter: 3, VerseNum: 16, Text: "For God so loved", Emotion: "joy", Themes: []string{"love", "faith"}, Language: labels.LanguageEnglish},
		{Book: "john", Chapter: 1, VerseNum: 1, Text: "In the beginning", Emotion: "neutral", Language: labels.LanguageEnglish},
	}
	result, err := s.ImportVerses(ctx, verses)
	if err != nil {
		t.Fatalf("ImportVerses returned error: %v", err)
	}
	if result.Inserted != 2 || result.Replaced != 0 {
		t.Fatalf("unexpected import result: %+v", result)
	}

	loaded, err := s.LoadCorpus(ctx, labels.LanguageEnglish)
	if err != nil {
		t.Fatalf("LoadCorpus returned error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d verses, want 2", len(loaded))
	}
	// Chapter order within the book.
	if loaded[0].Chapter != 1 || loaded[1].Chapter != 3 {
		t.Fatalf("unexpected order: %v then %v", loaded[0].Reference(), loaded[1].Reference())
	}
	if loaded[1].Emotion != "joy" || loaded[1].ThemeString() != "love;faith" {
		t.Fatalf("unexpected labels: %q %q", loaded[1].Emotion, loaded[1].ThemeString())
	}
}

func TestImportCanonicalizesSecondaryLabels(t *testing.T) {
	s := openStore(t, testConfig(t))
	ctx := context.Background()

	verses := []corpus.Verse{
		{Book: "juan", Chapter: 3, VerseNum: 16, Text: "Porque de tal manera", Emotion: "Alegría", Themes: []string{"amor", "fe"}, Language: labels.LanguageSpanish},
		{Book: "juan", Chapter: 3, VerseNum: 17, Text: "Porque no envió", Emotion: "error", Language: labels.LanguageSpanish},
	}
	if _, err := s.ImportVerses(ctx, verses); err != nil {
		t.Fatalf("ImportVerses returned error: %v", err)
	}

	loaded, err := s.LoadCorpus(ctx, labels.LanguageSpanish)
	if err != nil {
		t.Fatalf("LoadCorpus returned error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d verses, want 2", len(loaded))
	}
	if loaded[0].Emotion != "joy" {
		t.Fatalf("emotion not canonicalized: %q", loaded[0].Emotion)
	}
	if loaded[0].ThemeString() != "love;faith" {
		t.Fatalf("themes not canonicalized: %q", loaded[0].ThemeString())
	}
	// The failure sentinel survives canonicalization untouched.
	if loaded[1].Emotion != corpus.EmotionError {
		t.Fatalf("sentinel rewritten to %q", loaded[1].Emotion)
	}
}

func TestImportReplacesExistingVerse(t *testing.T) {
	s := openStore(t, testConfig(t))
	ctx := context.Background()

	first := []corpus.Verse{{Book: "genesis", Chapter: 1, VerseNum: 1, Text: "v1", Emotion: "neutral", Language: labels.LanguageEnglish}}
	if _, err := s.ImportVerses(ctx, first); err != nil {
		t.Fatal(err)
	}

	second := []corpus.Verse{{Book: "Genesis", Chapter: 1, VerseNum: 1, Text: "v1", Emotion: "joy", Themes: []string{"hope"}, Language: labels.LanguageEnglish}}
	result, err := s.ImportVerses(ctx, second)
	if err != nil {
		t.Fatal(err)
	}
	if result.Inserted != 0 || result.Replaced != 1 {
		t.Fatalf("unexpected import result: %+v", result)
	}

	loaded, err := s.LoadCorpus(ctx, labels.LanguageEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0].Emotion != "joy" {
		t.Fatalf("replacement not applied: %+v", loaded)
	}
}

func TestCountsAndDistribution(t *testing.T) {
	s := openStore(t, testConfig(t))
	ctx := context.Background()

	verses := []corpus.Verse{
		{Book: "john", Chapter: 1, VerseNum: 1, Text: "a", Emotion: "joy", Language: labels.LanguageEnglish},
		{Book: "john", Chapter: 1, VerseNum: 2, Text: "b", Emotion: "joy", Language: labels.LanguageEnglish},
		{Book: "john", Chapter: 1, VerseNum: 3, Text: "c", Emotion: "sadness", Language: labels.LanguageEnglish},
		{Book: "juan", Chapter: 1, VerseNum: 1, Text: "d", Emotion: "joy", Language: labels.LanguageSpanish},
	}
	if _, err := s.ImportVerses(ctx, verses); err != nil {
		t.Fatal(err)
	}

	counts, err := s.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if counts[labels.LanguageEnglish] != 3 || counts[labels.LanguageSpanish] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	dist, err := s.EmotionDistribution(ctx, labels.LanguageEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if dist["joy"] != 2 || dist["sadness"] != 1 {
		t.Fatalf("unexpected distribution: %v", dist)
	}
}

func TestReopenPreservesData(t *testing.T) {
	cfg := testConfig(t)
	s, err := store.Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if _, err := s.ImportVerses(ctx, []corpus.Verse{{Book: "psalms", Chapter: 23, VerseNum: 1, Text: "The Lord is my shepherd", Emotion: "trust", Language: labels.LanguageEnglish}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := openStore(t, cfg)
	loaded, err := reopened.LoadCorpus(ctx, labels.LanguageEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0].Emotion != "trust" {
		t.Fatalf("data lost across reopen: %+v", loaded)
	}
}

func TestOpenRefusesSecondWriter(t *testing.T) {
	cfg := testConfig(t)
	first := openStore(t, cfg)
	_ = first

	if _, err := store.Open(cfg); !errors.Is(err, store.ErrLocked) {
		t.Fatalf("second Open error = %v, want ErrLocked", err)
	}
}

func TestClear(t *testing.T) {
	s := openStore(t, testConfig(t))
	ctx := context.Background()
	if _, err := s.ImportVerses(ctx, []corpus.Verse{{Book: "ruth", Chapter: 1, VerseNum: 1, Text: "x", Language: labels.LanguageEnglish}}); err != nil {
		t.Fatal(err)
	}
	removed, err := s.Clear(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Fatalf("Clear removed %d rows, want 1", removed)
	}
}
