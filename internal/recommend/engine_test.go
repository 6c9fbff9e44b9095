package recommend

import (
	"math/rand/v2"
	"testing"

	"versemood/internal/corpus"
	"versemood/internal/labels"
	"versemood/internal/logging"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(logging.NewNop(), WithRand(rand.New(rand.NewPCG(1, 2))))
}

func verse(book string, chapter, num int, emotion string, themes ...string) corpus.Verse {
	return corpus.Verse{
		Book:     book,
		Chapter:  chapter,
		VerseNum: num,
		Text:     "text",
		Emotion:  emotion,
		Themes:   themes,
		Language: labels.LanguageEnglish,
	}
}

func TestRecommendStratifiedDraw(t *testing.T) {
	var verses []corpus.Verse
	for i := 1; i <= 3; i++ {
		verses = append(verses, verse("john", 3, i, "joy", "love"))
	}
	for i := 1; i <= 5; i++ {
		verses = append(verses, verse("psalms", 23, i, "joy", "love"))
	}
	// Non-matching rows must not leak into the sample.
	verses = append(verses, verse("romans", 8, 1, "sadness", "love"))
	verses = append(verses, verse("romans", 8, 2, "joy", "faith"))

	result := testEngine(t).Recommend(verses, "joy", "love", labels.LanguageEnglish)
	if len(result) != 4 {
		t.Fatalf("Recommend returned %d verses, want 4 (2 gospels + 2 OT)", len(result))
	}

	counts := map[corpus.Section]int{}
	seen := map[corpus.Key]struct{}{}
	for _, v := range result {
		counts[corpus.SectionFor(v.Book, labels.LanguageEnglish)]++
		if _, dup := seen[v.Key()]; dup {
			t.Fatalf("duplicate verse key %v in result", v.Key())
		}
		seen[v.Key()] = struct{}{}
	}
	if counts[corpus.SectionGospels] != 2 {
		t.Errorf("gospels count = %d, want 2", counts[corpus.SectionGospels])
	}
	if counts[corpus.SectionNTRest] != 0 {
		t.Errorf("nt_rest count = %d, want 0", counts[corpus.SectionNTRest])
	}
	if counts[corpus.SectionOldTestament] != 2 {
		t.Errorf("old_testament count = %d, want 2", counts[corpus.SectionOldTestament])
	}
}

func TestRecommendCapsPerSection(t *testing.T) {
	var verses []corpus.Verse
	books := []string{"matthew", "romans", "genesis"}
	for _, book := range books {
		for i := 1; i <= 10; i++ {
			verses = append(verses, verse(book, 1, i, "trust", "faith"))
		}
	}

	result := testEngine(t).Recommend(verses, "trust", "faith", labels.LanguageEnglish)
	if len(result) != MaxResults {
		t.Fatalf("Recommend returned %d verses, want %d", len(result), MaxResults)
	}
	counts := map[corpus.Section]int{}
	for _, v := range result {
		counts[corpus.SectionFor(v.Book, labels.LanguageEnglish)]++
	}
	for _, section := range corpus.Sections {
		if counts[section] != PerSection {
			t.Errorf("section %s count = %d, want %d", section, counts[section], PerSection)
		}
	}
}

func TestRecommendEmptyCorpus(t *testing.T) {
	if got := testEngine(t).Recommend(nil, "joy", "love", labels.LanguageEnglish); len(got) != 0 {
		t.Fatalf("Recommend on empty corpus returned %d verses, want 0", len(got))
	}
}

func TestRecommendNoMatch(t *testing.T) {
	verses := []corpus.Verse{verse("john", 3, 16, "joy", "love")}
	if got := testEngine(t).Recommend(verses, "anger", "fear", labels.LanguageEnglish); len(got) != 0 {
		t.Fatalf("Recommend with no matching rows returned %d verses, want 0", len(got))
	}
}

func TestRecommendEmptyQueryNeverMatches(t *testing.T) {
	verses := []corpus.Verse{verse("john", 3, 16, "joy", "love")}
	e := testEngine(t)
	if got := e.Recommend(verses, "", "love", labels.LanguageEnglish); len(got) != 0 {
		t.Errorf("empty emotion matched %d verses, want 0", len(got))
	}
	if got := e.Recommend(verses, "joy", "   ", labels.LanguageEnglish); len(got) != 0 {
		t.Errorf("blank theme matched %d verses, want 0", len(got))
	}
}

func TestRecommendSecondaryLanguageQuery(t *testing.T) {
	// Corpus stores the primary vocabulary; the Spanish query still matches.
	verses := []corpus.Verse{
		verse("genesis", 1, 1, "joy", "love"),
		verse("genesis", 1, 2, "joy", "love", "faith"),
	}
	result := testEngine(t).Recommend(verses, "alegría", "amor", labels.LanguageSpanish)
	if len(result) != 2 {
		t.Fatalf("Spanish query returned %d verses, want 2", len(result))
	}
	// Diacritic-free input normalizes to the same terms.
	result = testEngine(t).Recommend(verses, "Alegria", "Amor", labels.LanguageSpanish)
	if len(result) != 2 {
		t.Fatalf("diacritic-free Spanish query returned %d verses, want 2", len(result))
	}
}

func TestRecommendDeduplicatesKeys(t *testing.T) {
	verses := []corpus.Verse{
		verse("john", 3, 16, "joy", "love"),
		verse("John", 3, 16, "joy", "love"),
		verse("john", 3, 16, "joy", "love", "hope"),
	}
	result := testEngine(t).Recommend(verses, "joy", "love", labels.LanguageEnglish)
	if len(result) != 1 {
		t.Fatalf("Recommend returned %d verses for one distinct key, want 1", len(result))
	}
}

func TestRecommendThemeMembership(t *testing.T) {
	verses := []corpus.Verse{
		verse("exodus", 14, 14, "trust", "fear", "faith", "hope"),
	}
	result := testEngine(t).Recommend(verses, "trust", "faith", labels.LanguageEnglish)
	if len(result) != 1 {
		t.Fatalf("theme membership match returned %d verses, want 1", len(result))
	}
}

func TestRecommendAny(t *testing.T) {
	var verses []corpus.Verse
	for i := 1; i <= 20; i++ {
		verses = append(verses, verse("genesis", 1, i, "joy", "hope"))
	}
	e := testEngine(t)
	if got := e.RecommendAny(verses, "joy", "hope", labels.LanguageEnglish, 0); len(got) != DefaultAnyLimit {
		t.Errorf("RecommendAny with zero limit returned %d verses, want %d", len(got), DefaultAnyLimit)
	}
	if got := e.RecommendAny(verses, "joy", "hope", labels.LanguageEnglish, 3); len(got) != 3 {
		t.Errorf("RecommendAny limit 3 returned %d verses, want 3", len(got))
	}
	if got := e.RecommendAny(verses[:2], "joy", "hope", labels.LanguageEnglish, 5); len(got) != 2 {
		t.Errorf("RecommendAny over a thin pool returned %d verses, want 2", len(got))
	}
}
