package transfer

import (
	"log/slog"

	"versemood/internal/corpus"
	"versemood/internal/labels"
	"versemood/internal/textutil"
)

// BookReport captures data-quality counters for one transferred book, so
// alignment regressions stay visible.
type BookReport struct {
	Book          string
	Rows          int
	Matched       int
	Unmatched     int
	DuplicateKeys int
}

// labelPair is the translated (theme, emotion) value carried across editions.
type labelPair struct {
	themes  []string
	emotion string
}

// TransferBook copies translated labels from the primary edition of one book
// onto the secondary edition of the same book. The output has exactly one row
// per secondary input row: a missing (chapter, verse) counterpart yields empty
// labels, never values reused from a previous row. Duplicate keys in the
// primary rows resolve last-write-wins and are counted as warnings.
func TransferBook(primary, secondary []corpus.Verse, logger *slog.Logger) ([]corpus.Verse, BookReport) {
	if logger == nil {
		logger = slog.Default()
	}
	report := BookReport{Rows: len(secondary)}
	if len(secondary) > 0 {
		report.Book = textutil.NormalizeBookID(secondary[0].Book)
	}

	lookup := make(map[corpus.Ref]labelPair, len(primary))
	for _, v := range primary {
		ref := v.Ref()
		if _, exists := lookup[ref]; exists {
			report.DuplicateKeys++
			logger.Warn("duplicate verse key in primary corpus, keeping later row",
				"book", textutil.NormalizeBookID(v.Book), "chapter", ref.Chapter, "verse", ref.Verse)
		}
		translated := make([]string, len(v.Themes))
		for i, theme := range v.Themes {
			translated[i] = labels.ThemeToSpanish(theme)
		}
		lookup[ref] = labelPair{
			themes:  translated,
			emotion: labels.EmotionToSpanish(v.Emotion),
		}
	}

	out := make([]corpus.Verse, len(secondary))
	for i, v := range secondary {
		pair, ok := lookup[v.Ref()]
		if !ok {
			report.Unmatched++
			v.Emotion = ""
			v.Themes = nil
			out[i] = v
			continue
		}
		report.Matched++
		v.Emotion = pair.emotion
		v.Themes = append([]string(nil), pair.themes...)
		out[i] = v
	}
	return out, report
}
