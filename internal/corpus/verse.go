package corpus

import (
	"fmt"

	"versemood/internal/labels"
	"versemood/internal/textutil"
)

// EmotionError is the sentinel stored when the classifier failed for a verse.
// It is never silently coerced to a real label.
const EmotionError = "error"

// Verse is the per-verse record every stage reads and writes. Emotion is a
// single label, "" (unclassified), or the EmotionError sentinel. Themes is the
// parsed multi-label value in descending classifier confidence; an empty slice
// is a valid labeled state.
type Verse struct {
	Book       string
	Chapter    int
	VerseNum   int
	Text       string
	Subtitle   string
	Emotion    string
	Themes     []string
	Language   labels.Language
	VerseID    string
	SourceFile string
}

// Key addresses a verse within one language edition. Book is stored in
// normalized identifier form so lexical variants collide as intended.
type Key struct {
	Book    string
	Chapter int
	Verse   int
}

// Key returns the verse's address within its edition.
func (v Verse) Key() Key {
	return Key{
		Book:    textutil.NormalizeBookID(v.Book),
		Chapter: v.Chapter,
		Verse:   v.VerseNum,
	}
}

// Ref addresses a verse within a single book, the unit the cross-language
// transfer aligns on.
type Ref struct {
	Chapter int
	Verse   int
}

// Ref returns the verse's position within its book.
func (v Verse) Ref() Ref {
	return Ref{Chapter: v.Chapter, Verse: v.VerseNum}
}

// Reference renders the human-facing citation, e.g. "john 3:16".
func (v Verse) Reference() string {
	return fmt.Sprintf("%s %d:%d", v.Book, v.Chapter, v.VerseNum)
}

// ThemeString serializes the theme labels for the file format.
func (v Verse) ThemeString() string {
	return labels.JoinThemes(v.Themes)
}
