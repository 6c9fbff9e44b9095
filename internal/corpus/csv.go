package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"versemood/internal/labels"
)

// ErrMissingColumns indicates a corpus file lacks required header columns.
var ErrMissingColumns = errors.New("missing required columns")

// Header is the canonical column set of the tabular verse format. The last two
// columns are bookkeeping and unused by matching logic.
var Header = []string{"book", "chapter", "verse", "text", "subtitle", "emotion", "theme", "verse_id", "source_file"}

var requiredColumns = []string{"book", "chapter", "verse", "text"}

// ReadFile parses one corpus CSV into verse records for the given language
// edition. A missing required column or an unparsable chapter/verse number
// fails the whole file; callers skip the file rather than writing partial data.
func ReadFile(path string, lang labels.Language) ([]Verse, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse corpus file %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("corpus file %s: empty file", filepath.Base(path))
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("corpus file %s: %w: %s", filepath.Base(path), ErrMissingColumns, name)
		}
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	verses := make([]Verse, 0, len(rows)-1)
	for n, row := range rows[1:] {
		chapter, err := strconv.Atoi(field(row, "chapter"))
		if err != nil {
			return nil, fmt.Errorf("corpus file %s row %d: bad chapter: %w", filepath.Base(path), n+2, err)
		}
		verseNum, err := strconv.Atoi(field(row, "verse"))
		if err != nil {
			return nil, fmt.Errorf("corpus file %s row %d: bad verse: %w", filepath.Base(path), n+2, err)
		}
		verses = append(verses, Verse{
			Book:       field(row, "book"),
			Chapter:    chapter,
			VerseNum:   verseNum,
			Text:       field(row, "text"),
			Subtitle:   field(row, "subtitle"),
			Emotion:    field(row, "emotion"),
			Themes:     labels.SplitThemes(field(row, "theme")),
			Language:   lang,
			VerseID:    field(row, "verse_id"),
			SourceFile: field(row, "source_file"),
		})
	}
	return verses, nil
}

// WriteFile serializes verse records with the canonical header. Theme labels
// round-trip in their stored (descending-confidence) order.
func WriteFile(path string, verses []Verse) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create corpus file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, v := range verses {
		row := []string{
			v.Book,
			strconv.Itoa(v.Chapter),
			strconv.Itoa(v.VerseNum),
			v.Text,
			v.Subtitle,
			v.Emotion,
			v.ThemeString(),
			v.VerseID,
			v.SourceFile,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush corpus file: %w", err)
	}
	return file.Close()
}
