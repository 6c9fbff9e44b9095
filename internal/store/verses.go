package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"versemood/internal/corpus"
	"versemood/internal/labels"
	"versemood/internal/textutil"
)

// ImportResult summarizes an import transaction.
type ImportResult struct {
	Inserted int
	Replaced int
}

// ImportVerses upserts labeled verses. Labels arriving in the secondary
// vocabulary are canonicalized to the primary one, and book names are stored
// in normalized identifier form. A verse that already exists for its
// (language, book, chapter, verse) key has its row replaced.
func (s *Store) ImportVerses(ctx context.Context, verses []corpus.Verse) (ImportResult, error) {
	var result ImportResult
	if len(verses) == 0 {
		return result, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var before int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM verses").Scan(&before); err != nil {
		return result, fmt.Errorf("count verses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO verses (
            language, book, chapter, verse, text, subtitle,
            emotion, themes, verse_id, source_file, imported_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (language, book, chapter, verse) DO UPDATE SET
            text = excluded.text, subtitle = excluded.subtitle,
            emotion = excluded.emotion, themes = excluded.themes,
            verse_id = excluded.verse_id, source_file = excluded.source_file,
            imported_at = excluded.imported_at`)
	if err != nil {
		return result, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	for _, v := range verses {
		if _, err := stmt.ExecContext(ctx,
			string(v.Language),
			textutil.NormalizeBookID(v.Book),
			v.Chapter,
			v.VerseNum,
			v.Text,
			nullableString(v.Subtitle),
			nullableString(canonicalEmotion(v.Emotion)),
			nullableString(labels.JoinThemes(canonicalThemes(v.Themes))),
			nullableString(v.VerseID),
			nullableString(v.SourceFile),
			timestamp,
		); err != nil {
			return result, fmt.Errorf("import verse %s: %w", v.Reference(), err)
		}
	}

	var after int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM verses").Scan(&after); err != nil {
		return result, fmt.Errorf("count verses: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("commit import: %w", err)
	}

	result.Inserted = after - before
	result.Replaced = len(verses) - result.Inserted
	return result, nil
}

// LoadCorpus returns every verse stored for a language edition in canonical
// book/chapter/verse order.
func (s *Store) LoadCorpus(ctx context.Context, lang labels.Language) ([]corpus.Verse, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+verseColumns+` FROM verses WHERE language = ? ORDER BY book, chapter, verse`,
		string(lang),
	)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	defer rows.Close()

	var verses []corpus.Verse
	for rows.Next() {
		v, err := scanVerse(rows)
		if err != nil {
			return nil, err
		}
		verses = append(verses, v)
	}
	return verses, rows.Err()
}

// Counts returns the number of stored verses per language edition.
func (s *Store) Counts(ctx context.Context) (map[labels.Language]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT language, COUNT(1) FROM verses GROUP BY language`)
	if err != nil {
		return nil, fmt.Errorf("count by language: %w", err)
	}
	defer rows.Close()

	counts := make(map[labels.Language]int)
	for rows.Next() {
		var lang string
		var count int
		if err := rows.Scan(&lang, &count); err != nil {
			return nil, err
		}
		counts[labels.Language(lang)] = count
	}
	return counts, rows.Err()
}

// EmotionDistribution returns verse counts per emotion label for a language
// edition. Unlabeled verses appear under the empty label.
func (s *Store) EmotionDistribution(ctx context.Context, lang labels.Language) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT COALESCE(emotion, ''), COUNT(1) FROM verses WHERE language = ? GROUP BY emotion`,
		string(lang),
	)
	if err != nil {
		return nil, fmt.Errorf("emotion distribution: %w", err)
	}
	defer rows.Close()

	dist := make(map[string]int)
	for rows.Next() {
		var emotion string
		var count int
		if err := rows.Scan(&emotion, &count); err != nil {
			return nil, err
		}
		dist[emotion] = count
	}
	return dist, rows.Err()
}

// Clear removes all stored verses.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM verses`)
	if err != nil {
		return 0, fmt.Errorf("clear verses: %w", err)
	}
	return res.RowsAffected()
}

const verseColumns = "language, book, chapter, verse, text, subtitle, emotion, themes, verse_id, source_file"

func scanVerse(scanner interface{ Scan(dest ...any) error }) (corpus.Verse, error) {
	var (
		lang       string
		book       string
		chapter    int
		verseNum   int
		text       string
		subtitle   sql.NullString
		emotion    sql.NullString
		themes     sql.NullString
		verseID    sql.NullString
		sourceFile sql.NullString
	)
	if err := scanner.Scan(
		&lang, &book, &chapter, &verseNum, &text,
		&subtitle, &emotion, &themes, &verseID, &sourceFile,
	); err != nil {
		return corpus.Verse{}, fmt.Errorf("scan verse: %w", err)
	}
	return corpus.Verse{
		Book:       book,
		Chapter:    chapter,
		VerseNum:   verseNum,
		Text:       text,
		Subtitle:   subtitle.String,
		Emotion:    emotion.String,
		Themes:     labels.SplitThemes(themes.String),
		Language:   labels.Language(lang),
		VerseID:    verseID.String,
		SourceFile: sourceFile.String,
	}, nil
}

// canonicalEmotion keeps the "error" sentinel and unknown labels untouched;
// only secondary-vocabulary labels are rewritten.
func canonicalEmotion(label string) string {
	if label == "" || label == corpus.EmotionError {
		return label
	}
	return labels.CanonicalEmotion(label)
}

func canonicalThemes(themes []string) []string {
	if len(themes) == 0 {
		return nil
	}
	out := make([]string, len(themes))
	for i, theme := range themes {
		out[i] = labels.CanonicalTheme(theme)
	}
	return out
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
