package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"versemood/internal/corpus"
	"versemood/internal/labels"
)

// Report accumulates per-book results for one transfer run.
type Report struct {
	RunID        string
	Books        []BookReport
	SkippedBooks []string
	FailedBooks  []string
}

// Totals sums matched and unmatched verse counts across all transferred books.
func (r Report) Totals() (matched, unmatched int) {
	for _, b := range r.Books {
		matched += b.Matched
		unmatched += b.Unmatched
	}
	return matched, unmatched
}

// Runner pairs labeled primary-language files with cleaned secondary-language
// files and writes labeled secondary files. Books present on only one side are
// skipped and reported, never fatal for the run.
type Runner struct {
	primaryDir   string // labeled primary corpus (*_emotion_theme.csv)
	secondaryDir string // cleaned secondary corpus (*_cleaned.csv)
	outputDir    string
	logger       *slog.Logger
}

// NewRunner builds a transfer runner over the given directories.
func NewRunner(primaryDir, secondaryDir, outputDir string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		primaryDir:   primaryDir,
		secondaryDir: secondaryDir,
		outputDir:    outputDir,
		logger:       logger.With("component", "transfer"),
	}
}

const (
	labeledSuffix = "_emotion_theme.csv"
	cleanedSuffix = "_cleaned.csv"
)

// BookFromFileName extracts the book identifier from a corpus file name.
func BookFromFileName(name string) string {
	name = strings.TrimSuffix(name, labeledSuffix)
	name = strings.TrimSuffix(name, cleanedSuffix)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Run transfers labels for every primary labeled file with a secondary
// counterpart. Per-book failures are isolated; the returned error covers only
// setup problems and context cancellation.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	logger := r.logger.With("run_id", report.RunID)

	files, err := filepath.Glob(filepath.Join(r.primaryDir, "*"+labeledSuffix))
	if err != nil {
		return report, fmt.Errorf("list labeled files: %w", err)
	}
	sort.Strings(files)
	if len(files) == 0 {
		logger.Warn("no labeled primary files found", "dir", r.primaryDir)
		return report, nil
	}
	logger.Info("transfer run started", "books", len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		book := BookFromFileName(filepath.Base(file))

		secondaryBook, ok := labels.BookToSpanish(book)
		if !ok {
			logger.Warn("no book correspondence, skipping", "book", book)
			report.SkippedBooks = append(report.SkippedBooks, book)
			continue
		}
		secondaryPath := filepath.Join(r.secondaryDir, secondaryBook+cleanedSuffix)
		if _, err := os.Stat(secondaryPath); err != nil {
			logger.Warn("no secondary file for book, skipping", "book", book, "expected", filepath.Base(secondaryPath))
			report.SkippedBooks = append(report.SkippedBooks, book)
			continue
		}

		bookReport, err := r.transferBookFiles(file, secondaryPath, secondaryBook, logger)
		if err != nil {
			logger.Error("book transfer failed", "book", book, "error", err)
			report.FailedBooks = append(report.FailedBooks, book)
			continue
		}
		report.Books = append(report.Books, bookReport)
	}

	matched, unmatched := report.Totals()
	logger.Info("transfer run finished",
		"books", len(report.Books),
		"skipped", len(report.SkippedBooks),
		"failed", len(report.FailedBooks),
		"matched", matched,
		"unmatched", unmatched,
	)
	return report, nil
}

func (r *Runner) transferBookFiles(primaryPath, secondaryPath, secondaryBook string, logger *slog.Logger) (BookReport, error) {
	primary, err := corpus.ReadFile(primaryPath, labels.LanguageEnglish)
	if err != nil {
		return BookReport{}, err
	}
	secondary, err := corpus.ReadFile(secondaryPath, labels.LanguageSpanish)
	if err != nil {
		return BookReport{}, err
	}

	labeled, bookReport := TransferBook(primary, secondary, logger)
	if len(labeled) != len(secondary) {
		return BookReport{}, fmt.Errorf("transfer produced %d rows for %d inputs", len(labeled), len(secondary))
	}

	outPath := filepath.Join(r.outputDir, secondaryBook+labeledSuffix)
	if err := corpus.WriteFile(outPath, labeled); err != nil {
		return BookReport{}, err
	}

	logger.Info("book transferred",
		"book", bookReport.Book,
		"rows", bookReport.Rows,
		"matched", bookReport.Matched,
		"unmatched", bookReport.Unmatched,
		"duplicate_keys", bookReport.DuplicateKeys,
	)
	return bookReport, nil
}
