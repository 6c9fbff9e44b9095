package labeling

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

// Outcome classifies what happened to one input file, so callers can tell
// "intentionally skipped, already labeled" apart from "failed".
type Outcome string

const (
	OutcomeProcessed Outcome = "processed"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// FileOutcome records the result for one corpus file.
type FileOutcome struct {
	File    string
	Outcome Outcome
	Reason  string
	Verses  int
}

// Report accumulates per-file outcomes for one pipeline run.
type Report struct {
	RunID    string
	Outcomes []FileOutcome
}

// Counts tallies outcomes by kind.
func (r Report) Counts() (processed, skipped, failed int) {
	for _, o := range r.Outcomes {
		switch o.Outcome {
		case OutcomeProcessed:
			processed++
		case OutcomeSkipped:
			skipped++
		case OutcomeFailed:
			failed++
		}
	}
	return processed, skipped, failed
}

// Pipeline labels every cleaned corpus file in a directory with emotion and
// theme values, writing one labeled file per input. Already-labeled outputs
// are skipped so interrupted runs resume where they left off.
type Pipeline struct {
	labeler   *Labeler
	inputDir  string
	outputDir string
	language  labels.Language
	logger    *slog.Logger
}

// NewPipeline builds a pipeline rooted at the given directories.
func NewPipeline(labeler *Labeler, inputDir, outputDir string, lang labels.Language, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		labeler:   labeler,
		inputDir:  inputDir,
		outputDir: outputDir,
		language:  lang,
		logger:    logger.With("component", "labeling"),
	}
}

// OutputName maps a cleaned input file name to its labeled output name.
func OutputName(inputName string) string {
	base := strings.TrimSuffix(inputName, filepath.Ext(inputName))
	base = strings.TrimSuffix(base, "_cleaned")
	return base + "_emotion_theme.csv"
}

// Run labels every CSV file in the input directory. Per-file failures are
// recorded and do not abort the run; the returned error covers only setup
// problems and context cancellation.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	files, err := filepath.Glob(filepath.Join(p.inputDir, "*.csv"))
	if err != nil {
		return Report{}, fmt.Errorf("list input files: %w", err)
	}
	sort.Strings(files)
	return p.run(ctx, files)
}

// RunFile labels a single input file, for dry runs.
func (p *Pipeline) RunFile(ctx context.Context, path string) (Report, error) {
	return p.run(ctx, []string{path})
}

func (p *Pipeline) run(ctx context.Context, files []string) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	logger := p.logger.With("run_id", report.RunID)

	if len(files) == 0 {
		logger.Warn("no input files found", "dir", p.inputDir)
		return report, nil
	}
	logger.Info("labeling run started", "files", len(files), "language", string(p.language))

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		name := filepath.Base(file)
		logger.Info("processing file", "file", name, "index", i+1, "total", len(files))

		outPath := filepath.Join(p.outputDir, OutputName(name))
		if _, err := os.Stat(outPath); err == nil {
			logger.Info("skipped, already labeled", "file", name)
			report.Outcomes = append(report.Outcomes, FileOutcome{File: name, Outcome: OutcomeSkipped, Reason: "already labeled"})
			continue
		}

		outcome := p.processFile(ctx, file, outPath, logger)
		report.Outcomes = append(report.Outcomes, outcome)
	}

	processed, skipped, failed := report.Counts()
	logger.Info("labeling run finished", "processed", processed, "skipped", skipped, "failed", failed)
	return report, nil
}

func (p *Pipeline) processFile(ctx context.Context, path, outPath string, logger *slog.Logger) FileOutcome {
	name := filepath.Base(path)

	verses, err := corpus.ReadFile(path, p.language)
	if err != nil {
		logger.Error("file failed", "file", name, "error", err)
		return FileOutcome{File: name, Outcome: OutcomeFailed, Reason: err.Error()}
	}
	texts := make([]string, len(verses))
	for i, v := range verses {
		texts[i] = v.Text
	}

	emotions, err := p.labeler.LabelEmotions(ctx, texts)
	if err != nil {
		logger.Error("emotion stage failed", "file", name, "error", err)
		return FileOutcome{File: name, Outcome: OutcomeFailed, Reason: err.Error()}
	}
	themes, err := p.labeler.LabelThemes(ctx, texts)
	if err != nil {
		logger.Error("theme stage failed", "file", name, "error", err)
		return FileOutcome{File: name, Outcome: OutcomeFailed, Reason: err.Error()}
	}

	for i := range verses {
		verses[i].Emotion = emotions[i]
		verses[i].Themes = labels.SplitThemes(themes[i])
	}

	if err := corpus.WriteFile(outPath, verses); err != nil {
		logger.Error("write failed", "file", name, "error", err)
		return FileOutcome{File: name, Outcome: OutcomeFailed, Reason: err.Error()}
	}

	logger.Info("file labeled",
		"file", name,
		"verses", len(verses),
		"emotions", distribution(emotions),
		"themes", themeDistribution(themes),
	)
	return FileOutcome{File: name, Outcome: OutcomeProcessed, Verses: len(verses)}
}

// distribution renders label counts as "label:count" pairs, most frequent first.
func distribution(values []string) string {
	counts := make(map[string]int)
	for _, v := range values {
		if v == "" {
			v = "(none)"
		}
		counts[v]++
	}
	return renderCounts(counts)
}

func themeDistribution(serialized []string) string {
	counts := make(map[string]int)
	for _, value := range serialized {
		parts := labels.SplitThemes(value)
		if len(parts) == 0 {
			counts["(none)"]++
			continue
		}
		for _, part := range parts {
			counts[part]++
		}
	}
	return renderCounts(counts)
}

func renderCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}
