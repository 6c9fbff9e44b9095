package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"versemood/internal/classifier"
	"versemood/internal/labeling"
	"versemood/internal/labels"
)

func newLabelCommand(ctx *commandContext) *cobra.Command {
	var langFlag string
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "label",
		Short: "Label cleaned corpus files with emotions and themes",
		Long: `Label runs every cleaned CSV in the corpus through the emotion and theme
classifiers and writes one labeled file per input. Outputs that already exist
are skipped, so an interrupted run resumes where it left off.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := labels.ParseLanguage(langFlag)
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger("cli-label")
			if err != nil {
				return err
			}

			client := classifier.NewClient(classifier.Config{
				APIKey:         cfg.Classifier.APIKey,
				BaseURL:        cfg.Classifier.BaseURL,
				EmotionModel:   cfg.Classifier.EmotionModel,
				ThemeModel:     cfg.Classifier.ThemeModel,
				TimeoutSeconds: cfg.Classifier.TimeoutSeconds,
			})
			labeler := labeling.NewLabeler(client, client, cfg.Labeling.ThemeLabels,
				cfg.Labeling.Threshold, cfg.Labeling.BatchSize, logger)
			pipeline := labeling.NewPipeline(labeler, cfg.CleanedDir(lang), cfg.LabeledDir(lang), lang, logger)

			var report labeling.Report
			if file := strings.TrimSpace(fileFlag); file != "" {
				path := file
				if !filepath.IsAbs(path) {
					path = filepath.Join(cfg.CleanedDir(lang), path)
				}
				report, err = pipeline.RunFile(cmd.Context(), path)
			} else {
				report, err = pipeline.Run(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(report.Outcomes))
			for _, o := range report.Outcomes {
				rows = append(rows, []string{
					filepath.Base(o.File),
					string(o.Outcome),
					strconv.Itoa(o.Verses),
					o.Reason,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Outcome", "Verses", "Reason"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))

			processed, skipped, failed := report.Counts()
			fmt.Fprintf(out, "Run %s: %d processed, %d skipped, %d failed\n",
				report.RunID, processed, skipped, failed)
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed to label", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&langFlag, "lang", "l", "en", "Language edition to label (en or es)")
	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Label a single file instead of the whole directory")
	return cmd
}
