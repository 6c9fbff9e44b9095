package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"versemood/internal/corpus"
	"versemood/internal/labels"
	"versemood/internal/store"
)

func newCorpusCommand(ctx *commandContext) *cobra.Command {
	corpusCmd := &cobra.Command{
		Use:   "corpus",
		Short: "Label store utilities",
	}

	corpusCmd.AddCommand(newCorpusImportCommand(ctx))
	corpusCmd.AddCommand(newCorpusStatusCommand(ctx))
	corpusCmd.AddCommand(newCorpusClearCommand(ctx))

	return corpusCmd
}

func newCorpusImportCommand(ctx *commandContext) *cobra.Command {
	var langFlag string
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import labeled CSV files into the label store",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := labels.ParseLanguage(langFlag)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger("cli-corpus")
			if err != nil {
				return err
			}

			dir := dirFlag
			if dir == "" {
				dir = cfg.LabeledDir(lang)
			}
			files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
			if err != nil {
				return fmt.Errorf("list labeled files: %w", err)
			}
			sort.Strings(files)
			if len(files) == 0 {
				return fmt.Errorf("no CSV files found in %s", dir)
			}

			var verses []corpus.Verse
			for _, file := range files {
				fileVerses, err := corpus.ReadFile(file, lang)
				if err != nil {
					return fmt.Errorf("read %s: %w", filepath.Base(file), err)
				}
				verses = append(verses, fileVerses...)
			}

			s, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			result, err := s.ImportVerses(cmd.Context(), verses)
			if err != nil {
				return err
			}
			logger.Info("corpus import finished",
				"language", string(lang), "files", len(files),
				"inserted", result.Inserted, "replaced", result.Replaced)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d verse(s) from %d file(s): %d new, %d replaced\n",
				len(verses), len(files), result.Inserted, result.Replaced)
			return nil
		},
	}

	cmd.Flags().StringVarP(&langFlag, "lang", "l", "en", "Language edition to import (en or es)")
	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory of labeled CSVs (defaults to the configured labeled dir)")
	return cmd
}

func newCorpusStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stored verse counts and emotion distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			s, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			counts, err := s.Counts(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database: %s\n", s.Path())

			for _, lang := range []labels.Language{labels.LanguageEnglish, labels.LanguageSpanish} {
				total := counts[lang]
				fmt.Fprintf(out, "\n%s corpus: %d verse(s)\n", lang, total)
				if total == 0 {
					continue
				}
				dist, err := s.EmotionDistribution(cmd.Context(), lang)
				if err != nil {
					return err
				}
				emotions := make([]string, 0, len(dist))
				for emotion := range dist {
					emotions = append(emotions, emotion)
				}
				sort.Strings(emotions)
				rows := make([][]string, 0, len(emotions))
				for _, emotion := range emotions {
					label := emotion
					if label == "" {
						label = "(unlabeled)"
					}
					rows = append(rows, []string{label, strconv.Itoa(dist[emotion])})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Emotion", "Verses"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
			}
			return nil
		},
	}
}

func newCorpusClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored verses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			s, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			removed, err := s.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d verse(s)\n", removed)
			return nil
		},
	}
}
