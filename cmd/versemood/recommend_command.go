package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"versemood/internal/corpus"
	"versemood/internal/labels"
	"versemood/internal/recommend"
	"versemood/internal/store"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var langFlag string
	var anyFlag bool
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "recommend <emotion> <theme>",
		Short: "Recommend verses matching an emotion and theme",
		Long: `Recommend draws a random selection of verses whose labels match the given
emotion and theme. The default draw takes at most two verses from each of the
Gospels, the rest of the New Testament, and the Old Testament; --any samples
from the whole corpus instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := labels.ParseLanguage(langFlag)
			if err != nil {
				return err
			}
			emotion, theme := args[0], args[1]

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger("cli-recommend")
			if err != nil {
				return err
			}

			s, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			verses, err := s.LoadCorpus(cmd.Context(), lang)
			if err != nil {
				return err
			}

			engine := recommend.NewEngine(logger)
			var picks []corpus.Verse
			if anyFlag {
				picks = engine.RecommendAny(verses, emotion, theme, lang, limitFlag)
			} else {
				picks = engine.Recommend(verses, emotion, theme, lang)
			}

			out := cmd.OutOrStdout()
			if len(picks) == 0 {
				fmt.Fprintf(out, "No verses match emotion %q and theme %q in the %s corpus.\n",
					emotion, theme, lang)
				return nil
			}

			rows := make([][]string, 0, len(picks))
			for _, v := range picks {
				book := v.Book
				if lang == labels.LanguageSpanish {
					book = labels.BookDisplayNameES(v.Book)
				}
				rows = append(rows, []string{
					fmt.Sprintf("%s %d:%d", book, v.Chapter, v.VerseNum),
					v.Emotion,
					v.ThemeString(),
					truncate(v.Text, 80),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Verse", "Emotion", "Themes", "Text"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&langFlag, "lang", "l", "en", "Corpus edition to draw from (en or es)")
	cmd.Flags().BoolVar(&anyFlag, "any", false, "Sample from the whole corpus without sectioning")
	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "Maximum results for --any (default 5)")
	return cmd
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
