package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"versemood/internal/labels"
	"versemood/internal/transfer"
)

func newTransferCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer labels from the English corpus to the Spanish one",
		Long: `Transfer aligns each labeled English book with its cleaned Spanish
counterpart by chapter and verse number and writes labeled Spanish files.
Books present on only one side are skipped and reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger("cli-transfer")
			if err != nil {
				return err
			}

			runner := transfer.NewRunner(
				cfg.LabeledDir(labels.LanguageEnglish),
				cfg.CleanedDir(labels.LanguageSpanish),
				cfg.LabeledDir(labels.LanguageSpanish),
				logger,
			)
			report, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(report.Books))
			for _, b := range report.Books {
				rows = append(rows, []string{
					labels.BookDisplayNameES(b.Book),
					strconv.Itoa(b.Rows),
					strconv.Itoa(b.Matched),
					strconv.Itoa(b.Unmatched),
					strconv.Itoa(b.DuplicateKeys),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Book", "Rows", "Matched", "Unmatched", "Duplicates"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
			))

			matched, unmatched := report.Totals()
			fmt.Fprintf(out, "Run %s: %d book(s) transferred, %d verse(s) matched, %d unmatched\n",
				report.RunID, len(report.Books), matched, unmatched)
			if len(report.SkippedBooks) > 0 {
				fmt.Fprintf(out, "Skipped (no counterpart): %s\n", strings.Join(report.SkippedBooks, ", "))
			}
			if len(report.FailedBooks) > 0 {
				return fmt.Errorf("%d book(s) failed to transfer: %s",
					len(report.FailedBooks), strings.Join(report.FailedBooks, ", "))
			}
			return nil
		},
	}
	return cmd
}
