package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tallyfolk/tally/internal/tracker"
)

func summarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize expenses by category",
		Long: `Total the amounts per category over the inclusive date range,
optionally restricted to a single category.`,
		RunE: runSummarize,
	}

	cmd.Flags().String("start-date", "", "Range start (YYYY-MM-DD) (required)")
	cmd.Flags().String("end-date", "", "Range end (YYYY-MM-DD) (required)")
	cmd.Flags().String("category", "", "Restrict the summary to one category")

	for _, name := range []string{"start-date", "end-date"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}

	return cmd
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	startDate, _ := cmd.Flags().GetString("start-date")
	endDate, _ := cmd.Flags().GetString("end-date")
	category, _ := cmd.Flags().GetString("category")

	return printResult(tracker.New(store).Summarize(ctx, tracker.SummarizeParams{
		StartDate: startDate,
		EndDate:   endDate,
		Category:  category,
	}))
}
