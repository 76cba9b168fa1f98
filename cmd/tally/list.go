package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tallyfolk/tally/internal/tracker"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses in a date range",
		Long:  `List every record dated inside the inclusive range, ordered by id.`,
		RunE:  runList,
	}

	cmd.Flags().String("start-date", "", "Range start (YYYY-MM-DD) (required)")
	cmd.Flags().String("end-date", "", "Range end (YYYY-MM-DD) (required)")

	for _, name := range []string{"start-date", "end-date"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	startDate, _ := cmd.Flags().GetString("start-date")
	endDate, _ := cmd.Flags().GetString("end-date")

	return printResult(tracker.New(store).List(ctx, tracker.RangeParams{
		StartDate: startDate,
		EndDate:   endDate,
	}))
}
