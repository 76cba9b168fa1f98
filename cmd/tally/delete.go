package main

import (
	"github.com/spf13/cobra"

	"github.com/tallyfolk/tally/internal/tracker"
)

func deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete expenses matching filters",
		Long: `Delete every record matching the given filters. A call with no
filters at all is declined. Pass --dry-run to preview the matching
rows without deleting them.`,
		RunE: runDelete,
	}

	cmd.Flags().Int64("id", 0, "Match a single expense id")
	cmd.Flags().String("date", "", "Match an exact date (YYYY-MM-DD)")
	cmd.Flags().String("start-date", "", "Range start; only active together with --end-date")
	cmd.Flags().String("end-date", "", "Range end; only active together with --start-date")
	cmd.Flags().String("category", "", "Match a category")
	cmd.Flags().String("subcategory", "", "Match a subcategory")
	cmd.Flags().Bool("dry-run", false, "Preview matching rows without deleting")

	return cmd
}

func runDelete(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return printResult(tracker.New(store).Delete(ctx, tracker.DeleteParams{
		ID:          int64FlagPtr(cmd, "id"),
		Date:        stringFlagPtr(cmd, "date"),
		StartDate:   stringFlagPtr(cmd, "start-date"),
		EndDate:     stringFlagPtr(cmd, "end-date"),
		Category:    stringFlagPtr(cmd, "category"),
		Subcategory: stringFlagPtr(cmd, "subcategory"),
		DryRun:      dryRun,
	}))
}
