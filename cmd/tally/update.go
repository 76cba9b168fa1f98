package main

import (
	"github.com/spf13/cobra"

	"github.com/tallyfolk/tally/internal/tracker"
)

func updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update expenses matching filters",
		Long: `Rewrite the selected fields of every record matching the filters.
At least one --new-* value and at least one filter are required.
Pass --dry-run to preview the matching rows without changing them.`,
		RunE: runUpdate,
	}

	// Filters
	cmd.Flags().Int64("id", 0, "Match a single expense id")
	cmd.Flags().String("filter-date", "", "Match an exact date (YYYY-MM-DD)")
	cmd.Flags().String("start-date", "", "Range start; only active together with --end-date")
	cmd.Flags().String("end-date", "", "Range end; only active together with --start-date")
	cmd.Flags().String("filter-category", "", "Match a category")
	cmd.Flags().String("filter-subcategory", "", "Match a subcategory")

	// New values
	cmd.Flags().String("new-date", "", "Replacement date (YYYY-MM-DD)")
	cmd.Flags().Float64("new-amount", 0, "Replacement amount")
	cmd.Flags().String("new-category", "", "Replacement category")
	cmd.Flags().String("new-subcategory", "", "Replacement subcategory")
	cmd.Flags().String("new-note", "", "Replacement note")

	cmd.Flags().Bool("dry-run", false, "Preview matching rows without changing them")

	return cmd
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return printResult(tracker.New(store).Update(ctx, tracker.UpdateParams{
		ID:                int64FlagPtr(cmd, "id"),
		FilterDate:        stringFlagPtr(cmd, "filter-date"),
		StartDate:         stringFlagPtr(cmd, "start-date"),
		EndDate:           stringFlagPtr(cmd, "end-date"),
		FilterCategory:    stringFlagPtr(cmd, "filter-category"),
		FilterSubcategory: stringFlagPtr(cmd, "filter-subcategory"),
		NewDate:           stringFlagPtr(cmd, "new-date"),
		NewAmount:         float64FlagPtr(cmd, "new-amount"),
		NewCategory:       stringFlagPtr(cmd, "new-category"),
		NewSubcategory:    stringFlagPtr(cmd, "new-subcategory"),
		NewNote:           stringFlagPtr(cmd, "new-note"),
		DryRun:            dryRun,
	}))
}
