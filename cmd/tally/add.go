package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tallyfolk/tally/internal/tracker"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Long:  `Record one expense with the amount exactly as given.`,
		RunE:  runAdd,
	}
	entryFlags(cmd)
	return cmd
}

// entryFlags declares the record fields shared by add and credit.
func entryFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "Expense date (YYYY-MM-DD) (required)")
	cmd.Flags().Float64("amount", 0, "Amount to record (required)")
	cmd.Flags().String("category", "", "Category name (required)")
	cmd.Flags().String("subcategory", "", "Optional subcategory")
	cmd.Flags().String("note", "", "Optional note")

	for _, name := range []string{"date", "amount", "category"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}
}

func entryParams(cmd *cobra.Command) tracker.AddParams {
	date, _ := cmd.Flags().GetString("date")
	amount, _ := cmd.Flags().GetFloat64("amount")
	category, _ := cmd.Flags().GetString("category")
	subcategory, _ := cmd.Flags().GetString("subcategory")
	note, _ := cmd.Flags().GetString("note")

	return tracker.AddParams{
		Date:        date,
		Amount:      &amount,
		Category:    category,
		Subcategory: subcategory,
		Note:        note,
	}
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return printResult(tracker.New(store).Add(ctx, entryParams(cmd)))
}
