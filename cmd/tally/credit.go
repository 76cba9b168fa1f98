package main

import (
	"github.com/spf13/cobra"

	"github.com/tallyfolk/tally/internal/tracker"
)

func creditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Record a credit",
		Long: `Record a refund or income offset. The stored amount is always
negative regardless of the sign given.`,
		RunE: runCredit,
	}
	entryFlags(cmd)
	return cmd
}

func runCredit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return printResult(tracker.New(store).Credit(ctx, entryParams(cmd)))
}
