package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tallyfolk/tally/internal/config"
	"github.com/tallyfolk/tally/internal/storage"
	"github.com/tallyfolk/tally/internal/tracker"
)

// openStore opens the configured database and brings the schema up to
// date.
func openStore(ctx context.Context) (*storage.SQLiteStore, error) {
	cfg := config.Load()

	store, err := storage.New(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// printResult writes one envelope to stdout as indented JSON. Declined
// operations are still envelopes, not command failures.
func printResult(res tracker.Result) error {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// stringFlagPtr returns the flag value only when the flag was set on
// the command line. An explicitly empty string stays meaningful.
func stringFlagPtr(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func int64FlagPtr(cmd *cobra.Command, name string) *int64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt64(name)
	return &v
}

func float64FlagPtr(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}
