package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tallyfolk/tally/internal/categories"
	"github.com/tallyfolk/tally/internal/config"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the category list",
		Long: `Print the configured category list, or the built-in defaults when
no categories file exists.`,
		RunE: runCategories,
	}
}

func runCategories(_ *cobra.Command, _ []string) error {
	cfg := config.Load()

	list, err := categories.NewProvider(cfg.Categories.Path).Load()
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(map[string][]string{"categories": list}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))

	return nil
}
