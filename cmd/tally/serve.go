package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tallyfolk/tally/internal/categories"
	"github.com/tallyfolk/tally/internal/config"
	"github.com/tallyfolk/tally/internal/server"
	"github.com/tallyfolk/tally/internal/tracker"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the expense tools over HTTP",
		Long: `Start the HTTP server exposing the six expense tools, the
categories resource, and the health and metrics endpoints.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8000", "Listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	cfg := config.Load()
	srv := server.New(server.Config{
		Addr:    cfg.Server.Addr,
		Origins: cfg.Server.Origins,
	}, tracker.New(store), categories.NewProvider(cfg.Categories.Path), store)

	return srv.Run(ctx)
}
