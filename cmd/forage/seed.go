package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/forage/internal/cli"
	"github.com/Veraticus/forage/internal/config"
	"github.com/Veraticus/forage/internal/seed"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the starter plants and recipes",
		Long: `Insert the bundled starter plants and recipes. Only empty collections
are seeded; a collection that already holds records is left alone.`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := initStorage(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	result, err := seed.Apply(cmd.Context(), store, slog.Default())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result == (seed.Result{}) {
		_, _ = fmt.Fprintln(out, cli.FormatInfo("Nothing seeded: both collections already hold records"))
		return nil
	}
	_, _ = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Seeded %d plants and %d recipes %s", result.Plants, result.Recipes, cli.BasketIcon)))
	return nil
}
