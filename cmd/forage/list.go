package main

import (
	"context"
	"fmt"
	"io"

	"github.com/Veraticus/forage/internal/cli"
	"github.com/Veraticus/forage/internal/config"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list <recipes|plants>",
		Short:     "List the stored recipes or plants",
		Args:      cobra.ExactArgs(1),
		ValidArgs: entityKinds,
		RunE:      runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	kind, err := parseEntityKind(args[0])
	if err != nil {
		return err
	}

	store, err := initStorage(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	switch kind {
	case kindPlants:
		return listRecords(cmd.Context(), cmd.OutOrStdout(), plantEntity(store))
	default:
		return listRecords(cmd.Context(), cmd.OutOrStdout(), recipeEntity(store))
	}
}

func listRecords[T any](ctx context.Context, w io.Writer, e entity[T]) error {
	records, err := e.list(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %ss: %w", e.name, err)
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, cli.FormatInfo(fmt.Sprintf("No %ss stored yet. Try 'forage seed' or 'forage import'.", e.name)))
		return nil
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = e.summary(r)
	}

	_, _ = fmt.Fprintln(w, cli.FormatTitle(fmt.Sprintf("%d %ss", len(records), e.name)))
	_, _ = fmt.Fprintln(w, cli.RenderTable(e.summaryHeaders, rows))
	return nil
}
