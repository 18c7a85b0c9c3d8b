package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/forage/internal/common"
	"github.com/Veraticus/forage/internal/config"
	"github.com/Veraticus/forage/internal/spreadsheet"
	"github.com/spf13/cobra"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <recipes|plants>",
		Short: "Export the stored recipes or plants",
		Long: `Write every stored record as a CSV document in template column order,
or as an XLSX workbook. The CSV output can be imported again.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: entityKinds,
		RunE:      runExport,
	}

	cmd.Flags().StringP("format", "f", formatCSV, "output format (csv, xlsx)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout for csv)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	kind, err := parseEntityKind(args[0])
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	if err := validateFormat(format, output); err != nil {
		return err
	}

	store, err := initStorage(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	return withOutput(cmd, output, func(w io.Writer) error {
		switch kind {
		case kindPlants:
			return exportRecords(cmd.Context(), w, plantEntity(store), format)
		default:
			return exportRecords(cmd.Context(), w, recipeEntity(store), format)
		}
	})
}

// exportRecords writes every stored record of e to w.
func exportRecords[T any](ctx context.Context, w io.Writer, e entity[T], format string) error {
	records, err := e.list(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %ss: %w", e.name, err)
	}

	switch format {
	case formatXLSX:
		err = spreadsheet.WriteRecords(w, e.name+"s", e.schema.Columns, e.schema.Values(records))
	default:
		_, err = io.WriteString(w, e.schema.Export(records))
	}
	if err != nil {
		return fmt.Errorf("failed to export %ss: %w", e.name, err)
	}

	slog.Debug("Exported records", "entity", e.name, "count", len(records), "format", format)
	return nil
}

func validateFormat(format, output string) error {
	switch format {
	case formatCSV:
		return nil
	case formatXLSX:
		if output == "" {
			return common.NewUserError("xlsx output needs --output", nil)
		}
		return nil
	default:
		return common.NewUserError(fmt.Sprintf("unknown format %q: expected csv or xlsx", format), nil)
	}
}

// withOutput calls fn with the named file, or with the command's stdout when
// path is empty.
func withOutput(cmd *cobra.Command, path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(cmd.OutOrStdout())
	}

	f, err := os.Create(filepath.Clean(path)) // #nosec G304 -- user-provided output path
	if err != nil {
		return common.NewUserError("cannot create "+path, err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	slog.Info("Wrote file", "path", path)
	return nil
}
