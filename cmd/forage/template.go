package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/forage/internal/spreadsheet"
	"github.com/spf13/cobra"
)

func templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template <recipes|plants>",
		Short: "Write an empty import template with one example row",
		Long: `Write a template to fill in and import. The CSV template carries the
header row and one example record. The XLSX template also highlights the
required columns and explains every column on an Instructions sheet.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: entityKinds,
		RunE:      runTemplate,
	}

	cmd.Flags().StringP("format", "f", formatCSV, "output format (csv, xlsx)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout for csv)")

	return cmd
}

func runTemplate(cmd *cobra.Command, args []string) error {
	kind, err := parseEntityKind(args[0])
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	if err := validateFormat(format, output); err != nil {
		return err
	}

	// Templates never touch the database.
	return withOutput(cmd, output, func(w io.Writer) error {
		switch kind {
		case kindPlants:
			return writeTemplate(w, plantEntity(nil), format)
		default:
			return writeTemplate(w, recipeEntity(nil), format)
		}
	})
}

func writeTemplate[T any](w io.Writer, e entity[T], format string) error {
	if format == formatXLSX {
		return spreadsheet.WriteTemplate(w, e.name+"s", spreadsheet.Columns(e.schema), e.templateSample())
	}
	if _, err := io.WriteString(w, e.template); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}
