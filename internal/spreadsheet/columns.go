// Package spreadsheet writes import templates and exports as XLSX workbooks.
package spreadsheet

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Veraticus/forage/internal/csvimport"
)

// Column describes one template column for the Instructions sheet.
type Column struct {
	Name     string
	Kind     string
	Notes    string
	Required bool
}

// Columns describes every column of s in header order.
func Columns[T any](s *csvimport.Schema[T]) []Column {
	cols := make([]Column, len(s.Columns))
	for i, name := range s.Columns {
		cols[i] = Column{
			Name:     name,
			Kind:     "text",
			Required: slices.Contains(s.Required, name),
		}
		col := &cols[i]

		if slices.Contains(s.Arrays, name) {
			col.Kind = "list"
			col.Notes = fmt.Sprintf("separate items with %q", csvimport.ArraySeparator)
		}
		for _, e := range s.Enums {
			if e.Name == name {
				col.Kind = "choice"
				col.Notes = "one of: " + strings.Join(e.Allowed, ", ")
			}
		}
		for _, b := range s.Bools {
			if b.Name == name {
				col.Kind = "true/false"
				col.Notes = fmt.Sprintf("blank means %s", csvimport.FormatBool(b.Default))
			}
		}
		for _, n := range s.Ints {
			if n.Name == name {
				col.Kind = "number"
				col.Notes = fmt.Sprintf("whole number, at least %d; blank means %d", n.Min, n.Default)
			}
		}
	}
	return cols
}
