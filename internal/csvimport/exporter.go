package csvimport

import (
	"slices"
	"strings"
)

// Export renders records as a CSV document: the header line of s.Columns
// followed by one line per record in input order, each ending in a newline.
// Text and array columns are quoted; boolean and integer columns are bare.
func (s *Schema[T]) Export(records []T) string {
	var b strings.Builder
	b.WriteString(strings.Join(s.Columns, ","))
	b.WriteByte('\n')

	for _, r := range records {
		for i, v := range s.Row(r) {
			if i > 0 {
				b.WriteByte(',')
			}
			if i < len(s.Columns) && s.isBare(s.Columns[i]) {
				b.WriteString(v)
			} else {
				b.WriteString(Quote(v))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Values renders each record as one plain value per column.
func (s *Schema[T]) Values(records []T) [][]string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = s.Row(r)
	}
	return rows
}

func (s *Schema[T]) isBare(column string) bool {
	return slices.ContainsFunc(s.Bools, func(b BoolField) bool { return b.Name == column }) ||
		slices.ContainsFunc(s.Ints, func(n IntField) bool { return n.Name == column })
}
