// Package csvimport turns CSV documents into typed recipe and plant records,
// reconciles them against records that already exist, and writes them back
// out as CSV.
//
// The pipeline is generic over a declarative Schema: a document is split into
// lines, each line is tokenized, aligned with the header and validated, then a
// per-entity builder produces the record. Row failures are collected into the
// Result and never abort the document.
package csvimport

import "strings"

// Tokenize splits one line of CSV text into trimmed fields.
//
// Fields may be wrapped in double quotes, inside which commas are literal and
// a doubled quote ("") stands for one quote character. Quoted fields cannot
// span lines: the parser splits documents on newlines before tokenizing, so a
// newline inside quotes always ends the record.
func Tokenize(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' && !inQuotes:
			inQuotes = true
		case c == '"' && i+1 < len(line) && line[i+1] == '"':
			current.WriteByte('"')
			i++
		case c == '"':
			inQuotes = false
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}

	return append(fields, strings.TrimSpace(current.String()))
}

// FormatRow joins fields into one CSV line, quoting every field.
func FormatRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = Quote(f)
	}
	return strings.Join(quoted, ",")
}

// Quote wraps s in double quotes, doubling any quote inside it.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
