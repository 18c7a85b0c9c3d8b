package csvimport

import (
	"strconv"
	"strings"
)

// ArraySeparator separates items inside a single array-valued column.
const ArraySeparator = "|"

// Fields maps header names to the raw values of one row.
type Fields map[string]string

// NewFields aligns values with header names. Columns missing from the end of
// a short row map to the empty string; values beyond the header are dropped.
// A name repeated in the header keeps its first column.
func NewFields(header, values []string) Fields {
	f := make(Fields, len(header))
	for i, name := range header {
		if _, seen := f[name]; seen {
			continue
		}
		if i < len(values) {
			f[name] = values[i]
		} else {
			f[name] = ""
		}
	}
	return f
}

// String returns the trimmed value for name.
func (f Fields) String(name string) string {
	return strings.TrimSpace(f[name])
}

// Has reports whether name is present with a non-blank value.
func (f Fields) Has(name string) bool {
	return f.String(name) != ""
}

// Array splits the value for name on ArraySeparator.
func (f Fields) Array(name string) []string {
	return SplitArray(f[name])
}

// Bool coerces the value for name, using def when it is blank.
func (f Fields) Bool(name string, def bool) bool {
	if !f.Has(name) {
		return def
	}
	return ParseBool(f[name])
}

// Int parses the value for name, using def when it is blank or not an integer.
func (f Fields) Int(name string, def int) int {
	n, ok := parseInt(f[name])
	if !ok {
		return def
	}
	return n
}

// SplitArray splits s on ArraySeparator. Pieces are trimmed and empty pieces
// dropped; order and repeats are kept. The result is never nil.
func SplitArray(s string) []string {
	out := []string{}
	if strings.TrimSpace(s) == "" {
		return out
	}
	for _, piece := range strings.Split(s, ArraySeparator) {
		if piece = strings.TrimSpace(piece); piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// JoinArray is the inverse of SplitArray.
func JoinArray(items []string) string {
	return strings.Join(items, ArraySeparator)
}

// ParseBool reports whether s is one of true, 1 or yes, ignoring case.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// FormatBool renders b as the lowercase word true or false.
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
