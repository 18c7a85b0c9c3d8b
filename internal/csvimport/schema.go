package csvimport

import (
	"fmt"
	"slices"
	"strings"
)

// EnumField restricts a column to a fixed set of values.
type EnumField struct {
	Name    string
	Allowed []string
}

// BoolField is a boolean column with the value used when it is blank.
type BoolField struct {
	Name    string
	Default bool
}

// IntField is an integer column with a lower bound and the value used when
// it is blank or not an integer.
type IntField struct {
	Name    string
	Min     int
	Default int
}

// Schema describes how one entity kind is read from and written to CSV.
//
// The declarative parts (Required, Enums, Bools, Ints, Arrays) drive
// validation and coercion. The function parts build, compare and rename
// records of type T, and must all be set.
type Schema[T any] struct {
	// Entity names the kind of record, used in log output.
	Entity string
	// Columns is the canonical header order for templates and exports.
	Columns  []string
	Required []string
	Enums    []EnumField
	Arrays   []string
	Bools    []BoolField
	Ints     []IntField

	// Build makes a record from validated fields. id is freshly generated.
	Build func(f Fields, id string) T
	// Check enforces invariants on a built record.
	Check func(record T) error
	// Row renders a record as one value per entry in Columns.
	Row func(record T) []string
	// Same reports whether candidate duplicates existing.
	Same func(candidate, existing T) bool
	// ID returns the record identifier.
	ID func(record T) string
	// WithID returns a copy of record carrying id.
	WithID func(record T, id string) T
	// Renamed returns a copy of record with its display name marked as imported.
	Renamed func(record T) T
}

// MissingColumns returns the required names absent from header, in schema order.
func (s *Schema[T]) MissingColumns(header []string) []string {
	var missing []string
	for _, name := range s.Required {
		if !slices.Contains(header, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// UnknownColumns returns header names the schema does not read.
func (s *Schema[T]) UnknownColumns(header []string) []string {
	var unknown []string
	for _, name := range header {
		if name != "" && !slices.Contains(s.Columns, name) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// DuplicateColumns returns each non-blank header name that appears more than
// once, in order of its first repeat.
func (s *Schema[T]) DuplicateColumns(header []string) []string {
	var dups []string
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if name == "" {
			continue
		}
		if seen[name] && !slices.Contains(dups, name) {
			dups = append(dups, name)
		}
		seen[name] = true
	}
	return dups
}

// Validate checks one row against the schema. Required fields are checked
// first, then enumerations, then integer bounds; the first failing stage
// determines the error.
func (s *Schema[T]) Validate(f Fields) error {
	for _, name := range s.Required {
		if !f.Has(name) {
			return validationError("missing required field: " + name)
		}
	}

	for _, enum := range s.Enums {
		if !f.Has(enum.Name) {
			continue
		}
		value := f.String(enum.Name)
		if !slices.Contains(enum.Allowed, value) {
			return validationError(fmt.Sprintf("invalid %s %q: must be one of %s",
				enum.Name, value, strings.Join(enum.Allowed, ", ")))
		}
	}

	var violations []string
	for _, field := range s.Ints {
		n, ok := parseInt(f[field.Name])
		if ok && n < field.Min {
			violations = append(violations, fmt.Sprintf("%s must be at least %d", field.Name, field.Min))
		}
	}
	if len(violations) > 0 {
		return validationError("invalid numbers: " + strings.Join(violations, ", "))
	}

	return nil
}

// BuildRecord validates f and builds a record. newID is called only once
// validation has passed.
func (s *Schema[T]) BuildRecord(f Fields, newID IDGenerator) (T, error) {
	if err := s.Validate(f); err != nil {
		var zero T
		return zero, err
	}

	record := s.Build(f, newID())
	if s.Check != nil {
		if err := s.Check(record); err != nil {
			var zero T
			return zero, err
		}
	}
	return record, nil
}

// BoolDefault returns the declared default for a boolean column.
func (s *Schema[T]) BoolDefault(name string) bool {
	for _, b := range s.Bools {
		if b.Name == name {
			return b.Default
		}
	}
	return false
}

// IntDefault returns the declared default for an integer column.
func (s *Schema[T]) IntDefault(name string) int {
	for _, n := range s.Ints {
		if n.Name == name {
			return n.Default
		}
	}
	return 0
}
