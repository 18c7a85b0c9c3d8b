package csvimport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// DefaultMaxBytes bounds how much of a reader ParseReader will consume.
const DefaultMaxBytes int64 = 10 << 20

// IDGenerator returns a fresh record identifier.
type IDGenerator func() string

// Result is the outcome of parsing one document.
type Result[T any] struct {
	Records        []T
	Errors         []string
	Warnings       []string
	TotalRows      int
	SuccessfulRows int
	// fatal is set when the document was rejected before any row was read.
	fatal bool
}

// HasFatal reports whether the document was rejected as a whole.
func (r *Result[T]) HasFatal() bool {
	return r.fatal
}

// FailedRows returns the number of data rows that produced an error.
func (r *Result[T]) FailedRows() int {
	return r.TotalRows - r.SuccessfulRows
}

// Err joins every error message into one error, or returns nil.
func (r *Result[T]) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, msg := range r.Errors {
		errs[i] = errors.New(msg)
	}
	return errors.Join(errs...)
}

// Option configures a Parser.
type Option func(*parserOptions)

type parserOptions struct {
	newID    IDGenerator
	logger   *slog.Logger
	maxBytes int64
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(o *parserOptions) {
		if gen != nil {
			o.newID = gen
		}
	}
}

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *parserOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxBytes bounds the size of documents read by ParseReader.
func WithMaxBytes(n int64) Option {
	return func(o *parserOptions) {
		if n > 0 {
			o.maxBytes = n
		}
	}
}

// Parser reads CSV documents into records described by a Schema.
// A Parser holds no mutable state and is safe for concurrent use.
type Parser[T any] struct {
	schema *Schema[T]
	opts   parserOptions
}

// NewParser creates a parser for schema.
func NewParser[T any](schema *Schema[T], opts ...Option) *Parser[T] {
	o := parserOptions{
		newID:    uuid.NewString,
		logger:   slog.Default(),
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser[T]{schema: schema, opts: o}
}

// Schema returns the schema the parser reads.
func (p *Parser[T]) Schema() *Schema[T] {
	return p.schema
}

// ParseReader reads a document from r and parses it. Read failures are
// reported in the Result like any other document-level error; only context
// cancellation is returned as an error.
func (p *Parser[T]) ParseReader(ctx context.Context, r io.Reader) (*Result[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(r, p.opts.maxBytes+1))
	if err != nil {
		return documentFailure[T](fmt.Sprintf("failed to read file: %v", err)), nil
	}
	if int64(len(data)) > p.opts.maxBytes {
		return documentFailure[T](fmt.Sprintf("file is larger than %d bytes", p.opts.maxBytes)), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.Parse(string(data)), nil
}

// Parse reads every data row of document. Rows that fail validation or
// invariant checks are left out of Records and reported in Errors as
// "Row N: message", where N counts the header as row 1.
func (p *Parser[T]) Parse(document string) *Result[T] {
	lines := splitLines(document)
	if len(lines) < 2 {
		return documentFailure[T]("CSV must contain a header row and at least one data row")
	}

	header := Tokenize(lines[0])
	if missing := p.schema.MissingColumns(header); len(missing) > 0 {
		return documentFailure[T]("missing required columns: " + strings.Join(missing, ", "))
	}

	result := &Result[T]{
		Records:  make([]T, 0, len(lines)-1),
		Errors:   []string{},
		Warnings: []string{},
	}
	for _, name := range p.schema.UnknownColumns(header) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("unknown column %q ignored", name))
	}
	for _, name := range p.schema.DuplicateColumns(header) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("duplicate column %q ignored", name))
	}

	for i, line := range lines[1:] {
		result.TotalRows++
		rowNum := i + 2

		record, err := p.schema.BuildRecord(NewFields(header, Tokenize(line)), p.opts.newID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			p.opts.logger.Debug("Rejected row",
				"entity", p.schema.Entity,
				"row", rowNum,
				"error", err)
			continue
		}

		result.Records = append(result.Records, record)
		result.SuccessfulRows++
	}

	p.opts.logger.Debug("Parsed CSV document",
		"entity", p.schema.Entity,
		"total_rows", result.TotalRows,
		"successful_rows", result.SuccessfulRows,
		"errors", len(result.Errors))

	return result
}

func documentFailure[T any](msg string) *Result[T] {
	return &Result[T]{
		Records:  []T{},
		Errors:   []string{msg},
		Warnings: []string{},
		fatal:    true,
	}
}

// splitLines splits on newlines, tolerating CRLF, and drops blank lines.
func splitLines(document string) []string {
	raw := strings.Split(strings.ReplaceAll(document, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
