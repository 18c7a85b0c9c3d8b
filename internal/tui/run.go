package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/forage/internal/csvimport"
	tea "github.com/charmbracelet/bubbletea"
)

// Reviewer runs a ConflictReview as a full-screen program. It implements
// csvimport.Reviewer.
type Reviewer[T any] struct {
	describe func(T) string
	entity   string
	options  []Option
	program  []tea.ProgramOption
}

// NewReviewer creates a reviewer for records described by describe.
func NewReviewer[T any](entity string, describe func(T) string, opts ...Option) *Reviewer[T] {
	return &Reviewer[T]{
		describe: describe,
		entity:   entity,
		options:  opts,
	}
}

// WithProgramOptions appends bubbletea program options, such as custom
// input and output streams.
func (r *Reviewer[T]) WithProgramOptions(opts ...tea.ProgramOption) *Reviewer[T] {
	r.program = append(r.program, opts...)
	return r
}

// Review shows every conflict and blocks until the user confirms, quits or
// aborts.
func (r *Reviewer[T]) Review(ctx context.Context, conflicts []*csvimport.Conflict[T]) error {
	if len(conflicts) == 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range r.options {
		opt(&cfg)
	}

	review := NewConflictReview(conflicts, r.entity, r.describe, r.options...)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, r.program...)

	final, err := tea.NewProgram(review, opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	result, ok := final.(ConflictReview[T])
	if !ok {
		return fmt.Errorf("unexpected TUI model %T", final)
	}
	return result.Apply()
}
