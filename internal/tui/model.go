// Package tui provides a full-screen bubbletea reviewer for import conflicts.
package tui

import (
	"errors"

	"github.com/Veraticus/forage/internal/csvimport"
	"github.com/Veraticus/forage/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrReviewAborted is returned when the user aborts the review with Ctrl+C.
var ErrReviewAborted = errors.New("conflict review aborted")

// State represents the current state of the review.
type State int

const (
	StateReviewing State = iota
	StateConfirmed
	StateQuit
	StateAborted
)

// ConflictReview is the bubbletea model that lists conflicting records and
// records a resolution for each.
type ConflictReview[T any] struct {
	theme     themes.Theme
	keymap    KeyMap
	describe  func(T) string
	conflicts []*csvimport.Conflict[T]
	choices   []csvimport.Resolution
	entity    string
	help      help.Model
	width     int
	height    int
	cursor    int
	state     State
	showHelp  bool
}

// NewConflictReview creates a review model over conflicts. Resolutions are
// only written back to the conflicts by Apply.
func NewConflictReview[T any](conflicts []*csvimport.Conflict[T], entity string, describe func(T) string, opts ...Option) ConflictReview[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := help.New()
	h.Width = cfg.Width

	return ConflictReview[T]{
		theme:     cfg.Theme,
		keymap:    cfg.KeyMap,
		describe:  describe,
		conflicts: conflicts,
		choices:   make([]csvimport.Resolution, len(conflicts)),
		entity:    entity,
		help:      h,
		width:     cfg.Width,
		height:    cfg.Height,
		state:     StateReviewing,
		showHelp:  cfg.ShowHelp,
	}
}

// Init initializes the model.
func (m ConflictReview[T]) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m ConflictReview[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ConflictReview[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state != StateReviewing {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.state = StateAborted
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Quit):
		m.state = StateQuit
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Confirm):
		m.state = StateConfirmed
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.conflicts)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Home):
		m.cursor = 0
	case key.Matches(msg, m.keymap.End):
		m.cursor = max(len(m.conflicts)-1, 0)

	case key.Matches(msg, m.keymap.Skip):
		m.choose(csvimport.ResolutionSkip)
	case key.Matches(msg, m.keymap.Replace):
		m.choose(csvimport.ResolutionReplace)
	case key.Matches(msg, m.keymap.Rename):
		m.choose(csvimport.ResolutionRename)
	case key.Matches(msg, m.keymap.ApplyAll):
		m.applyToUndecided()
	case key.Matches(msg, m.keymap.Undo):
		if len(m.choices) > 0 {
			m.choices = m.withChoice(m.cursor, "")
		}

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// choose sets the resolution under the cursor and moves to the next row.
func (m *ConflictReview[T]) choose(r csvimport.Resolution) {
	if len(m.choices) == 0 {
		return
	}
	m.choices = m.withChoice(m.cursor, r)
	if m.cursor < len(m.conflicts)-1 {
		m.cursor++
	}
}

// applyToUndecided copies the resolution under the cursor, or skip when it
// is undecided, to every row without a choice.
func (m *ConflictReview[T]) applyToUndecided() {
	if len(m.choices) == 0 {
		return
	}
	r := m.choices[m.cursor]
	if r == "" {
		r = csvimport.ResolutionSkip
	}
	choices := m.withChoice(m.cursor, r)
	for i := range choices {
		if choices[i] == "" {
			choices[i] = r
		}
	}
	m.choices = choices
}

// withChoice returns a copy of the choices with index i set, so earlier
// model values keep their own state.
func (m ConflictReview[T]) withChoice(i int, r csvimport.Resolution) []csvimport.Resolution {
	out := make([]csvimport.Resolution, len(m.choices))
	copy(out, m.choices)
	out[i] = r
	return out
}

// State reports whether the review is still running or how it ended.
func (m ConflictReview[T]) State() State {
	return m.state
}

// Cursor returns the index of the highlighted conflict.
func (m ConflictReview[T]) Cursor() int {
	return m.cursor
}

// Choices returns the resolution chosen for each conflict; undecided rows
// are empty.
func (m ConflictReview[T]) Choices() []csvimport.Resolution {
	out := make([]csvimport.Resolution, len(m.choices))
	copy(out, m.choices)
	return out
}

// Apply writes the outcome of the review to the conflicts. A confirmed
// review keeps each choice and skips undecided rows; quitting skips every
// conflict. An aborted review leaves the conflicts untouched.
func (m ConflictReview[T]) Apply() error {
	switch m.state {
	case StateAborted:
		return ErrReviewAborted
	case StateConfirmed:
		for i, c := range m.conflicts {
			c.Resolution = m.choices[i]
			if c.Resolution == "" {
				c.Resolution = csvimport.ResolutionSkip
			}
		}
	default:
		for _, c := range m.conflicts {
			c.Resolution = csvimport.ResolutionSkip
		}
	}
	return nil
}
