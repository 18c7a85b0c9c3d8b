package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/forage/internal/csvimport"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m ConflictReview[T]) View() string {
	if m.state != StateReviewing {
		return ""
	}

	sections := []string{
		m.theme.Title.Render(fmt.Sprintf("🌿 Review duplicate %ss (%d)", m.entity, len(m.conflicts))),
		m.renderList(),
	}
	if len(m.conflicts) > 0 {
		sections = append(sections, m.renderDetail())
	}
	sections = append(sections, m.renderStatusBar())
	if m.showHelp {
		sections = append(sections, m.help.View(m.keymap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// listHeight is the number of rows shown in the conflict list.
func (m ConflictReview[T]) listHeight() int {
	return max(m.height/3, 3)
}

// renderList renders the scrolling list of conflicts around the cursor.
func (m ConflictReview[T]) renderList() string {
	height := m.listHeight()
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := min(start+height, len(m.conflicts))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		choice := lipgloss.NewStyle().Width(8).Render(m.renderChoice(m.choices[i]))
		label := fmt.Sprintf("%3d. %s %s", i+1, choice, m.label(m.conflicts[i].Candidate))
		if i == m.cursor {
			lines = append(lines, m.theme.Selected.Render("› "+label))
		} else {
			lines = append(lines, m.theme.Normal.Render("  "+label))
		}
	}
	return strings.Join(lines, "\n")
}

// renderDetail shows the stored record and the imported one side by side.
func (m ConflictReview[T]) renderDetail() string {
	c := m.conflicts[m.cursor]
	width := max((m.width-4)/2, 20)

	existing := m.theme.RoundedBox.Width(width).Render(
		m.theme.Bold.Render("Already stored") + "\n" + m.describe(c.Existing))
	candidate := m.theme.RoundedBox.Width(width).Render(
		m.theme.Bold.Render("In this file") + "\n" + m.describe(c.Candidate))

	return lipgloss.JoinHorizontal(lipgloss.Top, existing, " ", candidate)
}

// renderStatusBar summarizes the choices made so far.
func (m ConflictReview[T]) renderStatusBar() string {
	counts := make(map[csvimport.Resolution]int)
	for _, r := range m.choices {
		counts[r]++
	}
	status := fmt.Sprintf("%d/%d · %d skip · %d replace · %d rename · %d undecided",
		m.cursor+min(len(m.conflicts), 1), len(m.conflicts),
		counts[csvimport.ResolutionSkip],
		counts[csvimport.ResolutionReplace],
		counts[csvimport.ResolutionRename],
		counts[""])
	return m.theme.Subtitle.Render(status)
}

func (m ConflictReview[T]) renderChoice(r csvimport.Resolution) string {
	switch r {
	case csvimport.ResolutionSkip:
		return m.theme.StatusSkip.Render("skip")
	case csvimport.ResolutionReplace:
		return m.theme.StatusReplace.Render("replace")
	case csvimport.ResolutionRename:
		return m.theme.StatusRename.Render("rename")
	default:
		return m.theme.StatusPending.Render("?")
	}
}

// label is the first line of a record's description.
func (m ConflictReview[T]) label(record T) string {
	desc := m.describe(record)
	if i := strings.IndexByte(desc, '\n'); i >= 0 {
		return desc[:i]
	}
	return desc
}
