package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/Veraticus/forage/internal/csvimport"
	"github.com/schollz/progressbar/v3"
)

// ErrInputTerminated is returned when input ends before every conflict is resolved.
var ErrInputTerminated = errors.New("input terminated")

// ConflictPrompter resolves import conflicts by asking on the terminal, one
// duplicate at a time. It implements csvimport.Reviewer.
type ConflictPrompter[T any] struct {
	writer      io.Writer
	reader      *LineReader
	progressBar *progressbar.ProgressBar
	describe    func(T) string
	entity      string
	counts      map[csvimport.Resolution]int
}

// NewConflictPrompter creates a prompter for records described by describe.
// entity names the record kind in titles ("recipe", "plant").
func NewConflictPrompter[T any](reader io.Reader, writer io.Writer, entity string, describe func(T) string) *ConflictPrompter[T] {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &ConflictPrompter[T]{
		reader:   NewLineReader(reader),
		writer:   writer,
		describe: describe,
		entity:   entity,
		counts:   make(map[csvimport.Resolution]int),
	}
}

// Review asks for a resolution for each conflict in order. Answering
// "all" applies the next chosen resolution to every remaining conflict.
func (p *ConflictPrompter[T]) Review(ctx context.Context, conflicts []*csvimport.Conflict[T]) error {
	if len(conflicts) == 0 {
		return nil
	}

	p.initProgressBar(len(conflicts))

	for i, c := range conflicts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		content := p.formatConflict(c)
		title := fmt.Sprintf("Duplicate %s %d of %d", p.entity, i+1, len(conflicts))
		if _, err := fmt.Fprintln(p.writer, RenderBox(title, content)); err != nil {
			return fmt.Errorf("failed to write conflict box: %w", err)
		}

		if _, err := fmt.Fprintln(p.writer, FormatPrompt("Options:")); err != nil {
			return fmt.Errorf("failed to write options prompt: %w", err)
		}
		options := []string{
			"  [S] Skip, keep the existing " + p.entity,
			"  [R] Replace the existing " + p.entity,
			"  [N] Import as a renamed copy",
			fmt.Sprintf("  [A] Choose once for all %d remaining", len(conflicts)-i),
		}
		for _, option := range options {
			if _, err := fmt.Fprintln(p.writer, option); err != nil {
				return fmt.Errorf("failed to write option: %w", err)
			}
		}

		choice, err := p.promptChoice(ctx, "Choice [S/R/N/A]", []string{"s", "r", "n", "a"})
		if err != nil {
			return err
		}

		if choice == "a" {
			choice, err = p.promptChoice(ctx, "Apply to all [S/R/N]", []string{"s", "r", "n"})
			if err != nil {
				return err
			}
			resolution := choiceResolution(choice)
			for _, rest := range conflicts[i:] {
				rest.Resolution = resolution
				p.record(resolution)
			}
			return p.finish()
		}

		c.Resolution = choiceResolution(choice)
		p.record(c.Resolution)
	}

	return p.finish()
}

// Counts returns how many conflicts received each resolution so far.
func (p *ConflictPrompter[T]) Counts() map[csvimport.Resolution]int {
	out := make(map[csvimport.Resolution]int, len(p.counts))
	for k, v := range p.counts {
		out[k] = v
	}
	return out
}

func choiceResolution(choice string) csvimport.Resolution {
	switch choice {
	case "r":
		return csvimport.ResolutionReplace
	case "n":
		return csvimport.ResolutionRename
	default:
		return csvimport.ResolutionSkip
	}
}

func (p *ConflictPrompter[T]) formatConflict(c *csvimport.Conflict[T]) string {
	var b strings.Builder
	b.WriteString(BoldStyle.Render("Already stored:"))
	b.WriteString("\n")
	b.WriteString(p.describe(c.Existing))
	b.WriteString("\n\n")
	b.WriteString(BoldStyle.Render("In this file:"))
	b.WriteString("\n")
	b.WriteString(p.describe(c.Candidate))
	return b.String()
}

func (p *ConflictPrompter[T]) record(r csvimport.Resolution) {
	p.counts[r]++
	if p.progressBar != nil {
		if err := p.progressBar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}
}

func (p *ConflictPrompter[T]) finish() error {
	if p.progressBar != nil {
		if err := p.progressBar.Finish(); err != nil {
			slog.Warn("Failed to finish progress bar", "error", err)
		}
	}

	summary := fmt.Sprintf("%d skipped, %d replaced, %d renamed",
		p.counts[csvimport.ResolutionSkip],
		p.counts[csvimport.ResolutionReplace],
		p.counts[csvimport.ResolutionRename])
	if _, err := fmt.Fprintln(p.writer, FormatSuccess("Review complete: "+summary)); err != nil {
		return fmt.Errorf("failed to write review summary: %w", err)
	}
	return nil
}

func (p *ConflictPrompter[T]) initProgressBar(total int) {
	p.progressBar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Reviewing duplicates...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(p.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

func (p *ConflictPrompter[T]) promptChoice(ctx context.Context, prompt string, validChoices []string) (string, error) {
	for {
		if _, err := fmt.Fprintf(p.writer, "%s: ", FormatPrompt(prompt)); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}

		input, err := p.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrInputTerminated
			}
			return "", err
		}

		choice := strings.ToLower(input)
		if slices.Contains(validChoices, choice) {
			return choice, nil
		}

		if _, err := fmt.Fprintln(p.writer, FormatError("Invalid choice. Please try again.")); err != nil {
			slog.Warn("Failed to write error message", "error", err)
		}
	}
}
