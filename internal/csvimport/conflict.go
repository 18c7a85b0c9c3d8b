package csvimport

import (
	"context"
	"fmt"
	"strings"
)

// ImportedSuffix is appended to the display name of a renamed record.
const ImportedSuffix = " (Imported)"

// Resolution decides what happens to an imported record that duplicates an
// existing one.
type Resolution string

// Resolution constants. The zero value is not valid; conflicts are created
// with ResolutionSkip.
const (
	ResolutionSkip    Resolution = "skip"
	ResolutionReplace Resolution = "replace"
	ResolutionRename  Resolution = "rename"
)

// Resolutions lists every resolution in display order.
var Resolutions = []Resolution{ResolutionSkip, ResolutionReplace, ResolutionRename}

// ParseResolution converts a name such as "replace" into a Resolution.
func ParseResolution(s string) (Resolution, error) {
	switch r := Resolution(strings.ToLower(strings.TrimSpace(s))); r {
	case ResolutionSkip, ResolutionReplace, ResolutionRename:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownResolution, s)
	}
}

// Conflict pairs an imported record with the existing record it duplicates.
type Conflict[T any] struct {
	Candidate  T
	Existing   T
	Resolution Resolution
}

// Plan is the set of writes produced by applying resolutions.
type Plan[T any] struct {
	Inserts []T
	Updates []T
	Skipped int
}

// Empty reports whether the plan writes nothing.
func (p Plan[T]) Empty() bool {
	return len(p.Inserts) == 0 && len(p.Updates) == 0
}

// Resolve applies each conflict's resolution. Records without a conflict are
// always inserted. A replaced record takes the existing record's identifier
// and overwrites it whole; a renamed record keeps its own identifier and is
// inserted with ImportedSuffix on its display name.
func Resolve[T any](fresh []T, conflicts []*Conflict[T], schema *Schema[T]) Plan[T] {
	plan := Plan[T]{
		Inserts: make([]T, 0, len(fresh)+len(conflicts)),
		Updates: []T{},
	}
	plan.Inserts = append(plan.Inserts, fresh...)

	for _, c := range conflicts {
		switch c.Resolution {
		case ResolutionReplace:
			plan.Updates = append(plan.Updates, schema.WithID(c.Candidate, schema.ID(c.Existing)))
		case ResolutionRename:
			plan.Inserts = append(plan.Inserts, schema.Renamed(c.Candidate))
		default:
			plan.Skipped++
		}
	}

	return plan
}

// Summary counts what a commit did.
type Summary struct {
	Added    int
	Replaced int
	Skipped  int
}

// String renders the summary for display.
func (s Summary) String() string {
	return fmt.Sprintf("%d added, %d replaced, %d skipped", s.Added, s.Replaced, s.Skipped)
}

// Committer writes an import's inserts and in-place updates to storage.
type Committer[T any] interface {
	CommitImport(ctx context.Context, inserts, updates []T) error
}

// CommitterFunc adapts a function to the Committer interface.
type CommitterFunc[T any] func(ctx context.Context, inserts, updates []T) error

// CommitImport calls f(ctx, inserts, updates).
func (f CommitterFunc[T]) CommitImport(ctx context.Context, inserts, updates []T) error {
	return f(ctx, inserts, updates)
}

// Commit submits plan to committer. Nothing is written when the plan is
// empty; skipped records are never submitted.
func Commit[T any](ctx context.Context, plan Plan[T], committer Committer[T]) (Summary, error) {
	summary := Summary{Skipped: plan.Skipped}
	if plan.Empty() {
		return summary, nil
	}

	if err := committer.CommitImport(ctx, plan.Inserts, plan.Updates); err != nil {
		return Summary{}, fmt.Errorf("failed to commit import: %w", err)
	}

	summary.Added = len(plan.Inserts)
	summary.Replaced = len(plan.Updates)
	return summary, nil
}

// Reviewer assigns a resolution to each conflict before commit.
type Reviewer[T any] interface {
	Review(ctx context.Context, conflicts []*Conflict[T]) error
}

// StaticReviewer resolves every conflict the same way.
type StaticReviewer[T any] struct {
	Resolution Resolution
}

// Review sets every conflict to r.Resolution.
func (r StaticReviewer[T]) Review(ctx context.Context, conflicts []*Conflict[T]) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, c := range conflicts {
		c.Resolution = r.Resolution
	}
	return nil
}
