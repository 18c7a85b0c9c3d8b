package csvimport

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Veraticus/forage/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCommitter struct {
	inserts []model.Recipe
	updates []model.Recipe
	calls   int
	err     error
}

func (c *recordingCommitter) CommitImport(_ context.Context, inserts, updates []model.Recipe) error {
	c.calls++
	if c.err != nil {
		return c.err
	}
	c.inserts = append(c.inserts, inserts...)
	c.updates = append(c.updates, updates...)
	return nil
}

func TestParseResolution(t *testing.T) {
	for _, name := range []string{"skip", "Replace", " rename "} {
		r, err := ParseResolution(name)
		require.NoError(t, err)
		assert.Equal(t, Resolution(strings.ToLower(strings.TrimSpace(name))), r)
	}

	_, err := ParseResolution("merge")
	assert.ErrorIs(t, err, ErrUnknownResolution)
}

func conflictFixture() ([]model.Recipe, []*Conflict[model.Recipe]) {
	fresh := []model.Recipe{{ID: "new-0", Title: "Dandelion Coffee"}}
	conflicts := []*Conflict[model.Recipe]{
		{
			Candidate:  model.Recipe{ID: "new-1", Title: "Nettle Soup", Servings: 6},
			Existing:   model.Recipe{ID: "old-1", Title: "nettle soup", Servings: 2},
			Resolution: ResolutionReplace,
		},
		{
			Candidate:  model.Recipe{ID: "new-2", Title: "Elderflower Cordial"},
			Existing:   model.Recipe{ID: "old-2", Title: "Elderflower Cordial"},
			Resolution: ResolutionRename,
		},
		{
			Candidate:  model.Recipe{ID: "new-3", Title: "Rosehip Syrup"},
			Existing:   model.Recipe{ID: "old-3", Title: "Rosehip Syrup"},
			Resolution: ResolutionSkip,
		},
	}
	return fresh, conflicts
}

func TestResolve(t *testing.T) {
	fresh, conflicts := conflictFixture()
	plan := Resolve(fresh, conflicts, RecipeSchema())

	require.Len(t, plan.Updates, 1)
	assert.Equal(t, "old-1", plan.Updates[0].ID, "replace takes the existing identifier")
	assert.Equal(t, 6, plan.Updates[0].Servings, "replace overwrites the whole record")
	assert.Equal(t, "Nettle Soup", plan.Updates[0].Title)

	require.Len(t, plan.Inserts, 2)
	assert.Equal(t, "new-0", plan.Inserts[0].ID)
	assert.Equal(t, "new-2", plan.Inserts[1].ID, "rename keeps the generated identifier")
	assert.True(t, strings.HasSuffix(plan.Inserts[1].Title, " (Imported)"))
	assert.Equal(t, "Elderflower Cordial (Imported)", plan.Inserts[1].Title)

	assert.Equal(t, 1, plan.Skipped)

	assert.Equal(t, "new-1", conflicts[0].Candidate.ID, "resolving must not modify conflicts")
	assert.Equal(t, "Elderflower Cordial", conflicts[1].Candidate.Title)
}

func TestResolve_UnsetResolutionSkips(t *testing.T) {
	conflicts := []*Conflict[model.Recipe]{{Candidate: model.Recipe{ID: "n"}, Existing: model.Recipe{ID: "o"}}}
	plan := Resolve(nil, conflicts, RecipeSchema())
	assert.True(t, plan.Empty())
	assert.Equal(t, 1, plan.Skipped)
}

func TestCommit(t *testing.T) {
	ctx := context.Background()
	fresh, conflicts := conflictFixture()
	plan := Resolve(fresh, conflicts, RecipeSchema())

	committer := &recordingCommitter{}
	summary, err := Commit(ctx, plan, committer)
	require.NoError(t, err)

	assert.Equal(t, Summary{Added: 2, Replaced: 1, Skipped: 1}, summary)
	assert.Equal(t, "2 added, 1 replaced, 1 skipped", summary.String())
	assert.Equal(t, 1, committer.calls)
	for _, r := range append(committer.inserts, committer.updates...) {
		assert.NotEqual(t, "new-3", r.ID, "skipped records are never submitted")
		assert.NotEqual(t, "Rosehip Syrup", r.Title)
	}
}

func TestCommit_EmptyPlanWritesNothing(t *testing.T) {
	committer := &recordingCommitter{}
	summary, err := Commit(context.Background(), Plan[model.Recipe]{Skipped: 3}, committer)
	require.NoError(t, err)
	assert.Equal(t, Summary{Skipped: 3}, summary)
	assert.Zero(t, committer.calls)
}

func TestCommit_FailureReported(t *testing.T) {
	committer := &recordingCommitter{err: errors.New("locked")}
	plan := Plan[model.Recipe]{Inserts: []model.Recipe{{ID: "a"}}}

	summary, err := Commit(context.Background(), plan, committer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
	assert.Equal(t, Summary{}, summary)
}

func TestCommitterFunc(t *testing.T) {
	var got []model.Recipe
	fn := CommitterFunc[model.Recipe](func(_ context.Context, inserts, _ []model.Recipe) error {
		got = inserts
		return nil
	})

	_, err := Commit(context.Background(), Plan[model.Recipe]{Inserts: []model.Recipe{{ID: "x"}}}, fn)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStaticReviewer(t *testing.T) {
	_, conflicts := conflictFixture()
	reviewer := StaticReviewer[model.Recipe]{Resolution: ResolutionRename}

	require.NoError(t, reviewer.Review(context.Background(), conflicts))
	for _, c := range conflicts {
		assert.Equal(t, ResolutionRename, c.Resolution)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, reviewer.Review(ctx, conflicts), context.Canceled)
}

func TestImportPipeline_EndToEnd(t *testing.T) {
	existing := []model.Recipe{{ID: "old-tea", Title: "Wild Tea", Servings: 2}}
	doc := recipeHeader + "\n" +
		`"Wild Tea","Herbal tea","medicinal","easy","5","0","1","spring","dandelion","2 tbsp leaves|1 cup water","Steep|Strain","herbal"` + "\n" +
		`"Pine Syrup","Syrup","preserves","medium",15,30,10,"winter","pine","needles|sugar","Infuse|Strain",""`

	schema := RecipeSchema()
	result := NewParser(schema, WithIDGenerator(sequentialIDs("r")), WithLogger(quietLogger())).Parse(doc)
	require.Empty(t, result.Errors)

	fresh, conflicts := DetectConflicts(result.Records, existing, schema)
	require.Len(t, conflicts, 1)
	conflicts[0].Resolution = ResolutionReplace

	committer := &recordingCommitter{}
	summary, err := Commit(context.Background(), Resolve(fresh, conflicts, schema), committer)
	require.NoError(t, err)

	assert.Equal(t, Summary{Added: 1, Replaced: 1}, summary)
	require.Len(t, committer.updates, 1)
	assert.Equal(t, "old-tea", committer.updates[0].ID)
	assert.Equal(t, 1, committer.updates[0].Servings)
	require.Len(t, committer.inserts, 1)
	assert.Equal(t, "r-2", committer.inserts[0].ID)
}
