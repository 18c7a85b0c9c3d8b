package csvimport

import (
	"testing"

	"github.com/Veraticus/forage/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameText(t *testing.T) {
	assert.True(t, SameText("Wild Tea", "wild tea"))
	assert.True(t, SameText("  Wild Tea\t", "WILD TEA"))
	assert.True(t, SameText("Érable Syrup", "érable syrup"), "non-ASCII letters fold")
	assert.False(t, SameText("Wild Tea", "Wild  Tea"))
	assert.False(t, SameText("", ""))
	assert.False(t, SameText(" ", "x"))
}

func TestFindDuplicate_FirstMatchWins(t *testing.T) {
	schema := PlantSchema()
	existing := []model.Plant{
		{ID: "e1", Name: "Ramsons", LatinName: "Allium ursinum"},
		{ID: "e2", Name: "Wild Garlic", LatinName: "Allium vineale"},
	}
	candidate := model.Plant{Name: "Wild Garlic", LatinName: "Allium ursinum"}

	match, ok := FindDuplicate(candidate, existing, schema.Same)
	require.True(t, ok)
	assert.Equal(t, "e1", match.ID)
}

func TestFindDuplicate_NoMatch(t *testing.T) {
	schema := RecipeSchema()
	_, ok := FindDuplicate(model.Recipe{Title: "Nettle Soup"}, []model.Recipe{{Title: "Nettle Crisps"}}, schema.Same)
	assert.False(t, ok)

	_, ok = FindDuplicate(model.Recipe{Title: "Nettle Soup"}, nil, schema.Same)
	assert.False(t, ok)
}

func TestFindDuplicate_PlantOrRule(t *testing.T) {
	schema := PlantSchema()
	existing := []model.Plant{{ID: "e1", Name: "Elder", LatinName: "Sambucus nigra"}}

	match, ok := FindDuplicate(model.Plant{Name: "elder", LatinName: "Sambucus racemosa"}, existing, schema.Same)
	require.True(t, ok, "matching name alone is a duplicate")
	assert.Equal(t, "e1", match.ID)

	match, ok = FindDuplicate(model.Plant{Name: "Black Elder", LatinName: "sambucus NIGRA"}, existing, schema.Same)
	require.True(t, ok, "matching latin name alone is a duplicate")
	assert.Equal(t, "e1", match.ID)
}

func TestDetectConflicts(t *testing.T) {
	schema := RecipeSchema()
	existing := []model.Recipe{
		{ID: "old-1", Title: "Nettle Soup"},
		{ID: "old-2", Title: "Elderflower Cordial"},
	}
	existingCopy := append([]model.Recipe(nil), existing...)

	records := []model.Recipe{
		{ID: "new-1", Title: "Dandelion Coffee"},
		{ID: "new-2", Title: "nettle soup"},
		{ID: "new-3", Title: "Rosehip Syrup"},
		{ID: "new-4", Title: "ELDERFLOWER CORDIAL"},
	}

	fresh, conflicts := DetectConflicts(records, existing, schema)

	require.Len(t, fresh, 2)
	assert.Equal(t, "new-1", fresh[0].ID)
	assert.Equal(t, "new-3", fresh[1].ID)

	require.Len(t, conflicts, 2)
	assert.Equal(t, "new-2", conflicts[0].Candidate.ID)
	assert.Equal(t, "old-1", conflicts[0].Existing.ID)
	assert.Equal(t, ResolutionSkip, conflicts[0].Resolution)
	assert.Equal(t, "old-2", conflicts[1].Existing.ID)

	assert.Equal(t, existingCopy, existing, "existing collection must not change")
}
