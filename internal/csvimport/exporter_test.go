package csvimport

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/forage/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeSchema_Export(t *testing.T) {
	r := model.Recipe{
		ID:            "x",
		Title:         `Grandma's "Best" Jam`,
		Description:   "Sweet, sticky",
		Category:      model.RecipePreserves,
		Difficulty:    model.DifficultyMedium,
		PrepTime:      10,
		CookTime:      45,
		Servings:      12,
		Season:        []string{"summer"},
		RequiredFinds: []string{"blackberry", "apple"},
		Ingredients:   []string{"1 kg berries", "1 kg sugar"},
		Instructions:  []string{"Boil", "Jar"},
		Tags:          []string{},
	}

	out := RecipeSchema().Export([]model.Recipe{r})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, recipeHeader, lines[0])
	assert.Equal(t,
		`"Grandma's ""Best"" Jam","Sweet, sticky","preserves","medium",10,45,12,"summer","blackberry|apple","1 kg berries|1 kg sugar","Boil|Jar",""`,
		lines[1])
}

func TestExport_PreservesOrderAndHeaderOnlyForEmpty(t *testing.T) {
	schema := RecipeSchema()
	assert.Equal(t, recipeHeader+"\n", schema.Export(nil))

	out := schema.Export([]model.Recipe{
		{Title: "B", Ingredients: []string{"x"}, Instructions: []string{"y"}},
		{Title: "A", Ingredients: []string{"x"}, Instructions: []string{"y"}},
	})
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[1], `"B"`))
	assert.True(t, strings.HasPrefix(lines[2], `"A"`))
}

func TestRecipeSchema_ExportRoundTrip(t *testing.T) {
	schema := RecipeSchema()
	parser := newRecipeParser()

	original := parser.Parse(RecipeTemplate)
	require.Empty(t, original.Errors)
	require.Len(t, original.Records, 1)
	r := original.Records[0]

	exported := schema.Export([]model.Recipe{r})
	lines := strings.Split(strings.TrimSuffix(exported, "\n"), "\n")
	rebuilt, err := schema.BuildRecord(NewFields(Tokenize(lines[0]), Tokenize(lines[1])), func() string { return "fresh" })
	require.NoError(t, err)

	assert.Equal(t, "fresh", rebuilt.ID)
	rebuilt.ID = r.ID
	assert.Equal(t, r, rebuilt)
}

func TestPlantSchema_ExportRoundTrip(t *testing.T) {
	schema := PlantSchema()
	p := model.Plant{
		ID:          "p",
		Name:        `Jack-by-the-hedge, "garlic mustard"`,
		LatinName:   "Alliaria petiolata",
		Family:      "Brassicaceae",
		Category:    model.PlantLeaves,
		Description: "Heart-shaped leaves",
		HeroImage:   "",
		Images:      []string{PlaceholderImageURL},
		Identification: model.Identification{
			KeyFeatures: []string{"Garlic smell", "White four-petalled flowers"},
			Habitat:     []string{"Hedgerows"},
			Season:      []string{"spring"},
			LookAlikes:  []string{},
		},
		Edibility: model.Edibility{
			Safe:        true,
			Preparation: []string{"Raw"},
			Warnings:    []string{},
			ToxicParts:  []string{},
		},
		Uses: model.Uses{
			Culinary:    []string{"Salads"},
			Medicinal:   []string{},
			Traditional: []string{},
			Recipes:     []string{},
		},
		Ethics: model.Ethics{
			ConservationStatus: model.ConservationCommon,
			Guidelines:         []string{"Invasive in places, pick freely"},
		},
	}
	p.Availability.Set(time.March, true)
	p.Availability.Set(time.April, true)

	exported := schema.Export([]model.Plant{p})
	lines := strings.Split(strings.TrimSuffix(exported, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], ",true,")
	assert.Contains(t, lines[1], ",false,")

	result := newPlantParser().Parse(exported)
	require.Empty(t, result.Errors)
	require.Len(t, result.Records, 1)

	rebuilt := result.Records[0]
	assert.NotEqual(t, p.ID, rebuilt.ID)
	rebuilt.ID = p.ID
	assert.Equal(t, p, rebuilt)
}

func TestSchema_Values(t *testing.T) {
	rows := RecipeSchema().Values([]model.Recipe{{Title: `"q"`, Servings: 2}})
	require.Len(t, rows, 1)
	assert.Equal(t, `"q"`, rows[0][0], "values are not CSV quoted")
	assert.Equal(t, "2", rows[0][6])
	assert.Len(t, rows[0], len(RecipeColumns))
}
