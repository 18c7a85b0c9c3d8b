package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/forage/internal/common"
	"github.com/Veraticus/forage/internal/csvimport"
	"github.com/Veraticus/forage/internal/model"
	"github.com/Veraticus/forage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	fixtures, err := Load()
	require.NoError(t, err)

	require.Len(t, fixtures.Plants, 4)
	require.Len(t, fixtures.Recipes, 3)

	elder := fixtures.Plants[0]
	assert.Equal(t, "seed-plant-elder", elder.ID)
	assert.Equal(t, "Sambucus nigra", elder.LatinName)
	assert.True(t, elder.Edibility.Safe)
	assert.True(t, elder.Availability.In(time.May))
	assert.False(t, elder.Availability.In(time.January))
	assert.Equal(t, 3, elder.Availability.Count())

	assert.Equal(t, "Elderflower Cordial", fixtures.Recipes[0].Title)
	assert.Equal(t, 8, fixtures.Recipes[0].Servings)
}

func TestLoad_ReturnsIndependentCopies(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)
	first.Plants[0].Name = "changed"
	first.Recipes = nil

	second, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Elder", second.Plants[0].Name)
	assert.Len(t, second.Recipes, 3)
}

func TestFixtures_SatisfyImportRules(t *testing.T) {
	fixtures, err := Load()
	require.NoError(t, err)

	plants := csvimport.PlantSchema()
	for _, p := range fixtures.Plants {
		require.NoError(t, plants.Check(p), p.Name)
		assert.Contains(t, model.PlantCategories, p.Category, p.Name)
		assert.Contains(t, model.ConservationStatuses, p.Ethics.ConservationStatus, p.Name)
		assert.NotEmpty(t, p.Images, p.Name)
	}

	recipes := csvimport.RecipeSchema()
	for _, r := range fixtures.Recipes {
		require.NoError(t, recipes.Check(r), r.Title)
		assert.Contains(t, model.RecipeCategories, r.Category, r.Title)
		assert.Contains(t, model.Difficulties, r.Difficulty, r.Title)
	}
}

func TestApply_EmptyStore(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t)

	result, err := Apply(ctx, store, common.DiscardLogger())
	require.NoError(t, err)
	assert.Equal(t, Result{Plants: 4, Recipes: 3}, result)

	plants, err := store.GetPlants(ctx)
	require.NoError(t, err)
	assert.Len(t, plants, 4)

	again, err := Apply(ctx, store, common.DiscardLogger())
	require.NoError(t, err)
	assert.Equal(t, Result{}, again, "seeding twice inserts nothing")
}

func TestApply_OnlyEmptyTables(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t)
	require.NoError(t, store.CommitRecipeImport(ctx, []model.Recipe{testutil.Recipe("mine", "My Soup")}, nil))

	result, err := Apply(ctx, store, common.DiscardLogger())
	require.NoError(t, err)
	assert.Equal(t, Result{Plants: 4}, result)

	count, err := store.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

type failingStore struct {
	testStoreStub
}

type testStoreStub struct{}

func (testStoreStub) CountRecipes(context.Context) (int, error) { return 0, nil }
func (testStoreStub) CountPlants(context.Context) (int, error)  { return 0, nil }
func (testStoreStub) CommitRecipeImport(context.Context, []model.Recipe, []model.Recipe) error {
	return nil
}
func (testStoreStub) CommitPlantImport(context.Context, []model.Plant, []model.Plant) error {
	return nil
}

func (failingStore) CommitPlantImport(context.Context, []model.Plant, []model.Plant) error {
	return errors.New("disk full")
}

func TestApply_CommitFailure(t *testing.T) {
	result, err := Apply(context.Background(), failingStore{}, common.DiscardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed plants")
	assert.Equal(t, Result{}, result)
}
