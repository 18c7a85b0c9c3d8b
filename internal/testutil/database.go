// Package testutil provides test utilities for the forage project.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/forage/internal/common"
	"github.com/Veraticus/forage/internal/model"
	"github.com/Veraticus/forage/internal/storage"
)

// SetupTestDB creates a new in-memory test database with migrations applied.
// It is closed automatically when the test ends.
//
// Example:
//
//	store := testutil.SetupTestDB(t)
//	err := store.CommitRecipeImport(ctx, []model.Recipe{testutil.Recipe("r1", "Nettle Soup")}, nil)
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	store.SetLogger(common.DiscardLogger())

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// Recipe returns a complete, valid recipe.
func Recipe(id, title string) model.Recipe {
	return model.Recipe{
		ID:            id,
		Title:         title,
		Description:   "Test recipe " + title,
		Category:      model.RecipeMeals,
		Difficulty:    model.DifficultyEasy,
		PrepTime:      10,
		CookTime:      20,
		Servings:      4,
		Season:        []string{"spring"},
		RequiredFinds: []string{},
		Ingredients:   []string{"one thing", "another thing"},
		Instructions:  []string{"Combine", "Cook"},
		Tags:          []string{},
	}
}

// Plant returns a complete, valid plant.
func Plant(id, name, latinName string) model.Plant {
	p := model.Plant{
		ID:        id,
		Name:      name,
		LatinName: latinName,
		Family:    "Testaceae",
		Category:  model.PlantLeaves,
		Images:    []string{"https://example.com/" + id + ".jpg"},
		Identification: model.Identification{
			KeyFeatures: []string{"Distinctive leaves"},
			Habitat:     []string{},
			Season:      []string{},
			LookAlikes:  []string{},
		},
		Edibility: model.Edibility{
			Preparation: []string{},
			Warnings:    []string{},
			ToxicParts:  []string{},
		},
		Uses: model.Uses{
			Culinary:    []string{},
			Medicinal:   []string{},
			Traditional: []string{},
			Recipes:     []string{},
		},
		Ethics: model.Ethics{
			ConservationStatus: model.ConservationCommon,
			Guidelines:         []string{},
		},
	}
	p.Availability.Set(time.April, true)
	return p
}
