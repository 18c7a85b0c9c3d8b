// Package seed provides the starter plants and recipes loaded into an empty
// database.
package seed

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/Veraticus/forage/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed plants.yaml recipes.yaml
var fixtureFS embed.FS

// Fixtures is one decoded copy of the seed data.
type Fixtures struct {
	Plants  []model.Plant
	Recipes []model.Recipe
}

// Store is the part of the persistence layer seeding needs.
type Store interface {
	CountRecipes(ctx context.Context) (int, error)
	CountPlants(ctx context.Context) (int, error)
	CommitRecipeImport(ctx context.Context, inserts, updates []model.Recipe) error
	CommitPlantImport(ctx context.Context, inserts, updates []model.Plant) error
}

// Result reports how many records Apply inserted.
type Result struct {
	Plants  int
	Recipes int
}

// Load decodes the embedded fixtures. Every call returns a fresh copy, so
// callers may modify the result freely.
func Load() (*Fixtures, error) {
	var f Fixtures
	if err := decode("plants.yaml", &f.Plants); err != nil {
		return nil, err
	}
	if err := decode("recipes.yaml", &f.Recipes); err != nil {
		return nil, err
	}
	return &f, nil
}

func decode(name string, out any) error {
	data, err := fixtureFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", name, err)
	}
	return nil
}

// Apply inserts the fixtures into every table that is still empty. Tables
// that already hold records are left alone.
func Apply(ctx context.Context, store Store, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fixtures, err := Load()
	if err != nil {
		return Result{}, err
	}

	var result Result

	plantCount, err := store.CountPlants(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to count plants: %w", err)
	}
	if plantCount == 0 && len(fixtures.Plants) > 0 {
		if err := store.CommitPlantImport(ctx, fixtures.Plants, nil); err != nil {
			return result, fmt.Errorf("failed to seed plants: %w", err)
		}
		result.Plants = len(fixtures.Plants)
	}

	recipeCount, err := store.CountRecipes(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to count recipes: %w", err)
	}
	if recipeCount == 0 && len(fixtures.Recipes) > 0 {
		if err := store.CommitRecipeImport(ctx, fixtures.Recipes, nil); err != nil {
			return result, fmt.Errorf("failed to seed recipes: %w", err)
		}
		result.Recipes = len(fixtures.Recipes)
	}

	logger.Info("Seed applied",
		"plants", result.Plants,
		"recipes", result.Recipes,
		"existing_plants", plantCount,
		"existing_recipes", recipeCount)

	return result, nil
}
