// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/forage/internal/model"
)

// RecipeStore persists recipes.
type RecipeStore interface {
	GetRecipes(ctx context.Context) ([]model.Recipe, error)
	GetRecipeByID(ctx context.Context, id string) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
	CountRecipes(ctx context.Context) (int, error)
	// CommitRecipeImport writes one import batch atomically.
	CommitRecipeImport(ctx context.Context, inserts, updates []model.Recipe) error
}

// PlantStore persists plants.
type PlantStore interface {
	GetPlants(ctx context.Context) ([]model.Plant, error)
	GetPlantByID(ctx context.Context, id string) (*model.Plant, error)
	DeletePlant(ctx context.Context, id string) error
	CountPlants(ctx context.Context) (int, error)
	// CommitPlantImport writes one import batch atomically.
	CommitPlantImport(ctx context.Context, inserts, updates []model.Plant) error
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	RecipeStore
	PlantStore

	// Maintenance
	Migrate(ctx context.Context) error
	Close() error
}
