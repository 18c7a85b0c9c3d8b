package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Veraticus/forage/internal/cli"
	"github.com/Veraticus/forage/internal/common"
	"github.com/Veraticus/forage/internal/config"
	"github.com/Veraticus/forage/internal/csvimport"
	"github.com/Veraticus/forage/internal/model"
	"github.com/Veraticus/forage/internal/seed"
	"github.com/Veraticus/forage/internal/service"
	"github.com/Veraticus/forage/internal/storage"
)

// initStorage opens the configured database, applies migrations, and seeds
// empty tables when seed.on_start is set.
func initStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	store.SetLogger(slog.Default())

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if cfg.SeedOnStart {
		if _, err := seed.Apply(ctx, store, slog.Default()); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	return store, nil
}

func closeStorage(store *storage.SQLiteStorage) {
	if err := store.Close(); err != nil {
		slog.Warn("Failed to close database", "error", err)
	}
}

// entityKind selects which collection a command works on.
type entityKind string

const (
	kindRecipes entityKind = "recipes"
	kindPlants  entityKind = "plants"
)

var entityKinds = []string{string(kindRecipes), string(kindPlants)}

func parseEntityKind(s string) (entityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recipes", "recipe":
		return kindRecipes, nil
	case "plants", "plant":
		return kindPlants, nil
	default:
		return "", common.NewUserError(
			fmt.Sprintf("unknown collection %q: expected recipes or plants", s), nil)
	}
}

// entity bundles everything the commands need to handle one record kind.
type entity[T any] struct {
	name     string
	schema   *csvimport.Schema[T]
	template string
	describe func(T) string
	list     func(ctx context.Context) ([]T, error)
	commit   csvimport.Committer[T]
	// summary renders a record as a row under summaryHeaders.
	summary        func(T) []string
	summaryHeaders []string
}

// recipeEntity describes recipes. store may be nil for commands that never
// read or write records.
func recipeEntity(store service.RecipeStore) entity[model.Recipe] {
	e := entity[model.Recipe]{
		name:     "recipe",
		schema:   csvimport.RecipeSchema(),
		template: csvimport.RecipeTemplate,
		describe: cli.DescribeRecipe,
		summary: func(r model.Recipe) []string {
			return []string{
				r.Title,
				string(r.Category),
				string(r.Difficulty),
				strconv.Itoa(r.Servings),
				strconv.Itoa(r.TotalTime()) + " min",
			}
		},
		summaryHeaders: []string{"Title", "Category", "Difficulty", "Serves", "Time"},
	}
	if store != nil {
		e.list = store.GetRecipes
		e.commit = csvimport.CommitterFunc[model.Recipe](store.CommitRecipeImport)
	}
	return e
}

// plantEntity describes plants. store may be nil for commands that never
// read or write records.
func plantEntity(store service.PlantStore) entity[model.Plant] {
	e := entity[model.Plant]{
		name:     "plant",
		schema:   csvimport.PlantSchema(),
		template: csvimport.PlantTemplate,
		describe: cli.DescribePlant,
		summary: func(p model.Plant) []string {
			edible := "no"
			if p.Edibility.Safe {
				edible = "yes"
			}
			return []string{
				p.Name,
				p.LatinName,
				string(p.Category),
				edible,
				strconv.Itoa(p.Availability.Count()) + " months",
			}
		},
		summaryHeaders: []string{"Name", "Latin name", "Category", "Edible", "Season"},
	}
	if store != nil {
		e.list = store.GetPlants
		e.commit = csvimport.CommitterFunc[model.Plant](store.CommitPlantImport)
	}
	return e
}

// templateSample returns the example row of the entity's CSV template as
// plain cell values.
func (e entity[T]) templateSample() []string {
	lines := strings.SplitN(e.template, "\n", 3)
	if len(lines) < 2 {
		return nil
	}
	return csvimport.Tokenize(lines[1])
}
