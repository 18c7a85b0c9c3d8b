package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/forage/internal/common"
	"github.com/Veraticus/forage/internal/model"
)

const recipeColumns = `id, title, description, category, difficulty, prep_time, cook_time, servings,
	season, required_finds, ingredients, instructions, tags`

// GetRecipes retrieves every stored recipe in insertion order.
func (s *SQLiteStorage) GetRecipes(ctx context.Context) ([]model.Recipe, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var recipes []model.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, rows.Err()
}

// GetRecipeByID retrieves a single recipe.
func (s *SQLiteStorage) GetRecipeByID(ctx context.Context, id string) (*model.Recipe, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	r, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("recipe %q: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteRecipe removes a recipe by ID.
func (s *SQLiteStorage) DeleteRecipe(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return s.deleteByID(ctx, "recipes", id)
}

// CountRecipes returns the number of stored recipes.
func (s *SQLiteStorage) CountRecipes(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	return s.count(ctx, "recipes")
}

// CommitRecipeImport inserts new recipes and replaces existing ones in a
// single transaction. An insert whose ID is already stored fails with
// common.ErrDuplicateEntry and an update whose ID is not stored fails with
// common.ErrNotFound; either way nothing is written.
func (s *SQLiteStorage) CommitRecipeImport(ctx context.Context, inserts, updates []model.Recipe) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecipes(inserts); err != nil {
		return err
	}
	if err := validateRecipes(updates); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for i := range inserts {
			if err := insertRecipe(ctx, tx, inserts[i]); err != nil {
				return err
			}
		}
		now := time.Now()
		for i := range updates {
			if err := updateRecipe(ctx, tx, updates[i], now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Committed recipe import",
		"inserted", len(inserts),
		"replaced", len(updates))
	return nil
}

func insertRecipe(ctx context.Context, q queryable, r model.Recipe) error {
	args, err := recipeArgs(r)
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO recipes (`+recipeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, args...)
	if isUniqueViolation(err) {
		return fmt.Errorf("recipe %q: %w", r.ID, common.ErrDuplicateEntry)
	}
	if err != nil {
		return fmt.Errorf("failed to insert recipe %q: %w", r.ID, err)
	}
	return nil
}

func updateRecipe(ctx context.Context, q queryable, r model.Recipe, now time.Time) error {
	args, err := recipeArgs(r)
	if err != nil {
		return err
	}

	// args[0] is the id; move it to the WHERE clause.
	args = append(args[1:], now, r.ID)
	result, err := q.ExecContext(ctx, `
		UPDATE recipes SET
			title = ?, description = ?, category = ?, difficulty = ?,
			prep_time = ?, cook_time = ?, servings = ?,
			season = ?, required_finds = ?, ingredients = ?, instructions = ?, tags = ?,
			updated_at = ?
		WHERE id = ?
	`, args...)
	if err != nil {
		return fmt.Errorf("failed to update recipe %q: %w", r.ID, err)
	}
	return expectOneRow(result, "recipe", r.ID)
}

func recipeArgs(r model.Recipe) ([]any, error) {
	normalizeRecipe(&r)

	lists := []struct {
		name   string
		values []string
	}{
		{"season", r.Season},
		{"requiredFinds", r.RequiredFinds},
		{"ingredients", r.Ingredients},
		{"instructions", r.Instructions},
		{"tags", r.Tags},
	}

	args := []any{r.ID, r.Title, r.Description, string(r.Category), string(r.Difficulty),
		r.PrepTime, r.CookTime, r.Servings}
	for _, l := range lists {
		encoded, err := encodeJSON(l.name, l.values)
		if err != nil {
			return nil, err
		}
		args = append(args, encoded)
	}
	return args, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row scanner) (model.Recipe, error) {
	var r model.Recipe
	var category, difficulty string
	var season, requiredFinds, ingredients, instructions, tags string

	err := row.Scan(&r.ID, &r.Title, &r.Description, &category, &difficulty,
		&r.PrepTime, &r.CookTime, &r.Servings,
		&season, &requiredFinds, &ingredients, &instructions, &tags)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("failed to scan recipe: %w", err)
	}

	r.Category = model.RecipeCategory(category)
	r.Difficulty = model.Difficulty(difficulty)

	for _, f := range []struct {
		name string
		data string
		dest *[]string
	}{
		{"season", season, &r.Season},
		{"requiredFinds", requiredFinds, &r.RequiredFinds},
		{"ingredients", ingredients, &r.Ingredients},
		{"instructions", instructions, &r.Instructions},
		{"tags", tags, &r.Tags},
	} {
		if err := decodeJSON(f.name, f.data, f.dest); err != nil {
			return r, err
		}
	}

	normalizeRecipe(&r)
	return r, nil
}
