package csvimport

import (
	"strconv"

	"github.com/Veraticus/forage/internal/model"
)

// RecipeColumns is the header order for recipe templates and exports.
var RecipeColumns = []string{
	"title", "description", "category", "difficulty",
	"prepTime", "cookTime", "servings",
	"season", "requiredFinds", "ingredients", "instructions", "tags",
}

// RecipeSchema returns the schema for recipe documents.
func RecipeSchema() *Schema[model.Recipe] {
	s := &Schema[model.Recipe]{
		Entity:   "recipe",
		Columns:  RecipeColumns,
		Required: []string{"title", "description", "category", "difficulty"},
		Enums: []EnumField{
			{Name: "category", Allowed: enumValues(model.RecipeCategories)},
			{Name: "difficulty", Allowed: enumValues(model.Difficulties)},
		},
		Arrays: []string{"season", "requiredFinds", "ingredients", "instructions", "tags"},
		Ints: []IntField{
			{Name: "prepTime", Min: 0, Default: 0},
			{Name: "cookTime", Min: 0, Default: 0},
			{Name: "servings", Min: 1, Default: 1},
		},
		Check: StructInvariants[model.Recipe](map[string]string{
			"Recipe.Ingredients":  "recipe must have at least one ingredient",
			"Recipe.Instructions": "recipe must have at least one instruction",
		}),
		Same: func(candidate, existing model.Recipe) bool {
			return SameText(candidate.Title, existing.Title)
		},
		ID: func(r model.Recipe) string { return r.ID },
		WithID: func(r model.Recipe, id string) model.Recipe {
			r.ID = id
			return r
		},
		Renamed: func(r model.Recipe) model.Recipe {
			r.Title += ImportedSuffix
			return r
		},
		Row: recipeRow,
	}

	s.Build = func(f Fields, id string) model.Recipe {
		return model.Recipe{
			ID:            id,
			Title:         f.String("title"),
			Description:   f.String("description"),
			Category:      model.RecipeCategory(f.String("category")),
			Difficulty:    model.Difficulty(f.String("difficulty")),
			PrepTime:      f.Int("prepTime", s.IntDefault("prepTime")),
			CookTime:      f.Int("cookTime", s.IntDefault("cookTime")),
			Servings:      f.Int("servings", s.IntDefault("servings")),
			Season:        f.Array("season"),
			RequiredFinds: f.Array("requiredFinds"),
			Ingredients:   f.Array("ingredients"),
			Instructions:  f.Array("instructions"),
			Tags:          f.Array("tags"),
		}
	}

	return s
}

func recipeRow(r model.Recipe) []string {
	return []string{
		r.Title,
		r.Description,
		string(r.Category),
		string(r.Difficulty),
		strconv.Itoa(r.PrepTime),
		strconv.Itoa(r.CookTime),
		strconv.Itoa(r.Servings),
		JoinArray(r.Season),
		JoinArray(r.RequiredFinds),
		JoinArray(r.Ingredients),
		JoinArray(r.Instructions),
		JoinArray(r.Tags),
	}
}

func enumValues[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
