// Package model defines the core domain models used throughout the application.
package model

// RecipeCategory groups recipes by what they produce.
type RecipeCategory string

// Recipe category constants.
const (
	RecipeDrinks    RecipeCategory = "drinks"
	RecipeMeals     RecipeCategory = "meals"
	RecipePreserves RecipeCategory = "preserves"
	RecipeMedicinal RecipeCategory = "medicinal"
)

// RecipeCategories lists every valid recipe category in display order.
var RecipeCategories = []RecipeCategory{RecipeDrinks, RecipeMeals, RecipePreserves, RecipeMedicinal}

// Difficulty indicates how much skill a recipe needs.
type Difficulty string

// Difficulty constants.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every valid difficulty in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Recipe is a preparation that consumes foraged ingredients.
type Recipe struct {
	ID            string         `json:"id" yaml:"id"`
	Title         string         `json:"title" yaml:"title"`
	Description   string         `json:"description" yaml:"description"`
	Category      RecipeCategory `json:"category" yaml:"category"`
	Difficulty    Difficulty     `json:"difficulty" yaml:"difficulty"`
	Season        []string       `json:"season" yaml:"season"`
	RequiredFinds []string       `json:"requiredFinds" yaml:"requiredFinds"`
	Ingredients   []string       `json:"ingredients" yaml:"ingredients" validate:"min=1"`
	Instructions  []string       `json:"instructions" yaml:"instructions" validate:"min=1"`
	Tags          []string       `json:"tags" yaml:"tags"`
	PrepTime      int            `json:"prepTime" yaml:"prepTime"`
	CookTime      int            `json:"cookTime" yaml:"cookTime"`
	Servings      int            `json:"servings" yaml:"servings"`
}

// TotalTime returns prep plus cook time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}
