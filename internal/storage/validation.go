// Package storage provides the data persistence layer for the forage application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/forage/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrInvalidRecipe = errors.New("invalid recipe")
	ErrInvalidPlant  = errors.New("invalid plant")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecipes validates every recipe in a batch.
func validateRecipes(recipes []model.Recipe) error {
	for i := range recipes {
		if err := validateRecipe(&recipes[i]); err != nil {
			return fmt.Errorf("recipe at index %d: %w", i, err)
		}
	}
	return nil
}

func validateRecipe(r *model.Recipe) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidRecipe)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidRecipe)
	}
	return nil
}

// validatePlants validates every plant in a batch.
func validatePlants(plants []model.Plant) error {
	for i := range plants {
		if err := validatePlant(&plants[i]); err != nil {
			return fmt.Errorf("plant at index %d: %w", i, err)
		}
	}
	return nil
}

func validatePlant(p *model.Plant) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidPlant)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidPlant)
	}
	return nil
}
