package storage

import (
	"encoding/json"
	"fmt"

	"github.com/Veraticus/forage/internal/model"
)

// encodeJSON stores a list or group field as a JSON column value.
func encodeJSON(field string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", field, err)
	}
	return string(data), nil
}

func decodeJSON(field, data string, v any) error {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", field, err)
	}
	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// normalizeRecipe replaces nil lists with empty ones so that stored and
// loaded records compare equal to freshly parsed ones.
func normalizeRecipe(r *model.Recipe) {
	r.Season = nonNil(r.Season)
	r.RequiredFinds = nonNil(r.RequiredFinds)
	r.Ingredients = nonNil(r.Ingredients)
	r.Instructions = nonNil(r.Instructions)
	r.Tags = nonNil(r.Tags)
}

func normalizePlant(p *model.Plant) {
	p.Images = nonNil(p.Images)
	p.Identification.KeyFeatures = nonNil(p.Identification.KeyFeatures)
	p.Identification.Habitat = nonNil(p.Identification.Habitat)
	p.Identification.Season = nonNil(p.Identification.Season)
	p.Identification.LookAlikes = nonNil(p.Identification.LookAlikes)
	p.Edibility.Preparation = nonNil(p.Edibility.Preparation)
	p.Edibility.Warnings = nonNil(p.Edibility.Warnings)
	p.Edibility.ToxicParts = nonNil(p.Edibility.ToxicParts)
	p.Uses.Culinary = nonNil(p.Uses.Culinary)
	p.Uses.Medicinal = nonNil(p.Uses.Medicinal)
	p.Uses.Traditional = nonNil(p.Uses.Traditional)
	p.Uses.Recipes = nonNil(p.Uses.Recipes)
	p.Ethics.Guidelines = nonNil(p.Ethics.Guidelines)
}
