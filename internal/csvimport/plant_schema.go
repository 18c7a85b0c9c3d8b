package csvimport

import (
	"time"

	"github.com/Veraticus/forage/internal/model"
)

// PlaceholderImageURL is used when a plant row supplies no image at all.
const PlaceholderImageURL = "https://placehold.co/600x400?text=No+Image"

// MonthColumns are the availability columns, January first.
var MonthColumns = []string{
	"inJan", "inFeb", "inMar", "inApr", "inMay", "inJun",
	"inJul", "inAug", "inSep", "inOct", "inNov", "inDec",
}

// PlantColumns is the header order for plant templates and exports.
var PlantColumns = append([]string{
	"name", "latinName", "family", "category", "description",
	"heroImage", "images",
	"keyFeatures", "habitat", "season", "lookAlikes",
	"safe", "preparation", "warnings", "toxicParts",
	"culinary", "medicinal", "traditional", "recipes",
	"conservationStatus", "ethics",
}, MonthColumns...)

// PlantSchema returns the schema for plant documents.
func PlantSchema() *Schema[model.Plant] {
	bools := []BoolField{{Name: "safe", Default: false}}
	for _, m := range MonthColumns {
		bools = append(bools, BoolField{Name: m, Default: false})
	}

	s := &Schema[model.Plant]{
		Entity:   "plant",
		Columns:  PlantColumns,
		Required: []string{"name", "latinName", "family", "category"},
		Enums: []EnumField{
			{Name: "category", Allowed: enumValues(model.PlantCategories)},
			{Name: "conservationStatus", Allowed: enumValues(model.ConservationStatuses)},
		},
		Arrays: []string{
			"images", "keyFeatures", "habitat", "season", "lookAlikes",
			"preparation", "warnings", "toxicParts",
			"culinary", "medicinal", "traditional", "recipes", "ethics",
		},
		Bools: bools,
		Check: StructInvariants[model.Plant](map[string]string{
			"Plant.Identification.KeyFeatures": "plant must have at least one key identification feature",
		}),
		Same: func(candidate, existing model.Plant) bool {
			return SameText(candidate.Name, existing.Name) ||
				SameText(candidate.LatinName, existing.LatinName)
		},
		ID: func(p model.Plant) string { return p.ID },
		WithID: func(p model.Plant, id string) model.Plant {
			p.ID = id
			return p
		},
		Renamed: func(p model.Plant) model.Plant {
			p.Name += ImportedSuffix
			return p
		},
		Row: plantRow,
	}

	s.Build = func(f Fields, id string) model.Plant {
		p := model.Plant{
			ID:          id,
			Name:        f.String("name"),
			LatinName:   f.String("latinName"),
			Family:      f.String("family"),
			Category:    model.PlantCategory(f.String("category")),
			Description: f.String("description"),
			HeroImage:   f.String("heroImage"),
			Images:      f.Array("images"),
			Identification: model.Identification{
				KeyFeatures: f.Array("keyFeatures"),
				Habitat:     f.Array("habitat"),
				Season:      f.Array("season"),
				LookAlikes:  f.Array("lookAlikes"),
			},
			Edibility: model.Edibility{
				Safe:        f.Bool("safe", s.BoolDefault("safe")),
				Preparation: f.Array("preparation"),
				Warnings:    f.Array("warnings"),
				ToxicParts:  f.Array("toxicParts"),
			},
			Uses: model.Uses{
				Culinary:    f.Array("culinary"),
				Medicinal:   f.Array("medicinal"),
				Traditional: f.Array("traditional"),
				Recipes:     f.Array("recipes"),
			},
			Ethics: model.Ethics{
				ConservationStatus: model.ConservationStatus(f.String("conservationStatus")),
				Guidelines:         f.Array("ethics"),
			},
		}

		for i, col := range MonthColumns {
			p.Availability.Set(time.Month(i+1), f.Bool(col, s.BoolDefault(col)))
		}

		if len(p.Images) == 0 {
			if p.HeroImage != "" {
				p.Images = []string{p.HeroImage}
			} else {
				p.Images = []string{PlaceholderImageURL}
			}
		}

		return p
	}

	return s
}

func plantRow(p model.Plant) []string {
	row := []string{
		p.Name,
		p.LatinName,
		p.Family,
		string(p.Category),
		p.Description,
		p.HeroImage,
		JoinArray(p.Images),
		JoinArray(p.Identification.KeyFeatures),
		JoinArray(p.Identification.Habitat),
		JoinArray(p.Identification.Season),
		JoinArray(p.Identification.LookAlikes),
		FormatBool(p.Edibility.Safe),
		JoinArray(p.Edibility.Preparation),
		JoinArray(p.Edibility.Warnings),
		JoinArray(p.Edibility.ToxicParts),
		JoinArray(p.Uses.Culinary),
		JoinArray(p.Uses.Medicinal),
		JoinArray(p.Uses.Traditional),
		JoinArray(p.Uses.Recipes),
		string(p.Ethics.ConservationStatus),
		JoinArray(p.Ethics.Guidelines),
	}
	for i := range MonthColumns {
		row = append(row, FormatBool(p.Availability.In(time.Month(i+1))))
	}
	return row
}
