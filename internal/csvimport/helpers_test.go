package csvimport

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/forage/internal/model"
)

const recipeHeader = "title,description,category,difficulty,prepTime,cookTime,servings,season,requiredFinds,ingredients,instructions,tags"

const plantHeader = "name,latinName,family,category,keyFeatures,safe,conservationStatus"

// sequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRecipeParser() *Parser[model.Recipe] {
	return NewParser(RecipeSchema(), WithIDGenerator(sequentialIDs("recipe")), WithLogger(quietLogger()))
}

func newPlantParser() *Parser[model.Plant] {
	return NewParser(PlantSchema(), WithIDGenerator(sequentialIDs("plant")), WithLogger(quietLogger()))
}
