package csvimport

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	structValidator     *validator.Validate
	structValidatorOnce sync.Once
)

func getValidator() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValidator
}

// StructInvariants returns a Check function that validates the `validate`
// struct tags on a record. messages maps a field's struct namespace (for
// example "Recipe.Ingredients") to the text reported when it fails.
func StructInvariants[T any](messages map[string]string) func(T) error {
	return func(record T) error {
		err := getValidator().Struct(record)
		if err == nil {
			return nil
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("failed to check record: %w", err)
		}

		first := fieldErrs[0]
		if msg, ok := messages[first.StructNamespace()]; ok {
			return invariantError(msg)
		}
		return invariantError(fmt.Sprintf("%s failed %s check", first.Field(), first.Tag()))
	}
}
