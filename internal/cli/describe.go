package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/forage/internal/model"
)

// DescribeRecipe renders the fields a reviewer needs to tell two recipes apart.
func DescribeRecipe(r model.Recipe) string {
	lines := []string{
		r.Title,
		SubtleStyle.Render(fmt.Sprintf("%s · %s · serves %d · %d min", r.Category, r.Difficulty, r.Servings, r.TotalTime())),
		fmt.Sprintf("%d ingredients, %d steps", len(r.Ingredients), len(r.Instructions)),
	}
	if r.Description != "" {
		lines = append(lines, truncate(r.Description, 60))
	}
	return strings.Join(lines, "\n")
}

// DescribePlant renders the fields a reviewer needs to tell two plants apart.
func DescribePlant(p model.Plant) string {
	safety := WarningStyle.Render("not safe to eat")
	if p.Edibility.Safe {
		safety = SuccessStyle.Render("edible")
	}

	lines := []string{
		fmt.Sprintf("%s (%s)", p.Name, p.LatinName),
		SubtleStyle.Render(fmt.Sprintf("%s · %s · %s", p.Family, p.Category, availabilityRange(p.Availability))),
		safety,
	}
	if len(p.Identification.KeyFeatures) > 0 {
		lines = append(lines, "• "+strings.Join(p.Identification.KeyFeatures, "\n• "))
	}
	return strings.Join(lines, "\n")
}

func availabilityRange(m model.Months) string {
	if m.Count() == 0 {
		return "no season"
	}
	var months []string
	for month := time.January; month <= time.December; month++ {
		if m.In(month) {
			months = append(months, month.String()[:3])
		}
	}
	return strings.Join(months, " ")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
