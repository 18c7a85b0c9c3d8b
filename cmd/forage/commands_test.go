package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/forage/internal/csvimport"
	"github.com/Veraticus/forage/internal/model"
	"github.com/Veraticus/forage/internal/spreadsheet"
	"github.com/Veraticus/forage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityKind(t *testing.T) {
	tests := []struct {
		input   string
		want    entityKind
		wantErr bool
	}{
		{input: "recipes", want: kindRecipes},
		{input: "Recipe", want: kindRecipes},
		{input: " plants ", want: kindPlants},
		{input: "plant", want: kindPlants},
		{input: "mushrooms", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseEntityKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateSample(t *testing.T) {
	sample := recipeEntity(nil).templateSample()
	require.Len(t, sample, len(csvimport.RecipeColumns))
	assert.Equal(t, "Elderflower Cordial", sample[0])

	plants := plantEntity(nil).templateSample()
	require.Len(t, plants, len(csvimport.PlantColumns))
	assert.Equal(t, "Wild Garlic", plants[0])
}

func TestWriteTemplate(t *testing.T) {
	var csv bytes.Buffer
	require.NoError(t, writeTemplate(&csv, plantEntity(nil), formatCSV))
	assert.Equal(t, csvimport.PlantTemplate, csv.String())

	var xlsx bytes.Buffer
	require.NoError(t, writeTemplate(&xlsx, recipeEntity(nil), formatXLSX))
	rows, err := spreadsheet.ReadRows(&xlsx, "recipes")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "title *", rows[0][0])
	assert.Equal(t, "tags", rows[0][len(rows[0])-1])
	assert.Equal(t, "Elderflower Cordial", rows[1][0])
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat(formatCSV, ""))
	assert.NoError(t, validateFormat(formatXLSX, "out.xlsx"))
	assert.Error(t, validateFormat(formatXLSX, ""))
	assert.Error(t, validateFormat("pdf", "out.pdf"))
}

func TestExportRecords(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t)
	require.NoError(t, store.CommitRecipeImport(ctx, []model.Recipe{
		testutil.Recipe("r1", "Nettle Soup"),
		testutil.Recipe("r2", `Rosehip "Jelly"`),
	}, nil))

	var csv bytes.Buffer
	require.NoError(t, exportRecords(ctx, &csv, recipeEntity(store), formatCSV))
	lines := strings.Split(strings.TrimSuffix(csv.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(csvimport.RecipeColumns, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[2], `"Rosehip ""Jelly""",`))

	reparsed := csvimport.NewParser(csvimport.RecipeSchema()).Parse(csv.String())
	require.Empty(t, reparsed.Errors)
	assert.Equal(t, "Nettle Soup", reparsed.Records[0].Title)
	assert.Equal(t, `Rosehip "Jelly"`, reparsed.Records[1].Title)

	var xlsx bytes.Buffer
	require.NoError(t, exportRecords(ctx, &xlsx, recipeEntity(store), formatXLSX))
	rows, err := spreadsheet.ReadRows(&xlsx, "recipes")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, `Rosehip "Jelly"`, rows[2][0])
}

func TestListRecords(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t)

	var empty bytes.Buffer
	require.NoError(t, listRecords(ctx, &empty, plantEntity(store)))
	assert.Contains(t, empty.String(), "No plants stored yet")

	require.NoError(t, store.CommitPlantImport(ctx, []model.Plant{testutil.Plant("p1", "Sorrel", "Rumex acetosa")}, nil))

	var out bytes.Buffer
	require.NoError(t, listRecords(ctx, &out, plantEntity(store)))
	assert.Contains(t, out.String(), "1 plants")
	assert.Contains(t, out.String(), "Latin name")
	assert.Contains(t, out.String(), "Rumex acetosa")
	assert.Contains(t, out.String(), "1 months")
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	db := filepath.Join(dir, "data", "forage.db")
	templatePath := filepath.Join(dir, "plants.csv")
	exportPath := filepath.Join(dir, "export.csv")

	out, err := executeCommand(t, "template", "plants", "--database", db, "--output", templatePath)
	require.NoError(t, err, out)

	out, err = executeCommand(t, "import", "plants", templatePath, "--database", db, "--on-duplicate", "skip")
	require.NoError(t, err, out)
	assert.Contains(t, out, "1 added, 0 replaced, 0 skipped")

	out, err = executeCommand(t, "import", "plants", templatePath, "--database", db, "--on-duplicate", "rename")
	require.NoError(t, err, out)
	assert.Contains(t, out, "1 added, 0 replaced, 0 skipped")

	out, err = executeCommand(t, "list", "plants", "--database", db)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Wild Garlic (Imported)")

	out, err = executeCommand(t, "export", "plants", "--database", db, "--format", "csv", "--output", exportPath)
	require.NoError(t, err, out)
	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\n"))

	out, err = executeCommand(t, "migrate", "--status", "--database", db)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Current version: 2")

	out, err = executeCommand(t, "seed", "--database", db)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Seeded 0 plants and 3 recipes")

	out, err = executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "forage version")

	_, err = executeCommand(t, "import", "fungi", templatePath, "--database", db)
	assert.Error(t, err)
}
