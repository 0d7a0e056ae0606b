package recipes

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"survivalist-gamedata/core/gamedata"
	"survivalist-gamedata/core/markup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const recipesXML = `<?xml version="1.0" encoding="utf-8"?>
<RecipeList>
  <Recipes>
    <Recipe>
      <UniqueID>Cooking_Stew</UniqueID>
      <SkillType>Cooking</SkillType>
      <RecipeType>Campfire_SpitRoast</RecipeType>
      <ProductPrototypeName>MeatStew</ProductPrototypeName>
      <ProductAmount>1</ProductAmount>
      <Ingredients>
        <Ingredient><PrototypeNames><string>RawMeat</string></PrototypeNames><Amount>2</Amount></Ingredient>
      </Ingredients>
    </Recipe>
    <Recipe>
      <UniqueID>Carpentry_Plank</UniqueID>
      <SkillType>Carpentry</SkillType>
      <SkillLevel>1</SkillLevel>
      <ProductType>Plank</ProductType>
      <ProductAmount>2</ProductAmount>
      <Ingredients>
        <Ingredient><PrototypeNames><string>Wood</string></PrototypeNames><Amount>3</Amount></Ingredient>
      </Ingredients>
    </Recipe>
    <Recipe>
      <UniqueID>Carpentry_Old</UniqueID>
      <SkillType>Carpentry</SkillType>
      <Deprecated>true</Deprecated>
      <ProductType>OldPlank</ProductType>
    </Recipe>
  </Recipes>
</RecipeList>`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testConfig(out string) Config {
	return Config{
		SkipDeprecated: true,
		OrderBy:        []string{"SkillType", "SkillLevel", "Product"},
		CSVFile:        filepath.Join(out, "recipes-{version}.csv"),
		CSVFields:      []string{"UniqueID", "Product", "Ingredients", "RecipeType"},
		SteamFile:      filepath.Join(out, "recipes-{version}.txt"),
		SteamTables: SteamTables{
			DefaultColumns: markup.Columns{{Field: "Product", Header: "Product"}, {Field: "Ingredients", Header: "Ingredients"}},
			Tables: []TableConfig{
				{SkillType: "Carpentry"},
				{SkillType: "Cooking", RecipeType: "Campfire"},
			},
		},
	}
}

func TestLoad(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Data", RecipesFile), recipesXML)
	writeFile(t, filepath.Join(base, "DLC", RecipesFile), `<RecipeList><Recipes><Recipe><UniqueID>Only</UniqueID></Recipe></Recipes></RecipeList>`)
	writeFile(t, filepath.Join(base, "Empty", RecipesFile), `<RecipeList><Recipes/></RecipeList>`)

	src := gamedata.NewSource(gamedata.Config{BaseDir: base, Dirs: []string{"Data", "Missing", "DLC", "Empty"}})
	records, err := Load(src, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, records, 4)
	id, _ := records[3].Node.Field("UniqueID")
	assert.Equal(t, "Only", id)
}

func TestLoad_WrongRoot(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Data", RecipesFile), `<EquipmentPrototype/>`)

	src := gamedata.NewSource(gamedata.Config{BaseDir: base, Dirs: []string{"Data"}})
	_, err := Load(src, zap.NewNop())
	assert.ErrorIs(t, err, ErrNotRecipeList)
}

func TestService_Run(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Data", RecipesFile), recipesXML)
	out := t.TempDir()
	core, logs := observer.New(zapcore.WarnLevel)

	src := gamedata.NewSource(gamedata.Config{BaseDir: base, Dirs: []string{"Data"}})
	svc := NewService(testConfig(out), src, markup.NewExpander(nil), zap.New(core))
	assert.Equal(t, "recipes", svc.Name())

	res, err := svc.Run(context.Background(), "0.9")
	require.NoError(t, err)

	assert.Equal(t, 3, res.Loaded)
	assert.Equal(t, 2, res.Matched)
	assert.Equal(t, 1, res.Skipped)
	assert.True(t, res.Reconciled())
	assert.Zero(t, logs.Len())

	csvData, err := os.ReadFile(filepath.Join(out, "recipes-0.9.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"UniqueID,Product,Ingredients,RecipeType\n"+
			"Carpentry_Old,OldPlank,,Inventory\n"+
			"Carpentry_Plank,Plank (2),Wood (3),Inventory\n"+
			"Cooking_Stew,MeatStew (1),RawMeat (2),Campfire\n",
		string(csvData))

	steam, err := os.ReadFile(filepath.Join(out, "recipes-0.9.txt"))
	require.NoError(t, err)
	text := string(steam)
	assert.Equal(t, 2, strings.Count(text, "[table]"))
	assert.Contains(t, text, "  [td]Plank (2)[/td]\n  [td]Wood (3)[/td]\n")
	assert.Contains(t, text, "  [td]Meat Stew (1)[/td]\n  [td]Raw Meat (2)[/td]\n")
	assert.NotContains(t, text, "OldPlank")
}

func TestService_Run_Mismatch(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Data", RecipesFile), recipesXML)
	cfg := testConfig(t.TempDir())
	cfg.SkipDeprecated = false
	cfg.SteamTables.Tables = cfg.SteamTables.Tables[:1]
	core, logs := observer.New(zapcore.WarnLevel)

	src := gamedata.NewSource(gamedata.Config{BaseDir: base, Dirs: []string{"Data"}})
	res, err := NewService(cfg, src, markup.NewExpander(nil), zap.New(core)).Run(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Matched)
	assert.Equal(t, 0, res.Skipped)
	assert.False(t, res.Reconciled())
	assert.Equal(t, 1, logs.FilterMessageSnippet("SkillTypes").Len())
}

func TestConfig(t *testing.T) {
	cfg := testConfig("out")
	cfg.SetDefaults()
	assert.Equal(t, AnyRecipeType, cfg.SteamTables.Tables[0].RecipeType)
	assert.Equal(t, "Campfire", cfg.SteamTables.Tables[1].RecipeType)
	assert.NoError(t, cfg.Validate())

	cfg.SteamTables.Tables = append(cfg.SteamTables.Tables, TableConfig{})
	assert.Error(t, cfg.Validate())

	cfg = testConfig("out")
	cfg.SteamFile = ""
	assert.Error(t, cfg.Validate())
}
