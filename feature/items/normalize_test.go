package items

import (
	"testing"

	"survivalist-gamedata/core/tabular"
	"survivalist-gamedata/core/xmltree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func record(t *testing.T, file, xml string) Record {
	t.Helper()
	root, err := xmltree.ParseBytes([]byte(xml))
	require.NoError(t, err)
	return Record{Kind: KindOf(root.Name), File: file, Node: root}
}

func TestDecode_UnknownKind(t *testing.T) {
	rec := record(t, "Odd.xml", `<FurniturePrototype><NativeName>Chair</NativeName></FurniturePrototype>`)

	_, err := Decode(rec, zap.NewNop())
	assert.ErrorIs(t, err, ErrUnknownRecordKind)
	assert.Contains(t, err.Error(), "Odd.xml")
}

func TestDecode_MissingNativeName(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	rec := record(t, "Mystery.xml", `<EquipmentPrototype><Category>9:Misc</Category></EquipmentPrototype>`)

	row, err := Decode(rec, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, "Mystery.xml", row["NativeName"])
	assert.Equal(t, 1, logs.FilterMessageSnippet("NativeName").Len())
}

func TestDecode_LootLocations(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{
			name: "grouped by effective scarcity",
			xml: `<EquipmentPrototype><NativeName>Knife</NativeName><Scarcity>Common</Scarcity>
				<LootableFromLocations>
					<LootableFrom><Name>House</Name></LootableFrom>
					<LootableFrom><Name>Shed</Name><OverrideScarcity>Rare</OverrideScarcity></LootableFrom>
					<LootableFrom><Name>Barn</Name></LootableFrom>
				</LootableFromLocations></EquipmentPrototype>`,
			want: "Common at House, Barn\nRare at Shed",
		},
		{
			name: "single location",
			xml: `<EquipmentPrototype><NativeName>Knife</NativeName><Scarcity>Rare</Scarcity>
				<LootableFromLocations><LootableFrom><Name>Bunker</Name></LootableFrom></LootableFromLocations>
				</EquipmentPrototype>`,
			want: "Rare at Bunker",
		},
		{
			name: "no scarcity",
			xml: `<EquipmentPrototype><NativeName>Knife</NativeName>
				<LootableFromLocations><LootableFrom><Name>Bunker</Name></LootableFrom></LootableFromLocations>
				</EquipmentPrototype>`,
			want: "",
		},
		{
			name: "no locations",
			xml:  `<EquipmentPrototype><NativeName>Knife</NativeName><Scarcity>Rare</Scarcity></EquipmentPrototype>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := Decode(record(t, "Knife.xml", tt.xml), zap.NewNop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, row["LootLocations"])
		})
	}
}

func TestDecode_ListFields(t *testing.T) {
	rec := record(t, "Rifle.xml", `<EquipmentPrototype>
		<NativeName>Rifle</NativeName>
		<AmmoTypes><string>Rifle</string><string>Slug</string></AmmoTypes>
		<GiftFor><string>Hunter</string></GiftFor>
		<BadGiftFor/>
		<FoodForAnimal><BaseObjectType>Dog</BaseObjectType><BaseObjectType>Cat</BaseObjectType></FoodForAnimal>
		<Stats><Weight>3</Weight><Bulk>2</Bulk></Stats>
	</EquipmentPrototype>`)

	row, err := Decode(rec, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "Rifle, Slug", row["AmmoTypes"])
	assert.Equal(t, "Hunter", row["GiftFor"])
	assert.Equal(t, "", row["BadGiftFor"])
	assert.Equal(t, "Dog, Cat", row["FoodForAnimal"])
	assert.Equal(t, "3, 2", row["Stats"])
}

func TestDecode_Liquid(t *testing.T) {
	rec := record(t, "Water.xml", `<LiquidPrototype><NativeName>Water</NativeName><Category>5:Food/Drink</Category></LiquidPrototype>`)

	row, err := Decode(rec, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "Water", row["NativeName"])
	assert.Equal(t, "", row["LootLocations"])
}

func TestNormalize_Category(t *testing.T) {
	tests := []struct {
		name string
		row  tabular.Row
		want string
	}{
		{"seeds", tabular.Row{"NativeName": "CornSeeds", "Category": "5:Food/Seeds"}, "5:Seeds"},
		{"backpacks", tabular.Row{"NativeName": "Rucksack", "Category": "4:Clothing/Backpacks"}, "4:Backpacks"},
		{"sugar", tabular.Row{"NativeName": "Sugar", "Category": "5:Food/Ingredients"}, "5:Food/Dishes"},
		{"urine", tabular.Row{"NativeName": "Urine", "Category": "9:Misc"}, "5:Food/Drink"},
		{"name containing sugar", tabular.Row{"NativeName": "SugarCane", "Category": "5:Food/Plants"}, "5:Food/Plants"},
		{"untouched", tabular.Row{"NativeName": "Axe", "Category": "2:Weapons/Melee"}, "2:Weapons/Melee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, Normalize(tt.row))
			assert.Equal(t, tt.want, tt.row["Category"])
		})
	}
}

func TestNormalize_Progressions(t *testing.T) {
	row := tabular.Row{
		"Damage":                          "10",
		"DamageBonusPerSkillLevel":        "0.5",
		"Range":                           "20",
		"RangeBonusPerSkillLevel":         "1.2",
		"AccurateRange":                   "8",
		"AccurateRangeBonusPerSkillLevel": "1",
		"CarryWeight":                     "30",
		"CarryWeightBonusPerSkillLevel":   "2",
	}

	require.NoError(t, Normalize(row))
	assert.Equal(t, "10.00 / 12.50", row["Damage"])
	assert.Equal(t, "20 / 26", row["Range"])
	assert.Equal(t, "8 / 13", row["AccurateRange"])
	assert.Equal(t, "30 / 40", row["CarryWeight"])
}

func TestNormalize_MalformedProgression(t *testing.T) {
	row := tabular.Row{"Damage": "lots", "DamageBonusPerSkillLevel": "0.5"}
	err := Normalize(row)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Damage")
}

func TestNormalize_SkillBonus(t *testing.T) {
	row := tabular.Row{"SkillBonus": "5", "SkillBonusType": "Hunting"}
	require.NoError(t, Normalize(row))
	assert.Equal(t, "5 Hunting", row["SkillBonus"])
}

func TestNormalize_PerFlOz(t *testing.T) {
	tests := []struct {
		name  string
		row   tabular.Row
		field string
		want  string
	}{
		{"price", tabular.Row{"BasePricePerFlOz": "0.2"}, "BasePrice", "0.2 / FlOz"},
		{"nutrition", tabular.Row{"NutritionPerFlOz": "3"}, "Nutrition", "3 / FlOz"},
		{"skill", tabular.Row{"SkillOnConsumptionProgression": "0.1", "SkillOnConsumptionType": "Cooking"}, "SkillOnConsumption", "0.1 Cooking"},
		{"skill per floz", tabular.Row{"SkillOnConsumptionProgressionPerFlOz": "0.01", "SkillOnConsumptionType": "Brewing"}, "SkillOnConsumption", "0.01 Brewing / FlOz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, Normalize(tt.row))
			assert.Equal(t, tt.want, tt.row[tt.field])
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	row := tabular.Row{
		"NativeName":     "Sugar",
		"Category":       "5:Food/Seeds",
		"SkillBonus":     "2",
		"SkillBonusType": "Farming",
		"BasePrice":      "4",
		"Damage":         "1",
	}
	require.NoError(t, Normalize(row))
	once := row.Clone()

	require.NoError(t, Normalize(row))
	assert.Equal(t, once, row)
}

func TestProcess(t *testing.T) {
	records := []Record{
		record(t, "Axe.xml", `<EquipmentPrototype><NativeName>Axe</NativeName><Category>2:Weapons/Melee</Category></EquipmentPrototype>`),
		record(t, "Seeds.xml", `<EquipmentPrototype><NativeName>CornSeeds</NativeName><Category>5:Food/Seeds</Category></EquipmentPrototype>`),
	}

	rows, err := Process(records, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Axe", rows[0]["NativeName"])
	assert.Equal(t, "5:Seeds", rows[1]["Category"])

	records = append(records, Record{Kind: KindUnknown, File: "Bad.xml", Node: &xmltree.Node{Name: "Other"}})
	_, err = Process(records, zap.NewNop())
	assert.ErrorIs(t, err, ErrUnknownRecordKind)
}
