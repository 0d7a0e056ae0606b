package items

import (
	"fmt"
	"strings"

	"survivalist-gamedata/core/tabular"
	"survivalist-gamedata/core/utils"
	"survivalist-gamedata/core/xmltree"

	"go.uber.org/zap"
)

// referenceSkillLevel is the skill level progressions are displayed at.
const referenceSkillLevel = 5

var categoryRemap = map[string]string{
	"5:Food/Seeds":         "5:Seeds",
	"4:Clothing/Backpacks": "4:Backpacks",
}

// nameCategories pin the category of individual items by exact NativeName.
var nameCategories = map[string]string{
	"Sugar": "5:Food/Dishes",
	"Urine": "5:Food/Drink",
}

// listFields are flattened from their repeated child elements.
var listFields = []struct {
	field string
	item  string
}{
	{"GiftFor", "string"},
	{"BadGiftFor", "string"},
	{"FoodForAnimal", "BaseObjectType"},
	{"AmmoTypes", "string"},
}

type progression struct {
	field    string
	perLevel string
	// withBase formats both the base and the leveled value.
	withBase bool
	prec     int
}

var progressions = []progression{
	{field: "Damage", perLevel: "DamageBonusPerSkillLevel", withBase: true, prec: 2},
	{field: "Range", perLevel: "RangeBonusPerSkillLevel"},
	{field: "AccurateRange", perLevel: "AccurateRangeBonusPerSkillLevel"},
	{field: "CarryWeight", perLevel: "CarryWeightBonusPerSkillLevel"},
}

// Process decodes and normalizes every record, preserving load order.
func Process(records []Record, logger *zap.Logger) ([]tabular.Row, error) {
	rows := make([]tabular.Row, 0, len(records))
	for _, rec := range records {
		row, err := Decode(rec, logger)
		if err != nil {
			return nil, err
		}
		if err := Normalize(row); err != nil {
			return nil, fmt.Errorf("%s: %w", rec.File, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Decode turns a raw record into a flat row. Equipment and liquid
// prototypes share one layout; records of any other kind are rejected.
func Decode(rec Record, logger *zap.Logger) (tabular.Row, error) {
	switch rec.Kind {
	case KindEquipment, KindLiquid:
		return decodePrototype(rec, logger), nil
	default:
		tag := ""
		if rec.Node != nil {
			tag = rec.Node.Name
		}
		return nil, fmt.Errorf("%s: %w: %q", rec.File, ErrUnknownRecordKind, tag)
	}
}

func decodePrototype(rec Record, logger *zap.Logger) tabular.Row {
	row := flatten(rec, logger)
	row["LootLocations"] = lootLocations(rec.Node)
	flattenLists(row, rec.Node)
	return row
}

// flatten copies every top-level field and backfills a missing NativeName
// from the file name.
func flatten(rec Record, logger *zap.Logger) tabular.Row {
	row := tabular.Row(rec.Node.Fields())
	if _, ok := row["NativeName"]; !ok {
		logger.Warn("Item has no NativeName, using file name", zap.String("file", rec.File))
		row["NativeName"] = rec.File
	}
	return row
}

func flattenLists(row tabular.Row, node *xmltree.Node) {
	for _, lf := range listFields {
		child := node.Child(lf.field)
		if child.IsEmpty() {
			continue
		}
		row[lf.field] = strings.Join(child.Strings(lf.item), ", ")
	}
}

// lootLocations renders one "<tier> at <locations>" line per scarcity
// tier, tiers in the order they are first seen.
func lootLocations(node *xmltree.Node) string {
	locations := node.Child("LootableFromLocations")
	scarcity, ok := node.Field("Scarcity")
	if locations == nil || !ok {
		return ""
	}

	var tiers []string
	byTier := make(map[string][]string)
	for _, from := range locations.List("LootableFrom") {
		tier := scarcity
		if override, ok := from.Field("OverrideScarcity"); ok {
			tier = override
		}
		if _, seen := byTier[tier]; !seen {
			tiers = append(tiers, tier)
		}
		name, _ := from.Field("Name")
		byTier[tier] = append(byTier[tier], name)
	}

	lines := make([]string, 0, len(tiers))
	for _, tier := range tiers {
		lines = append(lines, tier+" at "+strings.Join(byTier[tier], ", "))
	}
	return strings.Join(lines, "\n")
}

// Normalize applies the field-level rules to a decoded row in place.
// Applying it again to its own output changes nothing as long as the row
// carries no progression trigger fields.
func Normalize(row tabular.Row) error {
	remapCategory(row)
	combineSkillBonus(row)
	if err := applyProgressions(row); err != nil {
		return err
	}
	mergePerFlOz(row)
	return nil
}

func remapCategory(row tabular.Row) {
	if category, ok := categoryRemap[row["Category"]]; ok {
		row["Category"] = category
	}
	if category, ok := nameCategories[row["NativeName"]]; ok {
		row["Category"] = category
	}
}

func combineSkillBonus(row tabular.Row) {
	bonus, ok := row.Lookup("SkillBonus")
	if !ok {
		return
	}
	kind := row["SkillBonusType"]
	if kind == "" || strings.HasSuffix(bonus, " "+kind) {
		return
	}
	row["SkillBonus"] = utils.JoinNonEmpty(" ", bonus, kind)
}

func applyProgressions(row tabular.Row) error {
	for _, p := range progressions {
		raw, ok := row.Lookup(p.perLevel)
		if !ok {
			continue
		}
		perLevel, err := utils.ToFloat(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", p.perLevel, err)
		}
		baseRaw := row[p.field]
		base, err := utils.ToFloat(baseRaw)
		if err != nil {
			return fmt.Errorf("%s: %w", p.field, err)
		}

		leveled := utils.FormatFixed(base+referenceSkillLevel*perLevel, p.prec)
		if p.withBase {
			row[p.field] = utils.FormatFixed(base, p.prec) + " / " + leveled
		} else {
			row[p.field] = baseRaw + " / " + leveled
		}
	}
	return nil
}

func mergePerFlOz(row tabular.Row) {
	if v, ok := row.Lookup("BasePricePerFlOz"); ok {
		row["BasePrice"] = v + " / FlOz"
	}
	if v, ok := row.Lookup("NutritionPerFlOz"); ok {
		row["Nutrition"] = v + " / FlOz"
	}

	kind := row["SkillOnConsumptionType"]
	if p, ok := row.Lookup("SkillOnConsumptionProgression"); ok {
		row["SkillOnConsumption"] = utils.JoinNonEmpty(" ", p, kind)
	} else if p, ok := row.Lookup("SkillOnConsumptionProgressionPerFlOz"); ok {
		row["SkillOnConsumption"] = utils.JoinNonEmpty(" ", p, kind) + " / FlOz"
	}
}
