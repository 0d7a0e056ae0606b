package items

import (
	"path/filepath"
	"slices"

	"survivalist-gamedata/core/gamedata"
	"survivalist-gamedata/core/xmltree"

	"go.uber.org/zap"
)

// Kind identifies the source schema of an item record.
type Kind int

const (
	KindUnknown Kind = iota
	KindEquipment
	KindLiquid
)

// String returns the XML root tag of the kind.
func (k Kind) String() string {
	switch k {
	case KindEquipment:
		return "EquipmentPrototype"
	case KindLiquid:
		return "LiquidPrototype"
	default:
		return "unknown"
	}
}

// KindOf maps a document root tag to its record kind.
func KindOf(tag string) Kind {
	switch tag {
	case KindEquipment.String():
		return KindEquipment
	case KindLiquid.String():
		return KindLiquid
	default:
		return KindUnknown
	}
}

// Record is one parsed item file.
type Record struct {
	Kind Kind
	// File is the source file name, used in diagnostics and as a
	// fallback NativeName.
	File string
	Node *xmltree.Node
}

// itemDirs are scanned in this order across all gamedata directories.
var itemDirs = []string{"Equipment", "Liquid"}

// Load reads every item file below the gamedata directories, skipping
// files named in skip. Parse failures are fatal.
func Load(src *gamedata.Source, skip []string, logger *zap.Logger) ([]Record, error) {
	var records []Record

	for _, sub := range itemDirs {
		files, err := src.Glob(sub, "*.xml")
		if err != nil {
			return nil, err
		}

		for _, path := range files {
			name := filepath.Base(path)
			if slices.Contains(skip, name) {
				logger.Debug("Skipping item file", zap.String("file", name))
				continue
			}

			logger.Debug("Loading game item", zap.String("path", path))
			root, err := xmltree.ParseFile(path)
			if err != nil {
				return nil, err
			}
			records = append(records, Record{Kind: KindOf(root.Name), File: name, Node: root})
		}
	}

	logger.Info("Found items", zap.Int("count", len(records)))
	return records, nil
}
