package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"

	"survivalist-gamedata/core/logger"
	"survivalist-gamedata/core/xmltree"
	"survivalist-gamedata/feature/items"
)

// Prints the canonical row of a single item file, e.g.
//
//	go run ./cmd/debug_item Data/Equipment/HuntingKnife.xml
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <item.xml>", filepath.Base(os.Args[0]))
	}
	path := os.Args[1]

	logg, err := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if err != nil {
		log.Fatal(err)
	}

	root, err := xmltree.ParseFile(path)
	if err != nil {
		log.Fatal(err)
	}

	records := []items.Record{{Kind: items.KindOf(root.Name), File: filepath.Base(path), Node: root}}
	rows, err := items.Process(records, logg)
	if err != nil {
		log.Fatal(err)
	}

	row := rows[0]
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	fmt.Printf("=== %s (%s) ===\n", row["NativeName"], root.Name)
	for _, k := range keys {
		fmt.Printf("%-32s %q\n", k, row[k])
	}
}
