package markup

import (
	"bufio"
	"fmt"
	"io"

	"survivalist-gamedata/core/tabular"

	"go.uber.org/zap"
)

// Table is one display table: its header labels and the predicate deciding
// which rows belong to it. Predicates are evaluated independently per
// table, so a row can appear in several tables or in none.
type Table struct {
	Name    string
	Columns Columns
	Match   func(tabular.Row) bool
}

// Counts reports how many rows were written and how many matched a table
// but were skipped.
type Counts struct {
	Matched int
	Skipped int
}

// Total is Matched + Skipped.
func (c Counts) Total() int {
	return c.Matched + c.Skipped
}

// Writer renders rows into SteamML tables.
type Writer struct {
	expander *Expander
	logger   *zap.Logger
	// Skip drops a matched row and counts it as skipped. Optional.
	Skip func(tabular.Row) bool
	// IDField names the row field used in debug logs.
	IDField string
}

// NewWriter creates a markup writer.
func NewWriter(expander *Expander, logger *zap.Logger) *Writer {
	return &Writer{expander: expander, logger: logger}
}

// WriteFile writes all tables to path, replacing any previous file.
func (w *Writer) WriteFile(path string, tables []Table, rows []tabular.Row) (Counts, error) {
	f, err := tabular.Create(path)
	if err != nil {
		return Counts{}, err
	}
	defer f.Close()

	counts, err := w.Write(f, tables, rows)
	if err != nil {
		return counts, fmt.Errorf("write %s: %w", path, err)
	}
	return counts, f.Close()
}

// Write renders every table in order, each followed by a blank line.
func (w *Writer) Write(out io.Writer, tables []Table, rows []tabular.Row) (Counts, error) {
	var counts Counts
	buf := bufio.NewWriter(out)

	for _, table := range tables {
		w.logger.Debug("Making table", zap.String("table", table.Name))

		buf.WriteString("[table]\n")
		buf.WriteString(" [tr]\n")
		for _, col := range table.Columns {
			fmt.Fprintf(buf, "  [th]%s[/th]\n", col.Header)
		}
		buf.WriteString(" [/tr]\n")

		for _, row := range rows {
			if !table.Match(row) {
				continue
			}
			if w.Skip != nil && w.Skip(row) {
				counts.Skipped++
				w.logger.Debug("Skipping row", zap.String("id", row[w.IDField]), zap.String("table", table.Name))
				continue
			}

			w.logger.Debug("Row goes in table", zap.String("id", row[w.IDField]), zap.String("table", table.Name))
			counts.Matched++
			buf.WriteString(" [tr]\n")
			for _, col := range table.Columns {
				fmt.Fprintf(buf, "  [td]%s[/td]\n", w.expander.Expand(row[col.Field]))
			}
			buf.WriteString(" [/tr]\n")
		}

		buf.WriteString("[/table]\n\n")
	}

	return counts, buf.Flush()
}
