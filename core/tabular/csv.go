package tabular

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteCSV writes a header line followed by one line per row. Keys missing
// from a row render empty; keys not in header are ignored.
func WriteCSV(w io.Writer, header []string, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = false

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(header))
	for i, row := range rows {
		for j, field := range header {
			record[j] = row[field]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile creates (or truncates) path, creating parent directories.
func WriteCSVFile(path string, header []string, rows []Row) error {
	f, err := Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	if err := WriteCSV(buf, header, rows); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// Create opens path for writing, creating parent directories first.
func Create(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}
