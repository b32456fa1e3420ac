package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteCSV writes the table to path as CSV, header row first. Short
// rows are padded to the header width so the output is rectangular.
func WriteCSV(t *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Headers); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for _, row := range t.Rows {
		if err := w.Write(padRow(row, len(t.Headers))); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
