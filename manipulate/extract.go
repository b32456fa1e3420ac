package manipulate

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/JJaniel/dataset-analyzer/dataset"
)

// ExtractColumn consolidates the unique values of one raw column name
// across the given files into a single-column CSV at outputPath. When
// the output file already exists its values are merged in, so repeated
// runs over growing inputs accumulate. Inputs missing the column or
// failing to read are logged and skipped. Returns the sorted values
// that were written.
func ExtractColumn(paths []string, column, outputPath string) ([]string, error) {
	seen := make(map[string]struct{})

	if _, err := os.Stat(outputPath); err == nil {
		existing, err := dataset.ReadTable(outputPath)
		if err != nil {
			slog.Warn("could not read existing output, starting fresh",
				"path", outputPath, "err", err)
		} else {
			for _, v := range existing.Column(column) {
				if v != "" {
					seen[v] = struct{}{}
				}
			}
		}
	}

	for _, path := range paths {
		if !dataset.IsSupported(path) {
			slog.Warn("skipping unsupported file", "path", path)
			continue
		}
		tbl, err := dataset.ReadTable(path)
		if err != nil {
			slog.Warn("skipping unreadable file", "path", path, "err", err)
			continue
		}
		values := tbl.Column(column)
		if values == nil {
			slog.Warn("column not found", "path", path, "column", column)
			continue
		}
		for _, v := range values {
			if v != "" {
				seen[v] = struct{}{}
			}
		}
	}

	if len(seen) == 0 {
		return nil, fmt.Errorf("no values found for column %q", column)
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)

	out := &dataset.Table{
		Name:    outputPath,
		Headers: []string{column},
		Rows:    make([][]string, len(values)),
	}
	for i, v := range values {
		out.Rows[i] = []string{v}
	}
	if err := dataset.WriteCSV(out, outputPath); err != nil {
		return nil, err
	}
	return values, nil
}
