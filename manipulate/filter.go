package manipulate

import (
	"fmt"

	"github.com/JJaniel/dataset-analyzer/core"
	"github.com/JJaniel/dataset-analyzer/dataset"
)

// Filter returns the rows of a standardized table whose value in the
// given canonical column equals value (string comparison). The result
// shares no row storage with the input.
func Filter(tbl *dataset.Table, feature, value string) (*dataset.Table, error) {
	idx := tbl.ColumnIndex(feature)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownFeature, feature)
	}

	out := &dataset.Table{
		Name:    tbl.Name,
		Headers: append([]string(nil), tbl.Headers...),
	}
	for _, row := range tbl.Rows {
		if cell(row, idx) == value {
			out.Rows = append(out.Rows, append([]string(nil), row...))
		}
	}
	return out, nil
}
