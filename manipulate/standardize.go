// Copyright 2025 JJaniel
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package manipulate implements the downstream operations over a
// harmonization map: standardizing tables onto canonical columns,
// collecting unique feature values, outer-merging datasets on a
// canonical key, filtering, and raw column extraction.
package manipulate

import (
	"github.com/JJaniel/dataset-analyzer/core"
	"github.com/JJaniel/dataset-analyzer/dataset"
)

// Standardize projects a table onto the canonical columns of the map.
// Every canonical feature becomes a column, in map order. When several
// original columns of this file map to the same feature, the first one
// present in the table wins; features with no matching column become
// empty columns.
func Standardize(tbl *dataset.Table, m core.HarmonizationMap) *dataset.Table {
	// Source column index per canonical feature, -1 when absent.
	sources := make([]int, len(m))
	for i := range m {
		sources[i] = -1
		for _, col := range m[i].ColumnsFor(tbl.Name) {
			if idx := tbl.ColumnIndex(col); idx >= 0 {
				sources[i] = idx
				break
			}
		}
	}

	out := &dataset.Table{
		Name:    tbl.Name,
		Headers: m.CanonicalNames(),
		Rows:    make([][]string, len(tbl.Rows)),
	}
	for r, row := range tbl.Rows {
		std := make([]string, len(m))
		for i, src := range sources {
			if src >= 0 && src < len(row) {
				std[i] = row[src]
			}
		}
		out.Rows[r] = std
	}
	return out
}
