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

package manipulate

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/JJaniel/dataset-analyzer/core"
	"github.com/JJaniel/dataset-analyzer/dataset"
)

// Merge outer-joins every dataset in folder on the given canonical key.
// Each file is standardized first, so the result has exactly the map's
// canonical columns. Matching rows combine by coalescing: for each
// column the first non-empty value wins. Files where the map provides
// no column for the key are skipped with a warning, as are files that
// fail to read. Rows with an empty key never match anything.
func Merge(m core.HarmonizationMap, folder, key string) (*dataset.Table, error) {
	if m.Feature(key) == nil {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownFeature, key)
	}

	paths, err := dataset.Discover(folder)
	if err != nil {
		return nil, err
	}

	var merged *dataset.Table
	for _, path := range paths {
		name := filepath.Base(path)
		tbl, err := dataset.ReadTable(path)
		if err != nil {
			slog.Warn("skipping unreadable dataset", "dataset", name, "err", err)
			continue
		}

		std := Standardize(tbl, m)
		if !hasKeyValues(std, key) {
			slog.Warn("dataset has no values for merge key, skipping",
				"dataset", name, "key", key)
			continue
		}

		if merged == nil {
			merged = std
			merged.Name = "merged"
			continue
		}
		merged = joinTables(merged, std, key)
	}

	if merged == nil {
		return nil, fmt.Errorf("no dataset in %s could be merged on %q", folder, key)
	}
	return merged, nil
}

// hasKeyValues reports whether any row of the standardized table has a
// non-empty value in the key column.
func hasKeyValues(tbl *dataset.Table, key string) bool {
	for _, v := range tbl.Column(key) {
		if v != "" {
			return true
		}
	}
	return false
}

// joinTables full-outer-joins two standardized tables that share the
// same canonical headers. Duplicate key values produce one combined row
// per left/right pair.
func joinTables(left, right *dataset.Table, key string) *dataset.Table {
	keyIdx := left.ColumnIndex(key)

	out := &dataset.Table{
		Name:    left.Name,
		Headers: append([]string(nil), left.Headers...),
	}

	rightByKey := make(map[string][]int)
	for i, row := range right.Rows {
		if k := cell(row, keyIdx); k != "" {
			rightByKey[k] = append(rightByKey[k], i)
		}
	}

	matched := make(map[int]bool, len(right.Rows))
	for _, lrow := range left.Rows {
		k := cell(lrow, keyIdx)
		partners := rightByKey[k]
		if k == "" || len(partners) == 0 {
			out.Rows = append(out.Rows, lrow)
			continue
		}
		for _, ri := range partners {
			matched[ri] = true
			out.Rows = append(out.Rows, coalesceRows(lrow, right.Rows[ri], len(out.Headers)))
		}
	}

	for i, rrow := range right.Rows {
		if !matched[i] {
			out.Rows = append(out.Rows, rrow)
		}
	}
	return out
}

// coalesceRows combines two rows column-wise, preferring the left value
// when it is non-empty.
func coalesceRows(left, right []string, width int) []string {
	row := make([]string, width)
	for i := 0; i < width; i++ {
		row[i] = cell(left, i)
		if row[i] == "" {
			row[i] = cell(right, i)
		}
	}
	return row
}

func cell(row []string, i int) string {
	if i >= 0 && i < len(row) {
		return row[i]
	}
	return ""
}
