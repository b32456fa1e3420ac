package manipulate

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/JJaniel/dataset-analyzer/core"
	"github.com/JJaniel/dataset-analyzer/dataset"
)

// UniqueValues collects every distinct non-empty value of one canonical
// feature across all datasets the map references for it. Datasets that
// fail to read are logged and skipped. The result is sorted.
func UniqueValues(m core.HarmonizationMap, folder, feature string) ([]string, error) {
	group := m.Feature(feature)
	if group == nil {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownFeature, feature)
	}

	seen := make(map[string]struct{})
	for _, name := range mappedDatasets(group) {
		tbl, err := dataset.ReadTable(filepath.Join(folder, name))
		if err != nil {
			slog.Warn("skipping unreadable dataset", "dataset", name, "err", err)
			continue
		}
		std := Standardize(tbl, m)
		for _, v := range std.Column(feature) {
			if v != "" {
				seen[v] = struct{}{}
			}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

// mappedDatasets returns the distinct dataset names of a feature group,
// in mapped-column order.
func mappedDatasets(g *core.FeatureGroup) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, ref := range g.MappedColumns {
		if _, ok := seen[ref.Dataset]; ok {
			continue
		}
		seen[ref.Dataset] = struct{}{}
		names = append(names, ref.Dataset)
	}
	return names
}
