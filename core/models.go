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


package core

import (
	"encoding/json"
	"sort"
)

// ColumnAnalysis is the LLM's semantic description of a single column
// in a dataset sample.
type ColumnAnalysis struct {
	// SemanticMeaning describes what the column likely represents in the
	// real world. Example: "A unique identifier for a patient."
	SemanticMeaning string `json:"semantic_meaning"`

	// DataTypesAndContent briefly describes the data type and content of
	// the column. Example: "Integer."
	DataTypesAndContent string `json:"data_types_and_content"`

	// PotentialSynonyms lists alternative names this column might appear
	// under in other datasets. Example: ["patient_id", "subject_id"]
	PotentialSynonyms []string `json:"potential_synonyms"`
}

// DatasetAnalysis maps original column names of one dataset file to
// their semantic analyses.
type DatasetAnalysis map[string]ColumnAnalysis

// ColumnRef identifies a specific column in a specific dataset file,
// together with the semantic meaning the analysis phase assigned to it.
type ColumnRef struct {
	Dataset         string `json:"dataset"`
	Column          string `json:"column"`
	SemanticMeaning string `json:"semantic_meaning,omitempty"`
}

// FeatureGroup is one entry of a harmonization map: a canonical feature
// together with every dataset column that maps to it.
type FeatureGroup struct {
	CanonicalName string      `json:"canonical_name"`
	Description   string      `json:"description"`
	MappedColumns []ColumnRef `json:"mapped_columns"`
}

// ColumnsFor returns the original column names of the given dataset file
// that map to this feature, in map order.
func (g *FeatureGroup) ColumnsFor(dataset string) []string {
	var cols []string
	for _, ref := range g.MappedColumns {
		if ref.Dataset == dataset {
			cols = append(cols, ref.Column)
		}
	}
	return cols
}

// HarmonizationMap groups semantically identical columns across datasets
// under canonical feature names. It is the product of the synthesis
// phase and the input of every downstream manipulation.
type HarmonizationMap []FeatureGroup

// Feature returns the group with the given canonical name, or nil.
func (m HarmonizationMap) Feature(canonicalName string) *FeatureGroup {
	for i := range m {
		if m[i].CanonicalName == canonicalName {
			return &m[i]
		}
	}
	return nil
}

// CanonicalNames returns every canonical feature name in map order.
func (m HarmonizationMap) CanonicalNames() []string {
	names := make([]string, len(m))
	for i := range m {
		names[i] = m[i].CanonicalName
	}
	return names
}

// Datasets returns the sorted set of dataset file names referenced
// anywhere in the map.
func (m HarmonizationMap) Datasets() []string {
	seen := make(map[string]struct{})
	for i := range m {
		for _, ref := range m[i].MappedColumns {
			seen[ref.Dataset] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mapEntry is the wire form of a feature group: the canonical name is
// the key of the enclosing JSON object, not a field.
type mapEntry struct {
	Description   string      `json:"description"`
	MappedColumns []ColumnRef `json:"mapped_columns"`
}

// UnmarshalJSON accepts the object form produced by the synthesis LLM,
// keyed by canonical feature name. Groups are ordered by canonical name
// so repeated loads of the same map are deterministic.
func (m *HarmonizationMap) UnmarshalJSON(data []byte) error {
	var raw map[string]mapEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	groups := make(HarmonizationMap, 0, len(raw))
	for name, entry := range raw {
		groups = append(groups, FeatureGroup{
			CanonicalName: name,
			Description:   entry.Description,
			MappedColumns: entry.MappedColumns,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].CanonicalName < groups[j].CanonicalName
	})

	*m = groups
	return nil
}

// MarshalJSON writes the same object form the synthesis LLM produces.
func (m HarmonizationMap) MarshalJSON() ([]byte, error) {
	raw := make(map[string]mapEntry, len(m))
	for i := range m {
		raw[m[i].CanonicalName] = mapEntry{
			Description:   m[i].Description,
			MappedColumns: m[i].MappedColumns,
		}
	}
	return json.Marshal(raw)
}
