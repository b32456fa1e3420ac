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

import "fmt"

// ValidateHarmonizationMap validates a HarmonizationMap according to
// domain rules.
//
// Validation rules:
//   - The map must contain at least one feature group
//   - Every group must have a non-empty canonical name
//   - Canonical names must be unique
//   - Every group must map at least one column
//   - Every mapped column must name its dataset and column
//
// NOT validated:
//   - Description (the LLM may leave it empty)
//   - SemanticMeaning on column refs (informational only)
func ValidateHarmonizationMap(m HarmonizationMap) error {
	if len(m) == 0 {
		return fmt.Errorf("%w: map is empty", ErrInvalidHarmonizationMap)
	}

	seen := make(map[string]struct{}, len(m))
	for i := range m {
		g := &m[i]
		if g.CanonicalName == "" {
			return fmt.Errorf("%w: %w", ErrInvalidHarmonizationMap, ErrEmptyCanonicalName)
		}
		if _, dup := seen[g.CanonicalName]; dup {
			return fmt.Errorf("%w: %w: %q", ErrInvalidHarmonizationMap, ErrDuplicateCanonicalName, g.CanonicalName)
		}
		seen[g.CanonicalName] = struct{}{}

		if len(g.MappedColumns) == 0 {
			return fmt.Errorf("%w: %w: %q", ErrInvalidHarmonizationMap, ErrNoMappedColumns, g.CanonicalName)
		}
		for _, ref := range g.MappedColumns {
			if ref.Dataset == "" || ref.Column == "" {
				return fmt.Errorf("%w: feature %q maps a column without dataset or column name",
					ErrInvalidHarmonizationMap, g.CanonicalName)
			}
		}
	}

	return nil
}

// ValidateDatasetAnalysis validates a DatasetAnalysis according to
// domain rules.
//
// Validation rules:
//   - The analysis must describe at least one column
//   - Every described column must have a non-empty name
func ValidateDatasetAnalysis(a DatasetAnalysis) error {
	if len(a) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidAnalysis, ErrEmptyAnalysis)
	}
	for col := range a {
		if col == "" {
			return fmt.Errorf("%w: empty column name", ErrInvalidAnalysis)
		}
	}
	return nil
}
