package core

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadHarmonizationMap reads and validates a harmonization map from a
// JSON file produced by the synthesis phase.
func LoadHarmonizationMap(path string) (HarmonizationMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading harmonization map: %w", err)
	}

	var m HarmonizationMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding harmonization map %s: %w", path, err)
	}
	if err := ValidateHarmonizationMap(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Save writes the harmonization map to a JSON file with indentation,
// so it stays reviewable and hand-editable.
func (m HarmonizationMap) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding harmonization map: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing harmonization map: %w", err)
	}
	return nil
}
