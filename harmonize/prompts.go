package harmonize

import (
	"fmt"
	"strings"
)

const synthesisPromptTemplate = `You are a data harmonization expert. Your task is to analyze a collection of individual dataset analyses and create a single, unified "harmonization map".

Here are the analyses of multiple datasets:
%s

Your goal is to identify columns across these different datasets that represent the same underlying feature, even if they have different names.

The output should be a JSON object where:
- Each key is a "canonical_feature_name" that you create to represent a common concept (e.g., "patient_id", "tumor_size_mm").
- The value for each key is an object containing:
  - "description": A brief explanation of what this canonical feature represents.
  - "mapped_columns": A list of objects, where each object details a specific column from a dataset that maps to this canonical feature.
    - "dataset": The name of the dataset file.
    - "column": The original name of the column in that dataset.
    - "semantic_meaning": The original semantic meaning of that column.
%s
Please provide only the final JSON output for the harmonization map.`

// buildSynthesisPrompt renders the cross-dataset synthesis prompt over
// the combined per-dataset analyses. Extra instructions from the user
// are appended verbatim before the closing directive.
func buildSynthesisPrompt(analysesJSON, extra string) string {
	extraBlock := "\n"
	if strings.TrimSpace(extra) != "" {
		extraBlock = "\n" + strings.TrimSpace(extra) + "\n\n"
	}
	return fmt.Sprintf(synthesisPromptTemplate, analysesJSON, extraBlock)
}
