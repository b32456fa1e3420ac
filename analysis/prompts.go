package analysis

import (
	"fmt"
	"strings"
)

// promptVersion participates in cache keys so that cached analyses are
// invalidated whenever the prompt changes.
const promptVersion = "analysis-v1"

const analysisPromptTemplate = `You are a data analyst. Your task is to perform a deep semantic analysis of the following dataset sample.

Dataset File: %s
Sample Data:
%s
%s
Your analysis should be in JSON format. The output must be a single JSON object whose keys are the column names of the dataset. For each column provide:
1. "semantic_meaning": describe what the column likely represents in the real world.
2. "data_types_and_content": briefly describe the data type and content of the column.
3. "potential_synonyms": suggest alternative names for the column that might appear in other datasets.

Example Output:
{
    "col1": {
        "semantic_meaning": "A unique identifier for a user.",
        "data_types_and_content": "Integer.",
        "potential_synonyms": ["user_id", "customer_id"]
    },
    "col2": {
        "semantic_meaning": "The age of the user.",
        "data_types_and_content": "Integer.",
        "potential_synonyms": ["age", "user_age"]
    }
}

Provide only the JSON output.`

// buildAnalysisPrompt renders the per-dataset analysis prompt. The
// sidecar block is omitted entirely when the dataset has no metadata
// file.
func buildAnalysisPrompt(fileName, sample, sidecar string) string {
	sidecarBlock := ""
	if sidecar != "" {
		sidecarBlock = fmt.Sprintf("\nAdditional metadata supplied with this dataset:\n%s\n", strings.TrimSpace(sidecar))
	}
	return fmt.Sprintf(analysisPromptTemplate, fileName, sample, sidecarBlock)
}
