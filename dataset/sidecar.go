package dataset

import (
	"fmt"
	"os"
	"strings"
)

// Sidecar suffixes, in lookup order. A dataset "trial.csv" may carry
// its documentation in "trial.csv.meta.txt", "trial.csv.meta.md" or
// "trial.csv.meta.json".
var sidecarSuffixes = []string{".meta.txt", ".meta.md", ".meta.json"}

// Sidecar returns the contents of the first sidecar metadata file found
// for the dataset at path, or "" when there is none.
func Sidecar(path string) (string, error) {
	for _, suffix := range sidecarSuffixes {
		data, err := os.ReadFile(path + suffix)
		if err == nil {
			return strings.TrimSpace(string(data)), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("reading sidecar for %s: %w", path, err)
		}
	}
	return "", nil
}

// isSidecarName reports whether the file name is a sidecar metadata
// file rather than a dataset.
func isSidecarName(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range sidecarSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
