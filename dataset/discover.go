package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var supportedExtensions = []string{".csv", ".tsv", ".xlsx", ".xls"}

// IsSupported reports whether the file name has a dataset extension.
func IsSupported(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range supportedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Discover lists the dataset files directly inside folder, sorted by
// name. Hidden files, directories and sidecar metadata files are
// skipped.
func Discover(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading dataset folder: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || isSidecarName(name) || !IsSupported(name) {
			continue
		}
		paths = append(paths, filepath.Join(folder, name))
	}
	sort.Strings(paths)
	return paths, nil
}
