// Package dataset handles discovery and reading of tabular dataset
// files. It supports CSV, TSV and Excel workbooks, reads bounded
// samples for prompt construction, and picks up optional sidecar
// metadata files that researchers leave next to their data.
package dataset
