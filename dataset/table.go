package dataset

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// Table is an in-memory tabular dataset: a header row plus data rows.
// Rows are ragged-safe: readers pad short rows to the header width.
type Table struct {
	// Name is the dataset file name (base name, not path). It is the key
	// used throughout harmonization maps.
	Name string

	Headers []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Head returns a copy of the table truncated to at most n data rows.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	head := &Table{
		Name:    t.Name,
		Headers: append([]string(nil), t.Headers...),
		Rows:    make([][]string, n),
	}
	for i := 0; i < n; i++ {
		head.Rows[i] = append([]string(nil), t.Rows[i]...)
	}
	return head
}

// ColumnIndex returns the index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns the values of the named column, or nil when the column
// does not exist.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values
}

// Render returns a plain-text rendering of the table. It is used both
// for embedding samples in LLM prompts and for CLI previews.
func (t *Table) Render() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range t.Rows {
		r := make(table.Row, len(t.Headers))
		for i := range t.Headers {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}
