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


package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat indicates a file extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrEmptyDataset indicates a file with no header row.
var ErrEmptyDataset = errors.New("dataset has no header row")

// Sheet names that hold documentation rather than data; the Excel
// reader skips them when picking the data sheet.
var metadataSheets = map[string]bool{
	"info":     true,
	"metadata": true,
	"about":    true,
	"readme":   true,
	"notes":    true,
}

// ReadTable reads an entire dataset file into a Table.
func ReadTable(path string) (*Table, error) {
	return read(path, -1)
}

// ReadSample reads the header row plus at most n data rows. CSV files
// are read incrementally, so sampling a multi-gigabyte file stays cheap.
func ReadSample(path string, n int) (*Table, error) {
	if n < 0 {
		n = 0
	}
	return read(path, n)
}

// read reads up to limit data rows; limit < 0 means unlimited.
func read(path string, limit int) (*Table, error) {
	name := filepath.Base(path)
	switch {
	case hasSuffix(name, ".csv"):
		return readCSV(path, name, ',', limit)
	case hasSuffix(name, ".tsv"):
		return readCSV(path, name, '\t', limit)
	case hasSuffix(name, ".xlsx"), hasSuffix(name, ".xls"):
		return readExcel(path, name, limit)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

func hasSuffix(name, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(name), suffix)
}

func readCSV(path, name string, comma rune, limit int) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, name)
		}
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var rows [][]string
	for limit < 0 || len(rows) < limit {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		rows = append(rows, padRow(record, len(headers)))
	}

	return &Table{Name: name, Headers: headers, Rows: rows}, nil
}

func readExcel(path, name string, limit int) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", ErrEmptyDataset, name)
	}

	// Pick the first sheet that is not documentation; when every sheet
	// looks like documentation, the last one is the best guess for data.
	sheetName := ""
	for _, sheet := range sheets {
		if !metadataSheets[strings.ToLower(sheet)] {
			sheetName = sheet
			break
		}
	}
	if sheetName == "" {
		sheetName = sheets[len(sheets)-1]
	}

	allRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading %s sheet %q: %w", name, sheetName, err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, name)
	}

	headers := allRows[0]
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	dataRows := allRows[1:]
	if limit >= 0 && len(dataRows) > limit {
		dataRows = dataRows[:limit]
	}

	rows := make([][]string, len(dataRows))
	for i, row := range dataRows {
		if len(row) > len(headers) {
			row = row[:len(headers)]
		}
		rows[i] = padRow(row, len(headers))
	}

	return &Table{Name: name, Headers: headers, Rows: rows}, nil
}

// padRow extends a short row with empty cells to the header width.
func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
