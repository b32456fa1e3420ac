package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestReadTableCSV(t *testing.T) {
	path := writeTempFile(t, "drugs.csv", "DRUG_NAME,CELL_LINE,IC50\naspirin,A549,1.2\ncisplatin,HeLa,0.4\n")

	tbl, err := ReadTable(path)
	require.NoError(t, err)

	assert.Equal(t, "drugs.csv", tbl.Name)
	assert.Equal(t, []string{"DRUG_NAME", "CELL_LINE", "IC50"}, tbl.Headers)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"aspirin", "A549", "1.2"}, tbl.Rows[0])
}

func TestReadTableTSV(t *testing.T) {
	path := writeTempFile(t, "drugs.tsv", "DRUG\tDOSE\naspirin\t10\n")

	tbl, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"DRUG", "DOSE"}, tbl.Headers)
	assert.Equal(t, [][]string{{"aspirin", "10"}}, tbl.Rows)
}

func TestReadTablePadsShortRows(t *testing.T) {
	path := writeTempFile(t, "ragged.csv", "a,b,c\n1,2\n")

	tbl, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", ""}, tbl.Rows[0])
}

func TestReadSampleLimitsRows(t *testing.T) {
	path := writeTempFile(t, "big.csv", "x\n1\n2\n3\n4\n5\n")

	tbl, err := ReadSample(path, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())
}

func TestReadTableErrors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempFile(t, "notes.txt", "hello")
		_, err := ReadTable(path)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTempFile(t, "empty.csv", "")
		_, err := ReadTable(path)
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadTable(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}

func writeTempExcel(t *testing.T, sheets map[string][][]interface{}, order []string) string {
	t.Helper()
	f := excelize.NewFile()
	for i, sheet := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet))
		} else {
			_, err := f.NewSheet(sheet)
			require.NoError(t, err)
		}
		for r, row := range sheets[sheet] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(sheet, cell, &row))
		}
	}
	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadTableExcel(t *testing.T) {
	path := writeTempExcel(t, map[string][][]interface{}{
		"Data": {
			{"CELL_LINE", "TISSUE"},
			{"A549", "lung"},
			{"HeLa", "cervix"},
		},
	}, []string{"Data"})

	tbl, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"CELL_LINE", "TISSUE"}, tbl.Headers)
	assert.Equal(t, 2, tbl.Len())
}

func TestReadTableExcelSkipsMetadataSheet(t *testing.T) {
	path := writeTempExcel(t, map[string][][]interface{}{
		"README": {
			{"This workbook was exported on 2024-01-01"},
		},
		"Results": {
			{"DRUG", "RESPONSE"},
			{"aspirin", "sensitive"},
		},
	}, []string{"README", "Results"})

	tbl, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"DRUG", "RESPONSE"}, tbl.Headers)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, []string{"aspirin", "sensitive"}, tbl.Rows[0])
}

func TestReadSampleExcel(t *testing.T) {
	path := writeTempExcel(t, map[string][][]interface{}{
		"Data": {
			{"x"},
			{"1"},
			{"2"},
			{"3"},
		},
	}, []string{"Data"})

	tbl, err := ReadSample(path, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}
