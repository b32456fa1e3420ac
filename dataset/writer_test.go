package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	tbl := &Table{
		Name:    "out.csv",
		Headers: []string{"patient_id", "age", "treatment"},
		Rows: [][]string{
			{"p1", "34", "cisplatin"},
			{"p2", "51"}, // short row gets padded
		},
	}

	require.NoError(t, WriteCSV(tbl, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "patient_id,age,treatment\np1,34,cisplatin\np2,51,\n", string(data))

	t.Run("round trips through the reader", func(t *testing.T) {
		got, err := ReadTable(path)
		require.NoError(t, err)
		assert.Equal(t, tbl.Headers, got.Headers)
		require.Len(t, got.Rows, 2)
		assert.Equal(t, []string{"p2", "51", ""}, got.Rows[1])
	})

	t.Run("unwritable path", func(t *testing.T) {
		err := WriteCSV(tbl, filepath.Join(t.TempDir(), "missing", "out.csv"))
		assert.Error(t, err)
	})
}
