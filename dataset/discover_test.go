package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"b.csv",
		"a.xlsx",
		"data.tsv",
		"notes.txt",          // unsupported
		".hidden.csv",        // hidden
		"b.csv.meta.txt",     // sidecar
		"a.xlsx.meta.json",   // sidecar
	}
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0755))

	paths, err := Discover(dir)
	require.NoError(t, err)

	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	assert.Equal(t, []string{"a.xlsx", "b.csv", "data.tsv"}, names)
}

func TestDiscoverMissingFolder(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("data.csv"))
	assert.True(t, IsSupported("DATA.XLSX"))
	assert.False(t, IsSupported("data.parquet"))
}

func TestSidecar(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "trial.csv")
	require.NoError(t, os.WriteFile(dataPath, []byte("x\n1\n"), 0644))

	t.Run("no sidecar", func(t *testing.T) {
		meta, err := Sidecar(dataPath)
		require.NoError(t, err)
		assert.Empty(t, meta)
	})

	t.Run("txt sidecar", func(t *testing.T) {
		require.NoError(t, os.WriteFile(dataPath+".meta.txt", []byte("Collected in 2019.\n"), 0644))
		meta, err := Sidecar(dataPath)
		require.NoError(t, err)
		assert.Equal(t, "Collected in 2019.", meta)
	})
}

func TestTableHelpers(t *testing.T) {
	tbl := &Table{
		Name:    "t.csv",
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}},
	}

	t.Run("head", func(t *testing.T) {
		head := tbl.Head(2)
		assert.Equal(t, 2, head.Len())
		// Head is a copy: mutating it leaves the original alone.
		head.Rows[0][0] = "mutated"
		assert.Equal(t, "1", tbl.Rows[0][0])
	})

	t.Run("head beyond length", func(t *testing.T) {
		assert.Equal(t, 3, tbl.Head(10).Len())
	})

	t.Run("column", func(t *testing.T) {
		assert.Equal(t, []string{"2", "4", "6"}, tbl.Column("b"))
		assert.Nil(t, tbl.Column("missing"))
	})

	t.Run("render", func(t *testing.T) {
		out := tbl.Render()
		assert.Contains(t, out, "a")
		assert.Contains(t, out, "6")
	})
}
