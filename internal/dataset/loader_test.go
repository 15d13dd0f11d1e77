package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"edacli/internal/dataset"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Basic(t *testing.T) {
	path := writeCSV(t, "people.csv", "id,age,city\n1,34,Moscow\n2,,London\n3,51,Moscow\n")

	tab, err := dataset.Load(path, ',', "utf-8")
	require.NoError(t, err)

	assert.Equal(t, "people.csv", tab.Source)
	assert.Equal(t, 3, tab.Rows)
	assert.Equal(t, 3, tab.NumCols())
	assert.Equal(t, []string{"id", "age", "city"}, []string{tab.Columns[0].Name, tab.Columns[1].Name, tab.Columns[2].Name})

	age, ok := tab.Column("age")
	require.True(t, ok)
	assert.Equal(t, 1, age.MissingCount())
	assert.Equal(t, 1, tab.MissingTotal())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.csv"), ',', "")
	require.Error(t, err)
	var le *dataset.LoadError
	assert.True(t, errors.As(err, &le))
}

func TestLoad_RaggedRows(t *testing.T) {
	path := writeCSV(t, "bad.csv", "a,b\n1,2\n3\n")
	_, err := dataset.Load(path, ',', "")
	require.Error(t, err)
	var le *dataset.LoadError
	assert.True(t, errors.As(err, &le))
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeCSV(t, "empty.csv", "")
	_, err := dataset.Load(path, ',', "")
	require.Error(t, err)
}

func TestLoad_DuplicateHeader(t *testing.T) {
	path := writeCSV(t, "dup.csv", "a,a\n1,2\n")
	_, err := dataset.Load(path, ',', "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column name")
}

func TestLoad_Semicolon(t *testing.T) {
	path := writeCSV(t, "semi.csv", "a;b\n1;x\n2;y\n")
	tab, err := dataset.Load(path, ';', "")
	require.NoError(t, err)
	assert.Equal(t, 2, tab.Rows)
	assert.Equal(t, 2, tab.NumCols())
}

func TestLoad_NATokens(t *testing.T) {
	path := writeCSV(t, "na.csv", "v\nNA\nNaN\nnull\nNone\n1\n")
	tab, err := dataset.Load(path, ',', "")
	require.NoError(t, err)
	assert.Equal(t, 4, tab.Columns[0].MissingCount())
}

func TestLoad_Windows1251(t *testing.T) {
	enc := charmap.Windows1251.NewEncoder()
	raw, err := enc.String("город,n\nМосква,1\n")
	require.NoError(t, err)
	path := writeCSV(t, "ru.csv", raw)

	tab, err := dataset.Load(path, ',', "windows-1251")
	require.NoError(t, err)
	require.Equal(t, 2, tab.NumCols())
	assert.Equal(t, "город", tab.Columns[0].Name)
	assert.Equal(t, "Москва", tab.Columns[0].Cells[0])
}

func TestLoad_UnknownEncoding(t *testing.T) {
	path := writeCSV(t, "x.csv", "a\n1\n")
	_, err := dataset.Load(path, ',', "no-such-charset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown encoding")
}

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "None", "  "} {
		assert.True(t, dataset.IsMissing(v), "%q should be missing", v)
	}
	for _, v := range []string{"0", "x", "na srednem"} {
		assert.False(t, dataset.IsMissing(v), "%q should not be missing", v)
	}
}
