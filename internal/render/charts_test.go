package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edacli/internal/dataset"
	"edacli/internal/profile"
	"edacli/internal/render"
)

func chartTable(t *testing.T) *dataset.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "charts.csv")
	content := "a,b,city\n1,10,X\n2,,Y\n3,30,X\n4,40,Z\n5,55,X\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	tab, err := dataset.Load(path, ',', "")
	require.NoError(t, err)
	return tab
}

func TestHistograms_WritesOnePerNumericColumn(t *testing.T) {
	tab := chartTable(t)
	dir := t.TempDir()
	names, err := render.Histograms(tab, profile.Columns(tab), dir, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"hist_a.png", "hist_b.png"}, names)
	for _, n := range names {
		info, err := os.Stat(filepath.Join(dir, n))
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestHistograms_RespectsMaxColumns(t *testing.T) {
	tab := chartTable(t)
	dir := t.TempDir()
	names, err := render.Histograms(tab, profile.Columns(tab), dir, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"hist_a.png"}, names)
}

func TestHistograms_CollidingNamesGetDistinctFiles(t *testing.T) {
	// Both headers sanitize to a_b; one run must still yield two files.
	path := filepath.Join(t.TempDir(), "collide.csv")
	content := "a b,a*b\n1,10\n2,20\n3,30\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	tab, err := dataset.Load(path, ',', "")
	require.NoError(t, err)

	dir := t.TempDir()
	names, err := render.Histograms(tab, profile.Columns(tab), dir, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"hist_a_b.png", "hist_a_b_2.png"}, names)
	for _, n := range names {
		_, err := os.Stat(filepath.Join(dir, n))
		require.NoError(t, err)
	}
}

func TestMissingMatrix(t *testing.T) {
	tab := chartTable(t)
	path := filepath.Join(t.TempDir(), "missing_matrix.png")
	require.NoError(t, render.MissingMatrix(tab, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCorrelationHeatmap(t *testing.T) {
	tab := chartTable(t)
	m := profile.Correlations(tab, []string{"a", "b"})
	require.False(t, m.Empty())

	path := filepath.Join(t.TempDir(), "correlation_heatmap.png")
	require.NoError(t, render.CorrelationHeatmap(m, path))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestCorrelationHeatmap_EmptyMatrixIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "correlation_heatmap.png")
	require.NoError(t, render.CorrelationHeatmap(profile.CorrelationMatrix{}, path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
