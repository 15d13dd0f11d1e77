package profile_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edacli/internal/dataset"
	"edacli/internal/profile"
)

// sampleTable mirrors the fixture used across the profile tests:
// one numeric column with a gap, one complete numeric column, one
// categorical column with a gap.
func sampleTable(t *testing.T) *dataset.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.csv")
	content := "age,height,city\n10,140,A\n20,150,B\n30,160,A\n,170,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	tab, err := dataset.Load(path, ',', "")
	require.NoError(t, err)
	return tab
}

func TestColumns_KindsAndMissing(t *testing.T) {
	tab := sampleTable(t)
	profiles := profile.Columns(tab)
	require.Len(t, profiles, 3)

	age := profiles[0]
	assert.Equal(t, "age", age.Name)
	assert.Equal(t, profile.KindNumeric, age.Kind)
	assert.Equal(t, 1, age.Missing)
	assert.InDelta(t, 0.25, age.MissingShare, 1e-12)
	assert.Equal(t, 3, age.Cardinality)

	city := profiles[2]
	assert.Equal(t, profile.KindCategorical, city.Kind)
	assert.Nil(t, city.Numeric)
	assert.Equal(t, 2, city.Cardinality)
}

func TestColumns_NumericSummary(t *testing.T) {
	tab := sampleTable(t)
	profiles := profile.Columns(tab)

	h := profiles[1]
	require.Equal(t, profile.KindNumeric, h.Kind)
	require.NotNil(t, h.Numeric)
	s := h.Numeric
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 155.0, s.Mean, 1e-9)
	assert.InDelta(t, 140.0, s.Min, 1e-9)
	assert.InDelta(t, 170.0, s.Max, 1e-9)
	assert.InDelta(t, 155.0, s.Median, 1e-9)
	assert.True(t, s.Q25 < s.Median && s.Median < s.Q75)
	// sample std of 140,150,160,170
	assert.InDelta(t, 12.909944, s.Std, 1e-5)
}

func TestColumns_MixedColumnIsCategorical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.csv")
	require.NoError(t, os.WriteFile(path, []byte("v\n1\ntwo\n3\n"), 0o644))
	tab, err := dataset.Load(path, ',', "")
	require.NoError(t, err)

	profiles := profile.Columns(tab)
	assert.Equal(t, profile.KindCategorical, profiles[0].Kind)
}

func TestColumns_AllMissingIsNumeric(t *testing.T) {
	// "numeric iff all non-missing cells parse" holds vacuously.
	path := filepath.Join(t.TempDir(), "void.csv")
	require.NoError(t, os.WriteFile(path, []byte("v,w\nNA,x\n,y\n"), 0o644))
	tab, err := dataset.Load(path, ',', "")
	require.NoError(t, err)

	profiles := profile.Columns(tab)
	p := profiles[0]
	assert.Equal(t, profile.KindNumeric, p.Kind)
	assert.Equal(t, 2, p.Missing)
	require.NotNil(t, p.Numeric)
	assert.Equal(t, 0, p.Numeric.Count)
	assert.True(t, math.IsNaN(p.Numeric.Mean))
}

func TestNumericValues(t *testing.T) {
	tab := sampleTable(t)
	c, ok := tab.Column("age")
	require.True(t, ok)
	assert.Equal(t, []float64{10, 20, 30}, profile.NumericValues(c))
}
