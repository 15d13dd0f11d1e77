// Package render draws the report charts with gonum/plot: per-column
// histograms, the missing-value matrix, and the correlation heatmap.
package render

import (
	"fmt"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"edacli/internal/dataset"
	"edacli/internal/profile"
	"edacli/internal/utils"
)

const histBins = 10

// Histograms renders one histogram per numeric column, capped at maxColumns,
// selecting columns in table order. Columns with no values are skipped without
// consuming a slot. Returns the written file names, relative to dir.
func Histograms(t *dataset.Table, profiles []profile.ColumnProfile, dir string, maxColumns int) ([]string, error) {
	var names []string
	var namer utils.FileNamer
	for _, p := range profiles {
		if p.Kind != profile.KindNumeric {
			continue
		}
		if len(names) >= maxColumns {
			break
		}
		c, found := t.Column(p.Name)
		if !found {
			continue
		}
		vals := profile.NumericValues(c)
		if len(vals) == 0 {
			continue
		}
		name := "hist_" + namer.Name(p.Name) + ".png"
		if err := histogram(vals, p.Name, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func histogram(vals []float64, column, path string) error {
	pl := plot.New()
	pl.Title.Text = column
	pl.X.Label.Text = column
	pl.Y.Label.Text = "count"
	h, err := plotter.NewHist(plotter.Values(vals), histBins)
	if err != nil {
		return fmt.Errorf("histogram %s: %w", column, err)
	}
	pl.Add(h)
	if err := pl.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// missingGrid exposes the table's missing-cell mask as a binary heatmap grid:
// columns on X, records on Y, 1 where the cell is missing.
type missingGrid struct {
	t *dataset.Table
}

func (g missingGrid) Dims() (c, r int) { return len(g.t.Columns), g.t.Rows }
func (g missingGrid) X(c int) float64  { return float64(c) }
func (g missingGrid) Y(r int) float64  { return float64(r) }
func (g missingGrid) Z(c, r int) float64 {
	if g.t.Columns[c].Missing[r] {
		return 1
	}
	return 0
}

// MissingMatrix renders the presence/absence map of every cell in the table.
func MissingMatrix(t *dataset.Table, path string) error {
	pl := plot.New()
	pl.Title.Text = "Missing values"
	h := plotter.NewHeatMap(missingGrid{t: t}, moreland.SmoothBlueRed().Palette(2))
	h.Min, h.Max = 0, 1
	pl.Add(h)
	names := make([]string, len(t.Columns))
	for i := range t.Columns {
		names[i] = t.Columns[i].Name
	}
	pl.NominalX(names...)
	pl.Y.Label.Text = "row"
	if err := pl.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// corrGrid adapts a correlation matrix to a heatmap grid. NaN entries (zero
// variance) draw as 0 so they don't poison the color scale.
type corrGrid struct {
	m profile.CorrelationMatrix
}

func (g corrGrid) Dims() (c, r int) { n := len(g.m.Columns); return n, n }
func (g corrGrid) X(c int) float64  { return float64(c) }
func (g corrGrid) Y(r int) float64  { return float64(r) }
func (g corrGrid) Z(c, r int) float64 {
	v := g.m.Values[r][c]
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// CorrelationHeatmap renders the matrix with a diverging palette fixed to
// [-1, 1]. It is a no-op for an empty matrix.
func CorrelationHeatmap(m profile.CorrelationMatrix, path string) error {
	if m.Empty() {
		return nil
	}
	pl := plot.New()
	pl.Title.Text = "Correlation"
	h := plotter.NewHeatMap(corrGrid{m: m}, moreland.SmoothBlueRed().Palette(255))
	h.Min, h.Max = -1, 1
	pl.Add(h)
	pl.NominalX(m.Columns...)
	pl.NominalY(m.Columns...)
	if err := pl.Save(5*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
