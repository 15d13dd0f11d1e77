package profile

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"edacli/internal/dataset"
)

// CorrelationMatrix is a symmetric Pearson correlation matrix over numeric
// columns. Values[i][j] is the coefficient for Columns[i] and Columns[j];
// zero-variance pairs are NaN. The matrix is empty when fewer than two
// numeric columns exist.
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

// Empty reports whether the matrix carries no coefficients.
func (m CorrelationMatrix) Empty() bool { return len(m.Columns) < 2 }

// At returns the coefficient for the named pair, or NaN when either column is
// not part of the matrix.
func (m CorrelationMatrix) At(a, b string) float64 {
	ia, ib := -1, -1
	for i, c := range m.Columns {
		if c == a {
			ia = i
		}
		if c == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return math.NaN()
	}
	return m.Values[ia][ib]
}

// Correlations computes pairwise Pearson correlations among the given numeric
// columns, using only rows where both cells are present. Column names keep
// table order as passed in.
func Correlations(t *dataset.Table, numeric []string) CorrelationMatrix {
	if len(numeric) < 2 {
		return CorrelationMatrix{}
	}

	cols := make([]numColumn, len(numeric))
	for i, name := range numeric {
		c, found := t.Column(name)
		nc := numColumn{vals: make([]float64, t.Rows), ok: make([]bool, t.Rows)}
		if found {
			for r, cell := range c.Cells {
				if c.Missing[r] {
					continue
				}
				if v, err := parseCell(cell); err == nil {
					nc.vals[r] = v
					nc.ok[r] = true
				}
			}
		}
		cols[i] = nc
	}

	n := len(numeric)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			var r float64
			if i == j {
				r = diagonal(cols[i].vals, cols[i].ok)
			} else {
				r = pairCorrelation(cols[i], cols[j])
			}
			mat[i][j] = r
			mat[j][i] = r
		}
	}
	return CorrelationMatrix{Columns: append([]string(nil), numeric...), Values: mat}
}

// diagonal is 1.0 for columns with any variance and NaN for constant ones.
func diagonal(vals []float64, ok []bool) float64 {
	first := math.NaN()
	seen := false
	for i, v := range vals {
		if !ok[i] {
			continue
		}
		if !seen {
			first = v
			seen = true
			continue
		}
		if v != first {
			return 1.0
		}
	}
	return math.NaN()
}

type numColumn struct {
	vals []float64
	ok   []bool
}

func pairCorrelation(a, b numColumn) float64 {
	var xs, ys []float64
	for i := range a.vals {
		if a.ok[i] && b.ok[i] {
			xs = append(xs, a.vals[i])
			ys = append(ys, b.vals[i])
		}
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
