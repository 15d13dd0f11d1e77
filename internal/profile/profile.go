package profile

import (
	"math"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"edacli/internal/dataset"
)

// Kind classifies a column. A column is numeric when every non-missing cell
// parses as a number, categorical otherwise.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)

// NumericSummary holds descriptive statistics of a numeric column. Fields are
// NaN when there are not enough values to compute them.
type NumericSummary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// ColumnProfile describes one table column.
type ColumnProfile struct {
	Name         string
	Kind         Kind
	Rows         int
	NonNull      int
	Missing      int
	MissingShare float64
	Cardinality  int
	// Numeric is nil for categorical columns.
	Numeric *NumericSummary
}

// Columns profiles every column of the table, in table column order.
func Columns(t *dataset.Table) []ColumnProfile {
	out := make([]ColumnProfile, 0, len(t.Columns))
	for i := range t.Columns {
		out = append(out, profileColumn(&t.Columns[i], t.Rows))
	}
	return out
}

func profileColumn(c *dataset.Column, rows int) ColumnProfile {
	p := ColumnProfile{Name: c.Name, Kind: KindNumeric, Rows: rows}
	distinct := make(map[string]struct{})
	var vals []float64
	for i, cell := range c.Cells {
		if c.Missing[i] {
			p.Missing++
			continue
		}
		p.NonNull++
		distinct[cell] = struct{}{}
		if p.Kind == KindNumeric {
			if v, err := parseCell(cell); err == nil {
				vals = append(vals, v)
			} else {
				p.Kind = KindCategorical
			}
		}
	}
	if rows > 0 {
		p.MissingShare = float64(p.Missing) / float64(rows)
	}
	p.Cardinality = len(distinct)
	if p.Kind == KindNumeric {
		p.Numeric = summarize(vals)
	}
	return p
}

func parseCell(cell string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(cell), 64)
}

// NumericValues returns the parsed non-missing values of a column, skipping
// cells that do not parse. For a column profiled as numeric this is every
// non-missing cell.
func NumericValues(c *dataset.Column) []float64 {
	var vals []float64
	for i, cell := range c.Cells {
		if c.Missing[i] {
			continue
		}
		if v, err := parseCell(cell); err == nil {
			vals = append(vals, v)
		}
	}
	return vals
}

func summarize(vals []float64) *NumericSummary {
	nan := math.NaN()
	s := &NumericSummary{Count: len(vals), Mean: nan, Std: nan, Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan}
	if len(vals) == 0 {
		return s
	}
	s.Mean = stat.Mean(vals, nil)
	if len(vals) > 1 {
		s.Std = stat.StdDev(vals, nil)
	}
	if v, err := stats.Min(vals); err == nil {
		s.Min = v
	}
	if v, err := stats.Max(vals); err == nil {
		s.Max = v
	}
	if v, err := stats.Median(vals); err == nil {
		s.Median = v
	}
	if v, err := stats.Percentile(vals, 25); err == nil {
		s.Q25 = v
	}
	if v, err := stats.Percentile(vals, 75); err == nil {
		s.Q75 = v
	}
	return s
}
