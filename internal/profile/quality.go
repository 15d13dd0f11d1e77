package profile

import (
	"strings"

	"edacli/internal/dataset"
)

// Heuristic thresholds for the quality flags.
const (
	highCardinalityThreshold = 100
	zeroShareThreshold       = 0.5
	minReliableRows          = 30
	maxReasonableColumns     = 100
	missingShareCeiling      = 0.5
)

// Flags holds heuristic data-quality signals for a dataset and an aggregate
// score in [0, 1] where 1 means no detected problems.
type Flags struct {
	HasMissing                   bool
	HasDuplicateRows             bool
	HasConstantColumns           bool
	HasHighCardinalityCategories bool
	HasSuspiciousIDDuplicates    bool
	HasManyZeroValues            bool
	TooFewRows                   bool
	TooManyColumns               bool
	TooManyMissing               bool

	MaxMissingShare     float64
	DuplicateRows       int
	ConstantColumns     []string
	HighCardinality     []string
	SuspiciousIDColumns []string
	ManyZeroColumns     []string

	QualityScore float64
}

// Quality computes the flags for a loaded table and its column profiles.
func Quality(t *dataset.Table, profiles []ColumnProfile) Flags {
	f := Flags{QualityScore: 1.0}

	for _, p := range profiles {
		if p.Missing > 0 {
			f.HasMissing = true
		}
		if p.MissingShare > f.MaxMissingShare {
			f.MaxMissingShare = p.MissingShare
		}
		if p.NonNull > 0 && p.Cardinality == 1 {
			f.ConstantColumns = append(f.ConstantColumns, p.Name)
		}
		if p.Kind == KindCategorical && p.Cardinality > highCardinalityThreshold {
			f.HighCardinality = append(f.HighCardinality, p.Name)
		}
	}
	f.HasConstantColumns = len(f.ConstantColumns) > 0
	f.HasHighCardinalityCategories = len(f.HighCardinality) > 0

	f.DuplicateRows = countDuplicateRows(t)
	f.HasDuplicateRows = f.DuplicateRows > 0

	f.SuspiciousIDColumns = idColumnsWithDuplicates(t)
	f.HasSuspiciousIDDuplicates = len(f.SuspiciousIDColumns) > 0

	f.ManyZeroColumns = zeroHeavyColumns(t, profiles)
	f.HasManyZeroValues = len(f.ManyZeroColumns) > 0

	f.TooFewRows = t.Rows < minReliableRows
	f.TooManyColumns = t.NumCols() > maxReasonableColumns
	f.TooManyMissing = f.MaxMissingShare > missingShareCeiling

	f.QualityScore = score(t, f)
	return f
}

func score(t *dataset.Table, f Flags) float64 {
	penalty := 0.0
	if f.HasMissing {
		penalty += f.MaxMissingShare * 0.3
	}
	if f.HasDuplicateRows && t.Rows > 0 {
		dupShare := float64(f.DuplicateRows) / float64(t.Rows)
		p := dupShare * 0.5
		if p > 0.2 {
			p = 0.2
		}
		penalty += p
	}
	if f.HasConstantColumns && t.NumCols() > 0 {
		penalty += 0.1 * float64(len(f.ConstantColumns)) / float64(t.NumCols())
	}
	if f.HasHighCardinalityCategories {
		penalty += 0.15
	}
	if f.HasSuspiciousIDDuplicates {
		penalty += 0.2
	}
	if f.HasManyZeroValues {
		penalty += 0.1
	}
	s := 1.0 - penalty
	if s < 0 {
		s = 0
	}
	return s
}

func countDuplicateRows(t *dataset.Table) int {
	seen := make(map[string]struct{}, t.Rows)
	dups := 0
	for i := 0; i < t.Rows; i++ {
		key := strings.Join(t.Row(i), "\x1f")
		if _, ok := seen[key]; ok {
			dups++
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}

// idColumnsWithDuplicates flags columns whose name contains "id" and whose
// non-missing values repeat.
func idColumnsWithDuplicates(t *dataset.Table) []string {
	var out []string
	for i := range t.Columns {
		c := &t.Columns[i]
		if !strings.Contains(strings.ToLower(c.Name), "id") {
			continue
		}
		seen := make(map[string]struct{}, len(c.Cells))
		dup := false
		for r, cell := range c.Cells {
			if c.Missing[r] {
				continue
			}
			if _, ok := seen[cell]; ok {
				dup = true
				break
			}
			seen[cell] = struct{}{}
		}
		if dup {
			out = append(out, c.Name)
		}
	}
	return out
}

func zeroHeavyColumns(t *dataset.Table, profiles []ColumnProfile) []string {
	if t.Rows == 0 {
		return nil
	}
	var out []string
	for _, p := range profiles {
		if p.Kind != KindNumeric {
			continue
		}
		c, found := t.Column(p.Name)
		if !found {
			continue
		}
		zeros := 0
		for _, v := range NumericValues(c) {
			if v == 0 {
				zeros++
			}
		}
		if float64(zeros)/float64(t.Rows) > zeroShareThreshold {
			out = append(out, p.Name)
		}
	}
	return out
}
