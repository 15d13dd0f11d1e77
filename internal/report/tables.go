package report

import (
	"bytes"
	"encoding/csv"
	"math"
	"path/filepath"
	"strconv"

	"edacli/internal/profile"
	"edacli/internal/utils"
)

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// writeCSV renders records and writes them atomically.
func writeCSV(path string, records [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func writeSummary(profiles []profile.ColumnProfile, path string) error {
	records := [][]string{{
		"name", "kind", "non_null", "missing_count", "missing_share", "unique",
		"mean", "std", "min", "q25", "median", "q75", "max",
	}}
	for _, p := range profiles {
		row := []string{
			p.Name,
			string(p.Kind),
			strconv.Itoa(p.NonNull),
			strconv.Itoa(p.Missing),
			formatFloat(p.MissingShare),
			strconv.Itoa(p.Cardinality),
			"", "", "", "", "", "", "",
		}
		if p.Numeric != nil {
			s := p.Numeric
			row[6] = formatFloat(s.Mean)
			row[7] = formatFloat(s.Std)
			row[8] = formatFloat(s.Min)
			row[9] = formatFloat(s.Q25)
			row[10] = formatFloat(s.Median)
			row[11] = formatFloat(s.Q75)
			row[12] = formatFloat(s.Max)
		}
		records = append(records, row)
	}
	return writeCSV(path, records)
}

// writeMissing lists every column so the per-column counts always sum to the
// table's total missing-cell count.
func writeMissing(profiles []profile.ColumnProfile, path string) error {
	records := [][]string{{"column", "missing_count", "missing_share"}}
	for _, p := range profiles {
		records = append(records, []string{
			p.Name,
			strconv.Itoa(p.Missing),
			formatFloat(p.MissingShare),
		})
	}
	return writeCSV(path, records)
}

func writeCorrelation(m profile.CorrelationMatrix, path string) error {
	header := append([]string{""}, m.Columns...)
	records := [][]string{header}
	for i, name := range m.Columns {
		row := make([]string, 0, len(m.Columns)+1)
		row = append(row, name)
		for j := range m.Columns {
			row = append(row, formatFloat(m.Values[i][j]))
		}
		records = append(records, row)
	}
	return writeCSV(path, records)
}

func writeTopCategories(cats []profile.ColumnCategories, dir string) ([]string, error) {
	if len(cats) == 0 {
		return nil, nil
	}
	if err := utils.EnsureDir(dir); err != nil {
		return nil, &WriteError{Path: dir, Err: err}
	}
	var paths []string
	var namer utils.FileNamer
	for _, cc := range cats {
		records := [][]string{{"value", "count"}}
		for _, tc := range cc.Top {
			records = append(records, []string{tc.Value, strconv.Itoa(tc.Count)})
		}
		path := filepath.Join(dir, namer.Name(cc.Column)+".csv")
		if err := writeCSV(path, records); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
