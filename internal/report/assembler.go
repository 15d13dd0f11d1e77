// Package report writes the EDA bundle: the tabular CSV artifacts and the
// Markdown document that ties them and the rendered charts together.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"edacli/internal/dataset"
	"edacli/internal/profile"
	"edacli/internal/utils"
)

// Params are the assembler's run parameters.
type Params struct {
	Title           string
	MinMissingShare float64
}

// Images names the chart files already rendered into the output directory.
// Empty fields mean the chart was not produced.
type Images struct {
	Histograms         []string
	MissingMatrix      string
	CorrelationHeatmap string
}

// Bundle lists the artifacts produced by one report run.
type Bundle struct {
	ID         string
	Dir        string
	ReportPath string
	Tables     []string
	Images     []string
}

// Write emits all table artifacts plus report.md into dir. Files of the same
// name are overwritten without confirmation; on failure, artifacts already
// written are left as-is.
func Write(dir string, t *dataset.Table, profiles []profile.ColumnProfile, corr profile.CorrelationMatrix, cats []profile.ColumnCategories, flags profile.Flags, images Images, p Params) (*Bundle, error) {
	b := &Bundle{Dir: dir}

	summaryPath := filepath.Join(dir, "summary.csv")
	if err := writeSummary(profiles, summaryPath); err != nil {
		return nil, err
	}
	b.Tables = append(b.Tables, summaryPath)

	missingPath := filepath.Join(dir, "missing.csv")
	if err := writeMissing(profiles, missingPath); err != nil {
		return nil, err
	}
	b.Tables = append(b.Tables, missingPath)

	if !corr.Empty() {
		corrPath := filepath.Join(dir, "correlation.csv")
		if err := writeCorrelation(corr, corrPath); err != nil {
			return nil, err
		}
		b.Tables = append(b.Tables, corrPath)
	}

	catPaths, err := writeTopCategories(cats, filepath.Join(dir, "top_categories"))
	if err != nil {
		return nil, err
	}
	b.Tables = append(b.Tables, catPaths...)

	body := renderMarkdown(t, profiles, corr, cats, flags, images, p)
	// Content-derived run ID keeps report output deterministic for
	// identical input and configuration.
	b.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(body)).String()
	md := body + fmt.Sprintf("---\n\nRun ID: `%s`\n", b.ID)
	b.ReportPath = filepath.Join(dir, "report.md")
	if err := utils.SafeWriteFile(b.ReportPath, []byte(md)); err != nil {
		return nil, &WriteError{Path: b.ReportPath, Err: err}
	}

	b.Images = append(b.Images, images.Histograms...)
	if images.MissingMatrix != "" {
		b.Images = append(b.Images, images.MissingMatrix)
	}
	if images.CorrelationHeatmap != "" {
		b.Images = append(b.Images, images.CorrelationHeatmap)
	}
	return b, nil
}

func renderMarkdown(t *dataset.Table, profiles []profile.ColumnProfile, corr profile.CorrelationMatrix, cats []profile.ColumnCategories, flags profile.Flags, images Images, p Params) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	fmt.Fprintf(&b, "Source file: `%s`\n\n", t.Source)
	fmt.Fprintf(&b, "Rows: **%d**, columns: **%d**\n\n", t.Rows, t.NumCols())

	writeQualitySection(&b, flags)
	writeMissingSection(&b, profiles, images, p.MinMissingShare)
	writeColumnsSection(&b, profiles)
	writeCorrelationSection(&b, corr, images)
	writeCategoriesSection(&b, cats)
	writeHistogramsSection(&b, images)

	return b.String()
}

func writeQualitySection(b *strings.Builder, f profile.Flags) {
	b.WriteString("## Data quality\n\n")
	fmt.Fprintf(b, "- Quality score: **%.2f**\n", f.QualityScore)
	fmt.Fprintf(b, "- Max missing share per column: **%.1f%%**\n", f.MaxMissingShare*100)
	fmt.Fprintf(b, "- Duplicate rows: **%d**\n", f.DuplicateRows)
	fmt.Fprintf(b, "- Too few rows: **%t**\n", f.TooFewRows)
	fmt.Fprintf(b, "- Too many columns: **%t**\n", f.TooManyColumns)
	fmt.Fprintf(b, "- Too many missing: **%t**\n", f.TooManyMissing)
	if len(f.ConstantColumns) > 0 {
		fmt.Fprintf(b, "- Constant columns: %s\n", codeList(f.ConstantColumns))
	}
	if len(f.HighCardinality) > 0 {
		fmt.Fprintf(b, "- High-cardinality categorical columns: %s\n", codeList(f.HighCardinality))
	}
	if len(f.SuspiciousIDColumns) > 0 {
		fmt.Fprintf(b, "- ID columns with duplicate values: %s\n", codeList(f.SuspiciousIDColumns))
	}
	if len(f.ManyZeroColumns) > 0 {
		fmt.Fprintf(b, "- Mostly-zero numeric columns: %s\n", codeList(f.ManyZeroColumns))
	}
	b.WriteString("\n")
}

func writeMissingSection(b *strings.Builder, profiles []profile.ColumnProfile, images Images, threshold float64) {
	b.WriteString("## Missing values\n\n")
	warned := false
	for _, p := range profiles {
		if p.Missing > 0 && p.MissingShare >= threshold {
			fmt.Fprintf(b, "- ⚠ `%s`: %.1f%% missing (threshold %.1f%%)\n", p.Name, p.MissingShare*100, threshold*100)
			warned = true
		}
	}
	if !warned {
		fmt.Fprintf(b, "No column exceeds the missing-share threshold (%.1f%%).\n", threshold*100)
	}
	b.WriteString("\nSee `missing.csv`.\n\n")
	if images.MissingMatrix != "" {
		fmt.Fprintf(b, "![Missing matrix](%s)\n\n", images.MissingMatrix)
	}
}

func writeColumnsSection(b *strings.Builder, profiles []profile.ColumnProfile) {
	b.WriteString("## Columns\n\n")
	for _, p := range profiles {
		fmt.Fprintf(b, "- `%s`: %s, missing %d (%.1f%%), unique %d", p.Name, p.Kind, p.Missing, p.MissingShare*100, p.Cardinality)
		if p.Numeric != nil && p.Numeric.Count > 0 {
			s := p.Numeric
			fmt.Fprintf(b, "; mean %.4g, std %.4g, min %.4g, max %.4g", s.Mean, s.Std, s.Min, s.Max)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nSee `summary.csv`.\n\n")
}

func writeCorrelationSection(b *strings.Builder, corr profile.CorrelationMatrix, images Images) {
	b.WriteString("## Correlations\n\n")
	if corr.Empty() {
		b.WriteString("Fewer than two numeric columns; correlation matrix skipped.\n\n")
		return
	}
	b.WriteString("See `correlation.csv`.\n\n")
	if images.CorrelationHeatmap != "" {
		fmt.Fprintf(b, "![Correlation heatmap](%s)\n\n", images.CorrelationHeatmap)
	}
}

func writeCategoriesSection(b *strings.Builder, cats []profile.ColumnCategories) {
	b.WriteString("## Categorical columns\n\n")
	if len(cats) == 0 {
		b.WriteString("No categorical columns found.\n\n")
		return
	}
	for _, cc := range cats {
		fmt.Fprintf(b, "### %s\n\n", cc.Column)
		for _, tc := range cc.Top {
			fmt.Fprintf(b, "- %s: %d\n", tc.Value, tc.Count)
		}
		b.WriteString("\n")
	}
	b.WriteString("See `top_categories/`.\n\n")
}

func writeHistogramsSection(b *strings.Builder, images Images) {
	b.WriteString("## Histograms\n\n")
	if len(images.Histograms) == 0 {
		b.WriteString("No numeric columns to plot.\n\n")
		return
	}
	for _, name := range images.Histograms {
		fmt.Fprintf(b, "![%s](%s)\n", name, name)
	}
	b.WriteString("\n")
}

func codeList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return strings.Join(quoted, ", ")
}
