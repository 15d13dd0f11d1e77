package cmd

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	cfgpkg "edacli/internal/config"
	"edacli/internal/dataset"
	"edacli/internal/profile"
)

var (
	ovSep      string
	ovEncoding string
)

var overviewCmd = &cobra.Command{
	Use:   "overview <csv>",
	Short: "Print a quick dataset overview with quality flags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sep, err := cfgpkg.ParseSeparator(ovSep)
		if err != nil {
			return err
		}
		t, err := dataset.Load(args[0], sep, ovEncoding)
		if err != nil {
			return err
		}
		log.Debug("loaded table", "rows", t.Rows, "columns", t.NumCols())

		profiles := profile.Columns(t)
		flags := profile.Quality(t, profiles)

		fmt.Printf("Rows: %d\n", t.Rows)
		fmt.Printf("Columns: %d\n\n", t.NumCols())
		printProfileTable(os.Stdout, profiles)
		fmt.Println()
		printQualityFlags(os.Stdout, flags)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
	overviewCmd.Flags().StringVar(&ovSep, "sep", ",", "CSV separator character ('tab' for tab)")
	overviewCmd.Flags().StringVar(&ovEncoding, "encoding", "utf-8", "file encoding (IANA charset name)")
}

func printProfileTable(w io.Writer, profiles []profile.ColumnProfile) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"column", "kind", "missing", "share", "unique", "mean", "std"})
	for _, p := range profiles {
		mean, std := "", ""
		if p.Numeric != nil {
			mean = fmtStat(p.Numeric.Mean)
			std = fmtStat(p.Numeric.Std)
		}
		tw.AppendRow(table.Row{
			p.Name, string(p.Kind), p.Missing,
			fmt.Sprintf("%.1f%%", p.MissingShare*100),
			p.Cardinality, mean, std,
		})
	}
	tw.Render()
}

func printQualityFlags(w io.Writer, f profile.Flags) {
	fmt.Fprintln(w, "Quality flags:")
	fmt.Fprintf(w, "  has_missing: %t\n", f.HasMissing)
	fmt.Fprintf(w, "  has_duplicate_rows: %t\n", f.HasDuplicateRows)
	fmt.Fprintf(w, "  has_constant_columns: %t\n", f.HasConstantColumns)
	fmt.Fprintf(w, "  has_high_cardinality_categories: %t\n", f.HasHighCardinalityCategories)
	fmt.Fprintf(w, "  has_suspicious_id_duplicates: %t\n", f.HasSuspiciousIDDuplicates)
	fmt.Fprintf(w, "  has_many_zero_values: %t\n", f.HasManyZeroValues)
	fmt.Fprintf(w, "  too_few_rows: %t\n", f.TooFewRows)
	fmt.Fprintf(w, "  too_many_columns: %t\n", f.TooManyColumns)
	fmt.Fprintf(w, "  too_many_missing: %t\n", f.TooManyMissing)
	fmt.Fprintf(w, "  quality_score: %.2f\n", f.QualityScore)
}

func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return fmt.Sprintf("%.4g", v)
}
