package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	cfgpkg "edacli/internal/config"
	"edacli/internal/dataset"
	"edacli/internal/profile"
	"edacli/internal/render"
	"edacli/internal/report"
	"edacli/internal/utils"
)

var (
	repOutDir     string
	repSep        string
	repEncoding   string
	repMaxHist    int
	repTopK       int
	repTitle      string
	repMinMissing float64
)

var reportCmd = &cobra.Command{
	Use:   "report <csv>",
	Short: "Generate a full EDA report bundle",
	Long: `Generate a full EDA report into the output directory:
- report.md plus summary, missing-value and correlation tables (CSV);
- top-k categories per categorical column;
- charts: histograms, missing-value matrix, correlation heatmap.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		f := cmd.Flags()
		if f.Changed("out-dir") {
			c.OutDir = repOutDir
		}
		if f.Changed("sep") {
			c.Separator = repSep
		}
		if f.Changed("encoding") {
			c.Encoding = repEncoding
		}
		if f.Changed("max-hist-columns") {
			c.MaxHistColumns = repMaxHist
		}
		if f.Changed("top-k-categories") {
			c.TopKCategories = repTopK
		}
		if f.Changed("title") {
			c.Title = repTitle
		}
		if f.Changed("min-missing-share") {
			c.MinMissingShare = repMinMissing
		}

		sep, err := cfgpkg.ParseSeparator(c.Separator)
		if err != nil {
			return err
		}
		rc := cfgpkg.Report{
			Separator:       sep,
			Encoding:        c.Encoding,
			OutDir:          c.OutDir,
			MaxHistColumns:  c.MaxHistColumns,
			TopKCategories:  c.TopKCategories,
			Title:           c.Title,
			MinMissingShare: c.MinMissingShare,
		}
		if err := rc.Validate(); err != nil {
			return err
		}
		return runReport(args[0], rc)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&repOutDir, "out-dir", "reports", "output directory for the report bundle")
	reportCmd.Flags().StringVar(&repSep, "sep", ",", "CSV separator character ('tab' for tab)")
	reportCmd.Flags().StringVar(&repEncoding, "encoding", "utf-8", "file encoding (IANA charset name)")
	reportCmd.Flags().IntVar(&repMaxHist, "max-hist-columns", 5, "maximum numeric columns to plot histograms for")
	reportCmd.Flags().IntVar(&repTopK, "top-k-categories", 10, "top categories to keep per categorical column")
	reportCmd.Flags().StringVar(&repTitle, "title", "EDA Report", "report title")
	reportCmd.Flags().Float64Var(&repMinMissing, "min-missing-share", 0.1, "missing-share threshold for report warnings")
}

func runReport(path string, rc cfgpkg.Report) error {
	t, err := dataset.Load(path, rc.Separator, rc.Encoding)
	if err != nil {
		return err
	}
	log.Debug("loaded table", "rows", t.Rows, "columns", t.NumCols())

	profiles := profile.Columns(t)
	var numeric, categorical []string
	for _, p := range profiles {
		switch p.Kind {
		case profile.KindNumeric:
			numeric = append(numeric, p.Name)
		case profile.KindCategorical:
			categorical = append(categorical, p.Name)
		}
	}
	corr := profile.Correlations(t, numeric)
	cats := profile.TopCategories(t, categorical, rc.TopKCategories)
	flags := profile.Quality(t, profiles)
	log.Debug("profiled", "numeric", len(numeric), "categorical", len(categorical), "quality", flags.QualityScore)

	if err := utils.EnsureDir(rc.OutDir); err != nil {
		return &report.WriteError{Path: rc.OutDir, Err: err}
	}

	imgs := report.Images{}
	imgs.Histograms, err = render.Histograms(t, profiles, rc.OutDir, rc.MaxHistColumns)
	if err != nil {
		return &report.WriteError{Path: rc.OutDir, Err: err}
	}
	if t.Rows > 0 {
		if err := render.MissingMatrix(t, filepath.Join(rc.OutDir, "missing_matrix.png")); err != nil {
			return &report.WriteError{Path: rc.OutDir, Err: err}
		}
		imgs.MissingMatrix = "missing_matrix.png"
	}
	if !corr.Empty() {
		if err := render.CorrelationHeatmap(corr, filepath.Join(rc.OutDir, "correlation_heatmap.png")); err != nil {
			return &report.WriteError{Path: rc.OutDir, Err: err}
		}
		imgs.CorrelationHeatmap = "correlation_heatmap.png"
	}

	bundle, err := report.Write(rc.OutDir, t, profiles, corr, cats, flags, imgs, report.Params{
		Title:           rc.Title,
		MinMissingShare: rc.MinMissingShare,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Report written to %s\n", bundle.Dir)
	fmt.Printf("- Markdown: %s\n", bundle.ReportPath)
	fmt.Println("- Tables: summary.csv, missing.csv, correlation.csv, top_categories/*.csv")
	fmt.Println("- Charts: hist_*.png, missing_matrix.png, correlation_heatmap.png")
	return nil
}
