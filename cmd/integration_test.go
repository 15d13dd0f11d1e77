package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetReportFlags clears sticky Changed state that persists across
// invocations of the same command value in one test binary.
func resetReportFlags(t *testing.T) {
	t.Helper()
	for name, def := range map[string]string{
		"out-dir":           "reports",
		"sep":               ",",
		"encoding":          "utf-8",
		"max-hist-columns":  "5",
		"top-k-categories":  "10",
		"title":             "EDA Report",
		"min-missing-share": "0.1",
	} {
		if fl := reportCmd.Flags().Lookup(name); fl != nil {
			_ = fl.Value.Set(def)
			fl.Changed = false
		}
	}
	for name, def := range map[string]string{
		"sep":      ",",
		"encoding": "utf-8",
	} {
		if fl := overviewCmd.Flags().Lookup(name); fl != nil {
			_ = fl.Value.Set(def)
			fl.Changed = false
		}
	}
}

func runCmd(t *testing.T, args ...string) {
	t.Helper()
	resetReportFlags(t)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func writeSample(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "sample.csv")
	content := "id,age,city\n" +
		"1,30,A\n" +
		"2,,B\n" +
		"3,45,A\n" +
		"4,50,C\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestCLI_Overview(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	csvPath := writeSample(t, home)
	runCmd(t, "overview", csvPath)
}

func TestCLI_OverviewMissingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	resetReportFlags(t)
	rootCmd.SetArgs([]string{"overview", filepath.Join(home, "nope.csv")})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected load error for missing file, got nil")
	}
}

func TestCLI_ReportBundle(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	csvPath := writeSample(t, home)
	outDir := filepath.Join(home, "out")
	runCmd(t, "report", csvPath, "--out-dir", outDir, "--title", "Sample EDA", "--min-missing-share", "0.1")

	for _, name := range []string{
		"report.md", "summary.csv", "missing.csv", "correlation.csv",
		"missing_matrix.png", "correlation_heatmap.png",
		"hist_id.png", "hist_age.png",
		filepath.Join("top_categories", "city.csv"),
	} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("expected artifact %s: %v", name, err)
		}
	}

	md, err := os.ReadFile(filepath.Join(outDir, "report.md"))
	if err != nil {
		t.Fatalf("read report.md: %v", err)
	}
	if !strings.Contains(string(md), "# Sample EDA") {
		t.Fatalf("expected custom title in report.md")
	}
	if !strings.Contains(string(md), "⚠ `age`") {
		t.Fatalf("expected missing-value warning for age")
	}
}

func TestCLI_ReportInvalidTopK(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	csvPath := writeSample(t, home)
	resetReportFlags(t)
	rootCmd.SetArgs([]string{"report", csvPath, "--out-dir", filepath.Join(home, "out"), "--top-k-categories", "0"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected config error for non-positive top-k, got nil")
	}
}

func TestCLI_ConfigInitAndShow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	runCmd(t, "config", "init")
	if _, err := os.Stat(filepath.Join(home, ".edacli", "config.yaml")); err != nil {
		t.Fatalf("expected config file: %v", err)
	}
	runCmd(t, "config", "show")
}
