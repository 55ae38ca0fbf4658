// Package report turns the analysis outputs into on-disk artifacts: CSV
// tables, a Markdown narrative, a run manifest, and the plot images. The
// renderer creates directories as needed and overwrites existing files
// without prompting. On any failure it stops and returns the wrapped
// error; partially written output is left in place, there is no rollback.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"edascope/internal/dataset"
	"edascope/internal/eda"
	"edascope/internal/plot"
	"edascope/internal/utils"
)

// Options are the user-configurable knobs of report generation.
type Options struct {
	OutDir          string
	Title           string
	MaxHistColumns  int
	TopKCategories  int
	MinMissingShare float64
	// HighCardinalityShare is forwarded to the quality heuristics.
	HighCardinalityShare float64
	// Sep and Encoding are recorded in the manifest only.
	Sep      string
	Encoding string
}

// Result points at the generated artifacts.
type Result struct {
	Dir          string
	MarkdownPath string
}

// Generate runs the full pipeline over ds and writes every artifact
// under opts.OutDir.
func Generate(ds *dataset.Dataset, opts Options) (*Result, error) {
	if err := utils.EnsureDir(opts.OutDir); err != nil {
		return nil, fmt.Errorf("mkdir out dir: %w", err)
	}

	summary := eda.Summarize(ds)
	missing := eda.MissingTable(ds)
	corr := eda.Correlations(ds)
	cats := eda.TopCategories(ds, opts.TopKCategories)
	flags := eda.Quality(summary, missing, ds, eda.QualityOptions{
		HighCardinalityShare: opts.HighCardinalityShare,
	})

	if err := writeSummaryCSV(summary, filepath.Join(opts.OutDir, "summary.csv")); err != nil {
		return nil, err
	}
	if anyMissing(missing) {
		if err := writeMissingCSV(missing, filepath.Join(opts.OutDir, "missing.csv")); err != nil {
			return nil, err
		}
	}
	if corr != nil {
		if err := writeCorrelationCSV(corr, filepath.Join(opts.OutDir, "correlation.csv")); err != nil {
			return nil, err
		}
	}
	if err := writeTopCategories(cats, filepath.Join(opts.OutDir, "top_categories")); err != nil {
		return nil, err
	}

	mdPath := filepath.Join(opts.OutDir, "report.md")
	if err := writeMarkdown(mdPath, ds, summary, missing, flags, opts); err != nil {
		return nil, err
	}
	if err := writeManifest(filepath.Join(opts.OutDir, "manifest.yaml"), ds, opts); err != nil {
		return nil, err
	}

	if _, err := plot.Histograms(ds, opts.OutDir, opts.MaxHistColumns); err != nil {
		return nil, err
	}
	if err := plot.MissingMatrix(ds, filepath.Join(opts.OutDir, "missing_matrix.png")); err != nil {
		return nil, err
	}
	if err := plot.CorrelationHeatmap(corr, filepath.Join(opts.OutDir, "correlation_heatmap.png")); err != nil {
		return nil, err
	}

	return &Result{Dir: opts.OutDir, MarkdownPath: mdPath}, nil
}

func anyMissing(rows []eda.MissingRow) bool {
	for _, r := range rows {
		if r.Count > 0 {
			return true
		}
	}
	return false
}

// formatFloat renders a float the same way on every run so that rerunning
// the report yields byte-identical tables.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func writeSummaryCSV(s eda.Summary, path string) error {
	rows := [][]string{{"column", "type", "non_missing", "missing", "unique", "mean", "std", "min", "max"}}
	for _, c := range s.Columns {
		row := []string{
			c.Name,
			c.Kind.String(),
			strconv.Itoa(c.NonMissing),
			strconv.Itoa(c.Missing),
			strconv.Itoa(c.Distinct),
			"", "", "", "",
		}
		if c.Kind == dataset.KindNumeric {
			row[5] = formatFloat(c.Mean)
			row[6] = formatFloat(c.Std)
			row[7] = formatFloat(c.Min)
			row[8] = formatFloat(c.Max)
		}
		rows = append(rows, row)
	}
	return writeCSV(path, rows)
}

func writeMissingCSV(missing []eda.MissingRow, path string) error {
	rows := [][]string{{"column", "missing_count", "missing_share"}}
	for _, r := range missing {
		rows = append(rows, []string{r.Column, strconv.Itoa(r.Count), formatFloat(r.Share)})
	}
	return writeCSV(path, rows)
}

func writeCorrelationCSV(m *eda.CorrMatrix, path string) error {
	header := append([]string{""}, m.Columns...)
	rows := [][]string{header}
	for i, name := range m.Columns {
		row := make([]string, 0, len(m.Columns)+1)
		row = append(row, name)
		for j := range m.Columns {
			row = append(row, formatFloat(m.Values[i][j]))
		}
		rows = append(rows, row)
	}
	return writeCSV(path, rows)
}

func writeTopCategories(cats []eda.ColumnCategories, dir string) error {
	if len(cats) == 0 {
		return nil
	}
	if err := utils.EnsureDir(dir); err != nil {
		return fmt.Errorf("mkdir top_categories: %w", err)
	}
	for _, cc := range cats {
		rows := [][]string{{"value", "count"}}
		for _, tc := range cc.Top {
			rows = append(rows, []string{tc.Value, strconv.Itoa(tc.Count)})
		}
		path := filepath.Join(dir, plot.SanitizeName(cc.Column)+".csv")
		if err := writeCSV(path, rows); err != nil {
			return err
		}
	}
	return nil
}
