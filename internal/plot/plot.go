// Package plot renders the report images: per-column histograms, a
// missing-value matrix, and a correlation heatmap. Rendering is delegated
// to gonum/plot; this package only shapes the data and names the files.
package plot

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"edascope/internal/dataset"
	"edascope/internal/eda"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
	histBins   = 16
)

// Histograms renders hist_<column>.png for each numeric column into dir,
// capped at maxCols files. Columns with no values or a constant value are
// skipped: there is nothing to bin. Returns the written file paths.
func Histograms(ds *dataset.Dataset, dir string, maxCols int) ([]string, error) {
	if maxCols <= 0 {
		return nil, nil
	}
	var written []string
	for _, c := range ds.NumericColumns() {
		if len(written) >= maxCols {
			break
		}
		vals := c.NumericValues()
		if len(vals) == 0 {
			continue
		}
		lo, hi := vals[0], vals[0]
		for _, v := range vals {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if lo == hi {
			continue
		}
		p := plot.New()
		p.Title.Text = c.Name
		p.Y.Label.Text = "count"
		h, err := plotter.NewHist(plotter.Values(vals), histBins)
		if err != nil {
			return written, fmt.Errorf("histogram %s: %w", c.Name, err)
		}
		p.Add(h)
		path := filepath.Join(dir, "hist_"+SanitizeName(c.Name)+".png")
		if err := p.Save(plotWidth, plotHeight, path); err != nil {
			return written, fmt.Errorf("save histogram %s: %w", c.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// missGrid exposes the dataset missingness mask as a columns×rows grid,
// 1 where a cell is missing.
type missGrid struct {
	ds *dataset.Dataset
}

func (g missGrid) Dims() (int, int) { return g.ds.NCols(), g.ds.NRows }
func (g missGrid) X(c int) float64  { return float64(c) }
func (g missGrid) Y(r int) float64  { return float64(r) }
func (g missGrid) Z(c, r int) float64 {
	if g.ds.Columns[c].Missing[r] {
		return 1
	}
	return 0
}

// MissingMatrix renders the missingness mask as a heat map. A dataset
// with no rows or no columns produces no file and no error.
func MissingMatrix(ds *dataset.Dataset, path string) error {
	if ds.NRows == 0 || ds.NCols() == 0 {
		return nil
	}
	p := plot.New()
	p.Title.Text = "Missing values"
	p.Y.Label.Text = "row"
	hm := plotter.NewHeatMap(missGrid{ds: ds}, palette.Heat(12, 1))
	hm.Min, hm.Max = 0, 1
	p.Add(hm)
	names := make([]string, ds.NCols())
	for i := range ds.Columns {
		names[i] = ds.Columns[i].Name
	}
	p.NominalX(names...)
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save missing matrix: %w", err)
	}
	return nil
}

// corrGrid exposes a correlation matrix as a square grid.
type corrGrid struct {
	m *eda.CorrMatrix
}

func (g corrGrid) Dims() (int, int)   { return len(g.m.Columns), len(g.m.Columns) }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }
func (g corrGrid) Z(c, r int) float64 { return g.m.Values[r][c] }

// CorrelationHeatmap renders the matrix with a diverging palette pinned
// to [-1, 1]. A nil or sub-2x2 matrix produces no file and no error.
func CorrelationHeatmap(m *eda.CorrMatrix, path string) error {
	if m == nil || len(m.Columns) < 2 {
		return nil
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	p := plot.New()
	p.Title.Text = "Correlation"
	hm := plotter.NewHeatMap(corrGrid{m: m}, cm.Palette(256))
	hm.Min, hm.Max = -1, 1
	p.Add(hm)
	p.NominalX(m.Columns...)
	p.NominalY(m.Columns...)
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save correlation heatmap: %w", err)
	}
	return nil
}

// SanitizeName makes a column name safe to embed in a file name.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|' || r < 0x20:
			b.WriteRune('_')
		case r == ' ':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "column"
	}
	return b.String()
}
