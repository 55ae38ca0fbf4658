// Package eda computes descriptive-statistics snapshots over a loaded
// dataset: column summaries, missing-value tables, Pearson correlations,
// top category counts, and heuristic quality flags. Every function is
// pure; each returns a new value and never touches the dataset.
package eda

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"edascope/internal/dataset"
)

// ColumnSummary holds per-column descriptive statistics. Mean/Std/Min/Max
// are meaningful only when Kind is numeric.
type ColumnSummary struct {
	Name       string
	Kind       dataset.Kind
	NonMissing int
	Missing    int
	Distinct   int
	Mean       float64
	Std        float64
	Min        float64
	Max        float64
}

// Summary aggregates the dataset dimensions with one ColumnSummary per
// column, in dataset order.
type Summary struct {
	NRows   int
	NCols   int
	Columns []ColumnSummary
}

// Summarize computes the dataset summary. Numeric statistics use the
// sample standard deviation (ddof=1); a numeric column with fewer than
// two values reports Std 0.
func Summarize(ds *dataset.Dataset) Summary {
	s := Summary{NRows: ds.NRows, NCols: ds.NCols()}
	for i := range ds.Columns {
		c := &ds.Columns[i]
		cs := ColumnSummary{
			Name:       c.Name,
			Kind:       c.Kind,
			NonMissing: c.NonMissing(),
			Distinct:   c.Distinct(),
		}
		cs.Missing = ds.NRows - cs.NonMissing
		if c.Kind == dataset.KindNumeric {
			vals := c.NumericValues()
			if len(vals) > 0 {
				cs.Min = floats.Min(vals)
				cs.Max = floats.Max(vals)
				if len(vals) >= 2 {
					cs.Mean, cs.Std = stat.MeanStdDev(vals, nil)
				} else {
					cs.Mean = vals[0]
				}
			}
		}
		s.Columns = append(s.Columns, cs)
	}
	return s
}
