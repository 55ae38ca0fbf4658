package eda

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"edascope/internal/dataset"
)

// CorrMatrix is a symmetric Pearson correlation matrix over the numeric
// columns. Values is row-major and square, Values[i][j] in [-1, 1].
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// Correlations computes pairwise Pearson correlation among numeric
// columns using pairwise-complete observations: for each pair only the
// rows where both values are present contribute. Returns nil when fewer
// than two numeric columns exist. The diagonal is always 1; pairs with
// fewer than two complete rows or zero variance report 0.
func Correlations(ds *dataset.Dataset) *CorrMatrix {
	num := ds.NumericColumns()
	if len(num) < 2 {
		return nil
	}
	n := len(num)
	m := &CorrMatrix{
		Columns: make([]string, n),
		Values:  make([][]float64, n),
	}
	for i, c := range num {
		m.Columns[i] = c.Name
		m.Values[i] = make([]float64, n)
		m.Values[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pairCorrelation(num[i].Floats, num[j].Floats)
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

func pairCorrelation(xs, ys []float64) float64 {
	var px, py []float64
	for k := range xs {
		if math.IsNaN(xs[k]) || math.IsNaN(ys[k]) {
			continue
		}
		px = append(px, xs[k])
		py = append(py, ys[k])
	}
	if len(px) < 2 {
		return 0
	}
	r := stat.Correlation(px, py, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
