package eda

import "edascope/internal/dataset"

// MissingRow is one column's missingness: absolute count and share of
// the row count.
type MissingRow struct {
	Column string
	Count  int
	Share  float64
}

// MissingTable reports missingness per column in dataset order. The
// table is empty when the dataset has no rows or no columns, so the
// share is never a division by zero.
func MissingTable(ds *dataset.Dataset) []MissingRow {
	if ds.NRows == 0 || ds.NCols() == 0 {
		return nil
	}
	rows := make([]MissingRow, 0, ds.NCols())
	for i := range ds.Columns {
		c := &ds.Columns[i]
		miss := ds.NRows - c.NonMissing()
		rows = append(rows, MissingRow{
			Column: c.Name,
			Count:  miss,
			Share:  float64(miss) / float64(ds.NRows),
		})
	}
	return rows
}

// MaxShare returns the largest missing share in the table, 0 when the
// table is empty.
func MaxShare(rows []MissingRow) float64 {
	max := 0.0
	for _, r := range rows {
		if r.Share > max {
			max = r.Share
		}
	}
	return max
}
