package eda

import (
	"sort"

	"edascope/internal/dataset"
)

// CategoryCount is one value of a categorical column with its frequency.
type CategoryCount struct {
	Value string
	Count int
}

// ColumnCategories holds the top values of one column, most frequent
// first.
type ColumnCategories struct {
	Column string
	Top    []CategoryCount
}

// TopCategories counts value frequencies for every non-numeric column
// and keeps the topK most frequent per column. Missing values are
// excluded from the buckets. Ties are broken by first-encountered row
// order, so reruns over the same file produce identical tables.
func TopCategories(ds *dataset.Dataset, topK int) []ColumnCategories {
	if topK <= 0 {
		return nil
	}
	var out []ColumnCategories
	for i := range ds.Columns {
		c := &ds.Columns[i]
		if !c.Kind.IsCategorical() {
			continue
		}
		counts := make(map[string]int)
		firstSeen := make(map[string]int)
		for row, v := range c.Values {
			if c.Missing[row] {
				continue
			}
			if _, ok := counts[v]; !ok {
				firstSeen[v] = row
			}
			counts[v]++
		}
		tops := make([]CategoryCount, 0, len(counts))
		for v, n := range counts {
			tops = append(tops, CategoryCount{Value: v, Count: n})
		}
		sort.SliceStable(tops, func(a, b int) bool {
			if tops[a].Count == tops[b].Count {
				return firstSeen[tops[a].Value] < firstSeen[tops[b].Value]
			}
			return tops[a].Count > tops[b].Count
		})
		if len(tops) > topK {
			tops = tops[:topK]
		}
		out = append(out, ColumnCategories{Column: c.Name, Top: tops})
	}
	return out
}
