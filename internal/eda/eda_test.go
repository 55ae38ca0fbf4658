package eda_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"edascope/internal/dataset"
	"edascope/internal/eda"
)

func loadCSV(t *testing.T, content string) *dataset.Dataset {
	t.Helper()
	p := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	ds, err := dataset.Load(p, dataset.LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return ds
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSummarizeNumericStats(t *testing.T) {
	ds := loadCSV(t, "val\n10\nNA\n30\n40\n")
	s := eda.Summarize(ds)
	if s.NRows != 4 || s.NCols != 1 {
		t.Fatalf("dims: %dx%d", s.NRows, s.NCols)
	}
	c := s.Columns[0]
	if c.NonMissing != 3 || c.Missing != 1 {
		t.Fatalf("counts: non-missing %d, missing %d", c.NonMissing, c.Missing)
	}
	if c.NonMissing+c.Missing != s.NRows {
		t.Fatalf("non-missing + missing != n_rows")
	}
	if !near(c.Mean, 80.0/3) {
		t.Fatalf("mean = %v", c.Mean)
	}
	// Sample std of {10, 30, 40}.
	if !near(c.Std, math.Sqrt(700.0/3)) {
		t.Fatalf("std = %v", c.Std)
	}
	if c.Min != 10 || c.Max != 40 {
		t.Fatalf("min/max = %v/%v", c.Min, c.Max)
	}
	if c.Distinct != 3 {
		t.Fatalf("distinct = %d", c.Distinct)
	}
}

func TestSummarizeSingleValueStd(t *testing.T) {
	ds := loadCSV(t, "v\n7\n")
	c := eda.Summarize(ds).Columns[0]
	if c.Mean != 7 || c.Std != 0 {
		t.Fatalf("single value: mean %v std %v", c.Mean, c.Std)
	}
}

func TestMissingTableScenario(t *testing.T) {
	ds := loadCSV(t, "id,val\n1,10\n2,\n2,30\n3,40\n")
	rows := eda.MissingTable(ds)
	if len(rows) != 2 {
		t.Fatalf("rows: %d", len(rows))
	}
	val := rows[1]
	if val.Column != "val" || val.Count != 1 || !near(val.Share, 0.25) {
		t.Fatalf("val row: %+v", val)
	}
}

func TestMissingTableEmptyDataset(t *testing.T) {
	ds := loadCSV(t, "a,b\n")
	if rows := eda.MissingTable(ds); rows != nil {
		t.Fatalf("expected empty table for zero rows, got %v", rows)
	}
	if eda.MaxShare(nil) != 0 {
		t.Fatalf("MaxShare of empty table must be 0")
	}
}

func TestCorrelationsFewNumericColumns(t *testing.T) {
	ds := loadCSV(t, "x,c\n1,a\n2,b\n")
	if m := eda.Correlations(ds); m != nil {
		t.Fatalf("expected nil matrix with one numeric column, got %v", m)
	}
}

func TestCorrelationsLinear(t *testing.T) {
	ds := loadCSV(t, "x,y\n1,2\n2,4\n3,6\n4,8\n")
	m := eda.Correlations(ds)
	if m == nil || len(m.Columns) != 2 {
		t.Fatalf("matrix: %+v", m)
	}
	if m.Values[0][0] != 1 || m.Values[1][1] != 1 {
		t.Fatalf("diagonal must be 1: %v", m.Values)
	}
	if !near(m.Values[0][1], 1) || m.Values[0][1] != m.Values[1][0] {
		t.Fatalf("r = %v / %v", m.Values[0][1], m.Values[1][0])
	}
}

func TestCorrelationsPairwiseComplete(t *testing.T) {
	// Row 2 drops out of the pair: y is missing there.
	ds := loadCSV(t, "x,y\n1,1\n2,NA\n3,3\n5,5\n")
	m := eda.Correlations(ds)
	if m == nil {
		t.Fatalf("nil matrix")
	}
	if !near(m.Values[0][1], 1) {
		t.Fatalf("pairwise r = %v, want 1", m.Values[0][1])
	}
}

func TestCorrelationsZeroVariance(t *testing.T) {
	ds := loadCSV(t, "x,y\n1,5\n2,5\n3,5\n")
	m := eda.Correlations(ds)
	if m.Values[0][1] != 0 {
		t.Fatalf("zero-variance pair should report 0, got %v", m.Values[0][1])
	}
}

func TestTopCategoriesOrderAndCap(t *testing.T) {
	// b and c tie at 2; b appears first.
	ds := loadCSV(t, "cat\na\nb\nc\nb\nc\na\na\nd\n")
	cats := eda.TopCategories(ds, 3)
	if len(cats) != 1 {
		t.Fatalf("columns: %d", len(cats))
	}
	top := cats[0].Top
	if len(top) != 3 {
		t.Fatalf("cap violated: %d entries", len(top))
	}
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if top[i].Value != w {
			t.Fatalf("order: got %v, want %v", top, want)
		}
	}
	for i := 1; i < len(top); i++ {
		if top[i].Count > top[i-1].Count {
			t.Fatalf("counts not descending: %v", top)
		}
	}
}

func TestTopCategoriesExcludesMissing(t *testing.T) {
	ds := loadCSV(t, "cat\nx\nNA\nx\n\n")
	top := eda.TopCategories(ds, 5)[0].Top
	if len(top) != 1 || top[0].Value != "x" || top[0].Count != 2 {
		t.Fatalf("missing leaked into buckets: %v", top)
	}
}

func TestTopCategoriesSkipsNumeric(t *testing.T) {
	ds := loadCSV(t, "x,cat\n1,a\n2,b\n")
	cats := eda.TopCategories(ds, 5)
	if len(cats) != 1 || cats[0].Column != "cat" {
		t.Fatalf("numeric column profiled: %+v", cats)
	}
}
