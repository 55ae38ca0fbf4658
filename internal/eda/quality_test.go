package eda_test

import (
	"testing"

	"edascope/internal/eda"
)

func qualityOf(t *testing.T, csv string, opts eda.QualityOptions) eda.Flags {
	t.Helper()
	ds := loadCSV(t, csv)
	sum := eda.Summarize(ds)
	missing := eda.MissingTable(ds)
	return eda.Quality(sum, missing, ds, opts)
}

func TestQualitySuspiciousIDDuplicates(t *testing.T) {
	f := qualityOf(t, "id,val\n1,10\n2,\n2,30\n3,40\n", eda.QualityOptions{})
	if !f.HasSuspiciousIDDuplicates {
		t.Fatalf("duplicate id 2 not flagged: %+v", f)
	}
	if !near(f.MaxMissingShare, 0.25) {
		t.Fatalf("max missing share = %v, want 0.25", f.MaxMissingShare)
	}
	// 0.4*(1-0.25) + 0.2 + 0.2 + 0 (id duplicates).
	if !near(f.QualityScore, 0.7) {
		t.Fatalf("score = %v, want 0.7", f.QualityScore)
	}
}

func TestQualityUniqueIDNotFlagged(t *testing.T) {
	f := qualityOf(t, "user_id\n1\n2\n3\n", eda.QualityOptions{})
	if f.HasSuspiciousIDDuplicates {
		t.Fatalf("unique id column flagged: %+v", f)
	}
}

func TestQualityIDPatternIsWordSegment(t *testing.T) {
	// "valid" contains "id" but not as its own segment.
	f := qualityOf(t, "valid\nx\nx\nx\n", eda.QualityOptions{})
	if f.HasSuspiciousIDDuplicates {
		t.Fatalf("column 'valid' must not match the id pattern")
	}
}

func TestQualityConstantColumn(t *testing.T) {
	f := qualityOf(t, "c\nx\nx\nx\nx\nx\n", eda.QualityOptions{})
	if !f.HasConstantColumns {
		t.Fatalf("constant column not flagged")
	}
	// 0.4 + 0 (constant) + 0.2 + 0.2.
	if !near(f.QualityScore, 0.8) {
		t.Fatalf("score = %v, want 0.8", f.QualityScore)
	}
}

func TestQualityHighCardinalityCategoricals(t *testing.T) {
	f := qualityOf(t, "name\na\nb\nc\nd\ne\n", eda.QualityOptions{})
	if !f.HasHighCardinalityCategoricals {
		t.Fatalf("all-unique categorical not flagged")
	}
	f = qualityOf(t, "name\na\nb\na\nb\na\n", eda.QualityOptions{})
	if f.HasHighCardinalityCategoricals {
		t.Fatalf("low-cardinality categorical flagged")
	}
}

func TestQualityHighCardinalityThresholdOverride(t *testing.T) {
	// 3 distinct of 5 rows = 0.6; flagged only with a lower threshold.
	csv := "name\na\nb\nc\na\nb\n"
	if f := qualityOf(t, csv, eda.QualityOptions{}); f.HasHighCardinalityCategoricals {
		t.Fatalf("flagged at default threshold")
	}
	if f := qualityOf(t, csv, eda.QualityOptions{HighCardinalityShare: 0.5}); !f.HasHighCardinalityCategoricals {
		t.Fatalf("not flagged at 0.5 threshold")
	}
}

func TestQualityDegenerateDataset(t *testing.T) {
	f := qualityOf(t, "a,b\n", eda.QualityOptions{})
	if f.MaxMissingShare != 0 {
		t.Fatalf("max missing share for zero rows = %v", f.MaxMissingShare)
	}
	if f.HasConstantColumns || f.HasHighCardinalityCategoricals || f.HasSuspiciousIDDuplicates {
		t.Fatalf("degenerate dataset raised flags: %+v", f)
	}
	if !near(f.QualityScore, 1.0) {
		t.Fatalf("score = %v, want 1.0", f.QualityScore)
	}
}

func TestQualityNumericIDColumn(t *testing.T) {
	// Numeric columns are eligible for the duplicate-id check too.
	f := qualityOf(t, "order_id,x\n5,1\n5,2\n6,3\n", eda.QualityOptions{})
	if !f.HasSuspiciousIDDuplicates {
		t.Fatalf("numeric id duplicates not flagged")
	}
}
