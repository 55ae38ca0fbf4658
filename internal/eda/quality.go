package eda

import (
	"regexp"

	"edascope/internal/dataset"
)

// DefaultHighCardinalityShare is the distinct-count fraction of the row
// count above which a categorical column is flagged as high-cardinality.
const DefaultHighCardinalityShare = 0.9

// idNamePattern matches column names where "id" stands as its own word
// segment: "id", "user_id", "ID-client". "valid" does not match.
var idNamePattern = regexp.MustCompile(`(?i)(^|[^a-z0-9])id([^a-z0-9]|$)`)

// Flags are the heuristic data-quality signals for one dataset.
type Flags struct {
	// QualityScore in [0, 1]; higher is cleaner.
	QualityScore float64
	// MaxMissingShare is the worst per-column missing share, 0 for a
	// dataset with no rows or no columns.
	MaxMissingShare                float64
	HasConstantColumns             bool
	HasHighCardinalityCategoricals bool
	HasSuspiciousIDDuplicates      bool
}

// QualityOptions tunes the heuristics.
type QualityOptions struct {
	// HighCardinalityShare defaults to DefaultHighCardinalityShare when
	// zero or out of (0, 1].
	HighCardinalityShare float64
}

// Quality combines the summary, the missing table, and the raw dataset
// into the fixed flag set. It never fails: degenerate datasets yield the
// zero/false defaults and a full score.
//
// Score policy (fixed weights, pinned by tests):
//
//	score = 0.4*(1 - maxMissingShare)
//	      + 0.2*[no constant columns]
//	      + 0.2*[no high-cardinality categoricals]
//	      + 0.2*[no suspicious id duplicates]
//
// clipped to [0, 1].
func Quality(sum Summary, missing []MissingRow, ds *dataset.Dataset, opts QualityOptions) Flags {
	hiShare := opts.HighCardinalityShare
	if hiShare <= 0 || hiShare > 1 {
		hiShare = DefaultHighCardinalityShare
	}

	f := Flags{MaxMissingShare: MaxShare(missing)}

	for _, cs := range sum.Columns {
		if cs.Distinct == 1 {
			f.HasConstantColumns = true
		}
		if cs.Kind.IsCategorical() && sum.NRows > 0 &&
			float64(cs.Distinct) > hiShare*float64(sum.NRows) {
			f.HasHighCardinalityCategoricals = true
		}
	}

	for i := range ds.Columns {
		c := &ds.Columns[i]
		if !idNamePattern.MatchString(c.Name) {
			continue
		}
		if c.Distinct() < c.NonMissing() {
			f.HasSuspiciousIDDuplicates = true
			break
		}
	}

	score := 0.4 * (1 - f.MaxMissingShare)
	if !f.HasConstantColumns {
		score += 0.2
	}
	if !f.HasHighCardinalityCategoricals {
		score += 0.2
	}
	if !f.HasSuspiciousIDDuplicates {
		score += 0.2
	}
	if score < 0 {
		score = 0
	} else if score > 1 {
		score = 1
	}
	f.QualityScore = score
	return f
}
