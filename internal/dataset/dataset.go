// Package dataset loads a CSV file into an immutable column-major table
// with an explicit type tag per column. The tag is decided once during
// ingestion and never changes afterwards.
package dataset

import "math"

// Kind is the inferred semantic type of a column.
type Kind int

const (
	// KindEmpty marks a column with no non-missing values.
	KindEmpty Kind = iota
	KindNumeric
	KindBoolean
	KindCategorical
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindBoolean:
		return "boolean"
	case KindCategorical:
		return "categorical"
	default:
		return "empty"
	}
}

// IsCategorical reports whether the column participates in category
// profiling. Boolean columns count: they are low-cardinality labels.
func (k Kind) IsCategorical() bool {
	return k == KindBoolean || k == KindCategorical
}

// Column is a single named column. Values holds the trimmed cell text in
// row order; Missing is the aligned missingness mask. For numeric columns
// Floats holds the parsed values with NaN at missing positions, nil for
// every other kind.
type Column struct {
	Name    string
	Kind    Kind
	Values  []string
	Missing []bool
	Floats  []float64
}

// NonMissing returns the count of recorded values.
func (c *Column) NonMissing() int {
	n := 0
	for _, m := range c.Missing {
		if !m {
			n++
		}
	}
	return n
}

// Distinct returns the number of distinct non-missing values.
func (c *Column) Distinct() int {
	seen := make(map[string]struct{})
	for i, v := range c.Values {
		if c.Missing[i] {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

// NumericValues returns the non-missing parsed values of a numeric column
// in row order. Nil for non-numeric columns.
func (c *Column) NumericValues() []float64 {
	if c.Floats == nil {
		return nil
	}
	out := make([]float64, 0, len(c.Floats))
	for _, v := range c.Floats {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Dataset is an ordered sequence of named columns sharing one row count.
// It is read-only after Load.
type Dataset struct {
	Source  string
	Columns []Column
	NRows   int
}

func (d *Dataset) NCols() int { return len(d.Columns) }

// NumericColumns returns the columns tagged numeric, in dataset order.
func (d *Dataset) NumericColumns() []*Column {
	var out []*Column
	for i := range d.Columns {
		if d.Columns[i].Kind == KindNumeric {
			out = append(out, &d.Columns[i])
		}
	}
	return out
}
