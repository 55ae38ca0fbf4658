package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// LoadOptions controls CSV ingestion.
type LoadOptions struct {
	// Sep is the field separator. 0 means ','.
	Sep rune
	// Encoding is an IANA charset name ("utf-8", "windows-1251", ...).
	// Empty means utf-8.
	Encoding string
}

// missingTokens is the set of cell values treated as missing, compared
// case-insensitively after trimming. Mirrors the usual NA token set of
// tabular tools so that files produced elsewhere round-trip sanely.
var missingTokens = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
	"none": {},
}

func isMissing(v string) bool {
	_, ok := missingTokens[strings.ToLower(v)]
	return ok
}

func isBoolToken(v string) bool {
	switch strings.ToLower(v) {
	case "true", "false":
		return true
	}
	return false
}

// Load reads the CSV at path into a Dataset. The first record is the
// header; records shorter than the header are padded with missing cells.
// A file without a header record is an error.
func Load(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	var src io.Reader = f
	if name := opts.Encoding; name != "" && !strings.EqualFold(name, "utf-8") && !strings.EqualFold(name, "utf8") {
		enc, err := ianaindex.IANA.Encoding(name)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("unknown encoding %q", name)
		}
		src = enc.NewDecoder().Reader(f)
	}

	sep := opts.Sep
	if sep == 0 {
		sep = ','
	}
	r := csv.NewReader(src)
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: no header record")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	header = trimBOM(header)
	ncol := len(header)

	cols := make([]Column, ncol)
	for i, h := range header {
		cols[i] = Column{Name: strings.TrimSpace(h)}
	}

	nrows := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", nrows+1, err)
		}
		nrows++
		for j := range cols {
			v := ""
			if j < len(rec) {
				v = strings.TrimSpace(rec[j])
			}
			miss := isMissing(v)
			cols[j].Values = append(cols[j].Values, v)
			cols[j].Missing = append(cols[j].Missing, miss)
		}
	}

	for j := range cols {
		inferKind(&cols[j])
	}
	return &Dataset{Source: path, Columns: cols, NRows: nrows}, nil
}

// inferKind tags the column. The rule is strict: numeric only when every
// non-missing value parses as a float, boolean only when every non-missing
// value is true/false; anything mixed is categorical.
func inferKind(c *Column) {
	nonMissing := 0
	numeric := 0
	boolean := 0
	for i, v := range c.Values {
		if c.Missing[i] {
			continue
		}
		nonMissing++
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			numeric++
		}
		if isBoolToken(v) {
			boolean++
		}
	}
	switch {
	case nonMissing == 0:
		c.Kind = KindEmpty
	case boolean == nonMissing:
		c.Kind = KindBoolean
	case numeric == nonMissing:
		c.Kind = KindNumeric
	default:
		c.Kind = KindCategorical
	}
	if c.Kind != KindNumeric {
		return
	}
	c.Floats = make([]float64, len(c.Values))
	for i, v := range c.Values {
		if c.Missing[i] {
			c.Floats[i] = math.NaN()
			continue
		}
		x, _ := strconv.ParseFloat(v, 64)
		c.Floats[i] = x
	}
}

func trimBOM(header []string) []string {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return header
}
