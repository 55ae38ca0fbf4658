package cmd

import (
	"fmt"
	"os"
	"unicode/utf8"

	"edascope/internal/dataset"
)

// parseSep maps the --sep flag to a separator rune. "tab" is accepted as
// an alias because a literal tab is awkward to pass in most shells.
func parseSep(s string) (rune, error) {
	switch s {
	case "":
		return ',', nil
	case "tab", "\\t":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("неподдерживаемый разделитель: %q", s)
	}
	return r, nil
}

// loadDataset wraps dataset.Load with the user-facing error messages the
// commands surface on bad input.
func loadDataset(path, sep, encoding string) (*dataset.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("файл '%s' не найден", path)
	}
	r, err := parseSep(sep)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(path, dataset.LoadOptions{Sep: r, Encoding: encoding})
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать CSV: %w", err)
	}
	debugf("loaded %s: %d rows, %d columns", path, ds.NRows, ds.NCols())
	return ds, nil
}
