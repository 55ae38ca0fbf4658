package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"edascope/internal/dataset"
	"edascope/internal/utils"
)

// manifest records what produced the report: a fresh run id, the source
// file, and the effective parameters. Tabular artifacts stay
// byte-identical across reruns; the manifest is the one place allowed to
// differ.
type manifest struct {
	RunID       string             `yaml:"run_id"`
	GeneratedAt string             `yaml:"generated_at"`
	Source      string             `yaml:"source"`
	Parameters  manifestParameters `yaml:"parameters"`
}

type manifestParameters struct {
	Sep             string  `yaml:"sep"`
	Encoding        string  `yaml:"encoding"`
	MaxHistColumns  int     `yaml:"max_hist_columns"`
	TopKCategories  int     `yaml:"top_k_categories"`
	Title           string  `yaml:"title"`
	MinMissingShare float64 `yaml:"min_missing_share"`
}

func writeManifest(path string, ds *dataset.Dataset, opts Options) error {
	m := manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Source:      ds.Source,
		Parameters: manifestParameters{
			Sep:             opts.Sep,
			Encoding:        opts.Encoding,
			MaxHistColumns:  opts.MaxHistColumns,
			TopKCategories:  opts.TopKCategories,
			Title:           opts.Title,
			MinMissingShare: opts.MinMissingShare,
		},
	}
	b, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
