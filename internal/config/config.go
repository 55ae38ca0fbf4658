package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global holds the user-tunable defaults for overview and report runs.
// Flags override these per invocation.
type Global struct {
	OutDir               string  `mapstructure:"out_dir" yaml:"out_dir"`
	Sep                  string  `mapstructure:"sep" yaml:"sep"`
	Encoding             string  `mapstructure:"encoding" yaml:"encoding"`
	MaxHistColumns       int     `mapstructure:"max_hist_columns" yaml:"max_hist_columns"`
	TopKCategories       int     `mapstructure:"top_k_categories" yaml:"top_k_categories"`
	Title                string  `mapstructure:"title" yaml:"title"`
	MinMissingShare      float64 `mapstructure:"min_missing_share" yaml:"min_missing_share"`
	HighCardinalityShare float64 `mapstructure:"high_cardinality_share" yaml:"high_cardinality_share"`
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".edascope"), nil
}

// Save writes the configuration to cfgFile, or to
// ~/.edascope/config.yaml when cfgFile is empty.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load resolves configuration from file, env, and defaults.
// Precedence: flags (handled by the commands) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("EDASCOPE")
	v.AutomaticEnv()

	v.SetDefault("out_dir", "reports")
	v.SetDefault("sep", ",")
	v.SetDefault("encoding", "utf-8")
	v.SetDefault("max_hist_columns", 6)
	v.SetDefault("top_k_categories", 5)
	v.SetDefault("title", "EDA-отчёт")
	v.SetDefault("min_missing_share", 0.3)
	v.SetDefault("high_cardinality_share", 0.9)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// The config file is optional; defaults cover everything.
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
