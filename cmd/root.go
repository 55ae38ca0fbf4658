package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "edascope/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "edascope",
	Short: "Мини-CLI для EDA CSV-файлов",
	Long:  `edascope загружает CSV-файл и строит описательную статистику: сводку по колонкам, таблицу пропусков, корреляции, top-значения категорий и Markdown-отчёт с графиками.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Ошибка:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.edascope/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: defaults cover every command.
		fmt.Fprintf(os.Stderr, "⚠ Предупреждение: не удалось загрузить конфигурацию: %v\n", err)
		return
	}
	cfg = c
}

// activeConfig returns the loaded configuration, loading it lazily when
// the command runs outside Execute (tests drive rootCmd directly).
func activeConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return &cfgpkg.Global{
			OutDir:               "reports",
			Sep:                  ",",
			Encoding:             "utf-8",
			MaxHistColumns:       6,
			TopKCategories:       5,
			Title:                "EDA-отчёт",
			MinMissingShare:      0.3,
			HighCardinalityShare: 0.9,
		}
	}
	cfg = c
	return cfg
}

func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
