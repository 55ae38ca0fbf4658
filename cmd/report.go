package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"edascope/internal/report"
)

var (
	repOutDir      string
	repSep         string
	repEncoding    string
	repMaxHistCols int
	repTopK        int
	repTitle       string
	repMinMissing  float64
)

var reportCmd = &cobra.Command{
	Use:   "report <path>",
	Short: "Сгенерировать полный EDA-отчёт с настраиваемыми параметрами",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		f := cmd.Flags()

		outDir := repOutDir
		if !f.Changed("out-dir") {
			outDir = c.OutDir
		}
		sep := repSep
		if !f.Changed("sep") {
			sep = c.Sep
		}
		enc := repEncoding
		if !f.Changed("encoding") {
			enc = c.Encoding
		}
		maxHist := repMaxHistCols
		if !f.Changed("max-hist-columns") {
			maxHist = c.MaxHistColumns
		}
		topK := repTopK
		if !f.Changed("top-k-categories") {
			topK = c.TopKCategories
		}
		title := repTitle
		if !f.Changed("title") {
			title = c.Title
		}
		minMissing := repMinMissing
		if !f.Changed("min-missing-share") {
			minMissing = c.MinMissingShare
		}
		if topK <= 0 {
			return fmt.Errorf("top-k-categories должен быть положительным")
		}

		ds, err := loadDataset(args[0], sep, enc)
		if err != nil {
			return err
		}

		res, err := report.Generate(ds, report.Options{
			OutDir:               outDir,
			Title:                title,
			MaxHistColumns:       maxHist,
			TopKCategories:       topK,
			MinMissingShare:      minMissing,
			HighCardinalityShare: c.HighCardinalityShare,
			Sep:                  sep,
			Encoding:             enc,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Отчёт сгенерирован в каталоге: %s\n", res.Dir)
		fmt.Printf("- Markdown: %s\n", res.MarkdownPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&repOutDir, "out-dir", "reports", "каталог для отчёта")
	reportCmd.Flags().StringVar(&repSep, "sep", ",", "разделитель в CSV")
	reportCmd.Flags().StringVar(&repEncoding, "encoding", "utf-8", "кодировка файла")
	reportCmd.Flags().IntVar(&repMaxHistCols, "max-hist-columns", 6, "максимум числовых колонок для гистограмм")
	reportCmd.Flags().IntVar(&repTopK, "top-k-categories", 5, "количество top-значений для категориальных признаков")
	reportCmd.Flags().StringVar(&repTitle, "title", "EDA-отчёт", "заголовок отчёта")
	reportCmd.Flags().Float64Var(&repMinMissing, "min-missing-share", 0.3, "порог доли пропусков для проблемных колонок")
}
