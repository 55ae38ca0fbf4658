package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"edascope/internal/dataset"
	"edascope/internal/eda"
)

var (
	ovSep      string
	ovEncoding string
)

var overviewCmd = &cobra.Command{
	Use:   "overview <path>",
	Short: "Краткий обзор датасета: размеры, типы, сводка по колонкам",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		sep := ovSep
		if !cmd.Flags().Changed("sep") {
			sep = c.Sep
		}
		enc := ovEncoding
		if !cmd.Flags().Changed("encoding") {
			enc = c.Encoding
		}
		ds, err := loadDataset(args[0], sep, enc)
		if err != nil {
			return err
		}
		summary := eda.Summarize(ds)

		fmt.Printf("Строк: %d\n", summary.NRows)
		fmt.Printf("Столбцов: %d\n", summary.NCols)
		fmt.Println("\nКолонки:")
		printSummaryTable(summary)
		return nil
	},
}

func printSummaryTable(s eda.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"column", "type", "non_missing", "missing", "unique", "mean", "std", "min", "max"})
	for _, c := range s.Columns {
		mean, std, min, max := "", "", "", ""
		if c.Kind == dataset.KindNumeric {
			mean = fmtStat(c.Mean)
			std = fmtStat(c.Std)
			min = fmtStat(c.Min)
			max = fmtStat(c.Max)
		}
		t.AppendRow(table.Row{c.Name, c.Kind.String(), c.NonMissing, c.Missing, c.Distinct, mean, std, min, max})
	}
	t.Render()
}

func fmtStat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func init() {
	rootCmd.AddCommand(overviewCmd)
	overviewCmd.Flags().StringVar(&ovSep, "sep", ",", "разделитель в CSV")
	overviewCmd.Flags().StringVar(&ovEncoding, "encoding", "utf-8", "кодировка файла")
}
