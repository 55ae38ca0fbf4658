package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"edascope/internal/dataset"
	"edascope/internal/eda"
	"edascope/internal/utils"
)

func boolWord(b bool) string {
	if b {
		return "да"
	}
	return "нет"
}

func pct(x float64) string {
	return fmt.Sprintf("%.2f%%", x*100)
}

// writeMarkdown renders the Russian-language narrative that bundles the
// quality flags, the problematic columns, and the artifact list.
func writeMarkdown(path string, ds *dataset.Dataset, sum eda.Summary, missing []eda.MissingRow, flags eda.Flags, opts Options) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", opts.Title)
	fmt.Fprintf(&b, "Исходный файл: `%s`\n\n", filepath.Base(ds.Source))
	fmt.Fprintf(&b, "Строк: **%d**, столбцов: **%d**\n\n", sum.NRows, sum.NCols)

	b.WriteString("## Параметры генерации отчёта\n\n")
	fmt.Fprintf(&b, "- max_hist_columns = `%d`\n", opts.MaxHistColumns)
	fmt.Fprintf(&b, "- top_k_categories = `%d`\n", opts.TopKCategories)
	fmt.Fprintf(&b, "- min_missing_share = `%.0f%%`\n\n", opts.MinMissingShare*100)

	b.WriteString("## Качество данных (эвристики)\n\n")
	fmt.Fprintf(&b, "- Оценка качества: **%.2f**\n", flags.QualityScore)
	fmt.Fprintf(&b, "- Макс. доля пропусков: **%s**\n", pct(flags.MaxMissingShare))
	fmt.Fprintf(&b, "- Константные колонки: **%s**\n", boolWord(flags.HasConstantColumns))
	fmt.Fprintf(&b, "- Высокая кардинальность категорий: **%s**\n", boolWord(flags.HasHighCardinalityCategoricals))
	fmt.Fprintf(&b, "- Подозрительные ID-дубликаты: **%s**\n\n", boolWord(flags.HasSuspiciousIDDuplicates))

	b.WriteString("## Колонки с большим числом пропусков\n\n")
	var problematic []eda.MissingRow
	for _, r := range missing {
		if r.Share >= opts.MinMissingShare {
			problematic = append(problematic, r)
		}
	}
	if len(problematic) == 0 {
		b.WriteString("Такие колонки не обнаружены.\n\n")
	} else {
		fmt.Fprintf(&b, "Колонки с долей пропусков ≥ %.0f%%:\n\n", opts.MinMissingShare*100)
		for _, r := range problematic {
			fmt.Fprintf(&b, "- **%s**: %s\n", r.Column, pct(r.Share))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Дополнительные материалы\n\n")
	b.WriteString("- `summary.csv` — сводка по колонкам\n")
	b.WriteString("- `missing.csv` — таблица пропусков\n")
	b.WriteString("- `correlation.csv` — корреляция числовых признаков\n")
	b.WriteString("- `top_categories/` — top-значения категорий\n\n")

	if err := utils.SafeWriteFile(path, []byte(b.String())); err != nil {
		return fmt.Errorf("write report.md: %w", err)
	}
	return nil
}
