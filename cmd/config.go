package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "edascope/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Просмотр и изменение конфигурации edascope",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать действующую конфигурацию",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		fmt.Printf("out_dir: %s\n", c.OutDir)
		fmt.Printf("sep: %s\n", c.Sep)
		fmt.Printf("encoding: %s\n", c.Encoding)
		fmt.Printf("max_hist_columns: %d\n", c.MaxHistColumns)
		fmt.Printf("top_k_categories: %d\n", c.TopKCategories)
		fmt.Printf("title: %s\n", c.Title)
		fmt.Printf("min_missing_share: %.3f\n", c.MinMissingShare)
		fmt.Printf("high_cardinality_share: %.3f\n", c.HighCardinalityShare)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Установить значение и сохранить на диск",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := activeConfig()
		switch key {
		case "out_dir":
			c.OutDir = val
		case "sep":
			if _, err := parseSep(val); err != nil {
				return err
			}
			c.Sep = val
		case "encoding":
			c.Encoding = val
		case "max_hist_columns":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("некорректное целое для max_hist_columns: %v", val)
			}
			c.MaxHistColumns = i
		case "top_k_categories":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("некорректное целое для top_k_categories: %v", val)
			}
			c.TopKCategories = i
		case "title":
			c.Title = val
		case "min_missing_share":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 1 {
				return fmt.Errorf("некорректная доля для min_missing_share: %v", val)
			}
			c.MinMissingShare = f
		case "high_cardinality_share":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 || f > 1 {
				return fmt.Errorf("некорректная доля для high_cardinality_share: %v", val)
			}
			c.HighCardinalityShare = f
		default:
			return fmt.Errorf("неизвестный ключ: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("Конфигурация сохранена")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
