package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "edacli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set edacli defaults",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		fmt.Printf("out_dir: %s\n", c.OutDir)
		fmt.Printf("separator: %s\n", c.Separator)
		fmt.Printf("encoding: %s\n", c.Encoding)
		fmt.Printf("max_hist_columns: %d\n", c.MaxHistColumns)
		fmt.Printf("top_k_categories: %d\n", c.TopKCategories)
		fmt.Printf("title: %s\n", c.Title)
		fmt.Printf("min_missing_share: %.3f\n", c.MinMissingShare)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := effectiveConfig()
		switch key {
		case "out_dir":
			c.OutDir = val
		case "separator":
			if _, err := cfgpkg.ParseSeparator(val); err != nil {
				return err
			}
			c.Separator = val
		case "encoding":
			c.Encoding = val
		case "max_hist_columns":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return &cfgpkg.ConfigError{Field: key, Reason: "must be a positive integer"}
			}
			c.MaxHistColumns = n
		case "top_k_categories":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return &cfgpkg.ConfigError{Field: key, Reason: "must be a positive integer"}
			}
			c.TopKCategories = n
		case "title":
			c.Title = val
		case "min_missing_share":
			x, err := strconv.ParseFloat(val, 64)
			if err != nil || x < 0 || x > 1 {
				return &cfgpkg.ConfigError{Field: key, Reason: "must be a number within [0, 1]"}
			}
			c.MinMissingShare = x
		default:
			return fmt.Errorf("unknown config key %q", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the built-in defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfgpkg.Defaults()
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Println("✓ Config written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
}
