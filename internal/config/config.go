package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global holds persisted defaults for report generation.
type Global struct {
	OutDir          string  `mapstructure:"out_dir" yaml:"out_dir"`
	Separator       string  `mapstructure:"separator" yaml:"separator"`
	Encoding        string  `mapstructure:"encoding" yaml:"encoding"`
	MaxHistColumns  int     `mapstructure:"max_hist_columns" yaml:"max_hist_columns"`
	TopKCategories  int     `mapstructure:"top_k_categories" yaml:"top_k_categories"`
	Title           string  `mapstructure:"title" yaml:"title"`
	MinMissingShare float64 `mapstructure:"min_missing_share" yaml:"min_missing_share"`
}

// Defaults returns the built-in configuration.
func Defaults() *Global {
	return &Global{
		OutDir:          "reports",
		Separator:       ",",
		Encoding:        "utf-8",
		MaxHistColumns:  5,
		TopKCategories:  10,
		Title:           "EDA Report",
		MinMissingShare: 0.1,
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.edacli/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".edacli")
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

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the commands) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("EDACLI")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("out_dir", d.OutDir)
	v.SetDefault("separator", d.Separator)
	v.SetDefault("encoding", d.Encoding)
	v.SetDefault("max_hist_columns", d.MaxHistColumns)
	v.SetDefault("top_k_categories", d.TopKCategories)
	v.SetDefault("title", d.Title)
	v.SetDefault("min_missing_share", d.MinMissingShare)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".edacli")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
