package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Format      string            `mapstructure:"format"`    // dot, d2
	Output      string            `mapstructure:"output"`    // empty writes to stdout
	Theme       string            `mapstructure:"theme"`
	Direction   string            `mapstructure:"direction"` // right, down
	Inventory   InventoryConfig   `mapstructure:"inventory"`
	Collect     CollectConfig     `mapstructure:"collect"`
	Vendors     map[string]string `mapstructure:"vendors"` // vendor name (any case) -> extractor style
	Diagnostics bool              `mapstructure:"diagnostics"`
	LogLevel    string            `mapstructure:"log_level"`
	MetricsFile string            `mapstructure:"metrics_file"`
}

type InventoryConfig struct {
	Path       string `mapstructure:"path"` // router.db used when none is given on the command line
	Separator  string `mapstructure:"separator"`
	ConfigsDir string `mapstructure:"configs_dir"`
}

type CollectConfig struct {
	OnMissing string `mapstructure:"on_missing"` // fail, skip
	Workers   int    `mapstructure:"workers"`
}

// Default returns the configuration used when no file or flag says otherwise.
func Default() *Config {
	return &Config{
		Format:    "dot",
		Theme:     "classic",
		Direction: "right",
		Inventory: InventoryConfig{
			Separator:  ":",
			ConfigsDir: "configs",
		},
		Collect: CollectConfig{
			OnMissing: "fail",
			Workers:   1,
		},
		Diagnostics: true,
		LogLevel:    "warn",
	}
}

// Load overlays the values viper has read onto the defaults.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom is Load for an explicit viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
