package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "dot", cfg.Format)
	assert.Equal(t, "fail", cfg.Collect.OnMissing)
	assert.True(t, cfg.Diagnostics)
}

func TestLoadFromYAML(t *testing.T) {
	yml := `
format: d2
output: backbone.d2
theme: ocean
direction: down
inventory:
  path: /var/lib/rancid/backbone/router.db
  separator: ";"
  configs_dir: archive
collect:
  on_missing: skip
  workers: 8
vendors:
  cisco-xe: block
  juniper-srx: terse
diagnostics: false
log_level: debug
metrics_file: /var/lib/node_exporter/rancid2dot.prom
`
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(yml)))

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "d2", cfg.Format)
	assert.Equal(t, "backbone.d2", cfg.Output)
	assert.Equal(t, "ocean", cfg.Theme)
	assert.Equal(t, "down", cfg.Direction)
	assert.Equal(t, "/var/lib/rancid/backbone/router.db", cfg.Inventory.Path)
	assert.Equal(t, ";", cfg.Inventory.Separator)
	assert.Equal(t, "archive", cfg.Inventory.ConfigsDir)
	assert.Equal(t, "skip", cfg.Collect.OnMissing)
	assert.Equal(t, 8, cfg.Collect.Workers)
	assert.Equal(t, map[string]string{"cisco-xe": "block", "juniper-srx": "terse"}, cfg.Vendors)
	assert.False(t, cfg.Diagnostics)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/lib/node_exporter/rancid2dot.prom", cfg.MetricsFile)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString("collect:\n  workers: 4\n")))

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Collect.Workers)
	assert.Equal(t, "fail", cfg.Collect.OnMissing)
	assert.Equal(t, "configs", cfg.Inventory.ConfigsDir)
}
