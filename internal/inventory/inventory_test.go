package inventory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teichopsia/rancid2dot/internal/model"
)

func TestParse(t *testing.T) {
	input := `# router.db for the backbone
r1.ams:cisco:up
r2.ams:juniper:up # core
sw1.ams:cisco_switch:down
fw1.ams:netscreen:up
broken line
too:many:fields:here
r3.ams:cisco:up-ssh
:cisco:up
r1.ams:cisco:up
  r4.ams : cisco : up
`
	inv, err := Parse(strings.NewReader(input), Options{})
	require.NoError(t, err)

	assert.Equal(t, []model.Device{
		{Name: "r1.ams", Vendor: "cisco", Status: "up"},
		{Name: "r2.ams", Vendor: "juniper", Status: "up"},
		{Name: "sw1.ams", Vendor: "cisco_switch", Status: "down"},
		{Name: "fw1.ams", Vendor: "netscreen", Status: "up"},
		{Name: "r3.ams", Vendor: "cisco", Status: "up-ssh"},
		{Name: "r4.ams", Vendor: "cisco", Status: "up"},
	}, inv.Devices)
	assert.Equal(t, 3, inv.Skipped)

	var active []string
	for _, d := range inv.Active() {
		active = append(active, d.Name)
	}
	assert.Equal(t, []string{"r1.ams", "r2.ams", "fw1.ams", "r3.ams", "r4.ams"}, active)
}

func TestParseCommentHidesFields(t *testing.T) {
	inv, err := Parse(strings.NewReader("r1:cisco:#up\nr2:cisco:up#:extra\n"), Options{})
	require.NoError(t, err)

	require.Len(t, inv.Devices, 2)
	assert.False(t, inv.Devices[0].Active())
	assert.True(t, inv.Devices[1].Active())
}

func TestParseRepeatedDevice(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		status string
	}{
		{"down then up", "r1:cisco:down\nr1:cisco:up\n", "up"},
		{"up then down", "r1:cisco:up\nr1:cisco:down\n", "up"},
		{"up then up-ssh", "r1:cisco:up\nr1:cisco:up-ssh\n", "up"},
		{"down twice", "r1:cisco:down\nr1:cisco:disabled\n", "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Parse(strings.NewReader(tt.input), Options{})
			require.NoError(t, err)

			require.Len(t, inv.Devices, 1)
			assert.Equal(t, tt.status, inv.Devices[0].Status)
		})
	}

	inv, err := Parse(strings.NewReader("r1:cisco:down\nr2:juniper:up\nr1:cisco:up\n"), Options{})
	require.NoError(t, err)
	require.Len(t, inv.Active(), 2)
	assert.Equal(t, "r1", inv.Active()[0].Name)
}

func TestParseSemicolonSeparator(t *testing.T) {
	input := "r1;cisco;up\nr2:cisco:up\n"
	inv, err := Parse(strings.NewReader(input), Options{Separator: ";"})
	require.NoError(t, err)

	require.Len(t, inv.Devices, 1)
	assert.Equal(t, "r1", inv.Devices[0].Name)
	assert.Equal(t, 1, inv.Skipped)
}

func TestLoadAndConfigPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "router.db")
	require.NoError(t, os.WriteFile(path, []byte("r1:cisco:up\n"), 0644))

	inv, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, path, inv.Path)
	assert.Equal(t, filepath.Join(dir, "configs", "r1"), inv.ConfigPath("r1"))

	inv, err = Load(path, Options{ConfigsDir: "archive"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "archive", "r1"), inv.ConfigPath("r1"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
