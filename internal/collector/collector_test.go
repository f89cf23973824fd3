package collector

import (
	"context"
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teichopsia/rancid2dot/internal/extract"
	"github.com/teichopsia/rancid2dot/internal/inventory"
	"github.com/teichopsia/rancid2dot/internal/metrics"
)

// writeArchive lays out a RANCID-style directory and returns the router.db path.
func writeArchive(t *testing.T, routerDB string, configs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0755))
	for name, body := range configs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", name), []byte(body), 0644))
	}
	path := filepath.Join(dir, "router.db")
	require.NoError(t, os.WriteFile(path, []byte(routerDB), 0644))
	return path
}

func loadInventory(t *testing.T, path string) *inventory.Inventory {
	t.Helper()
	inv, err := inventory.Load(path, inventory.Options{})
	require.NoError(t, err)
	return inv
}

const (
	r1Config = "interface Gi0/0\n ip address 10.0.0.1 255.255.255.252\n!\n"
	r2Config = "interface Gi0/0\n ip address 10.0.0.2 255.255.255.252\n!\n"
)

func TestCollect(t *testing.T) {
	path := writeArchive(t,
		"r1:cisco:up\nr2:cisco:up\nr3:cisco:down\nfw1:netscreen:up\n",
		map[string]string{
			"r1":  r1Config,
			"r2":  r2Config,
			"r3":  "interface Gi0/0\n ip address 10.0.0.3 255.255.255.252\n!\n",
			"fw1": "set interface ethernet1 ip 10.0.0.3/30\n",
		})
	inv := loadInventory(t, path)
	m := metrics.New()

	store, results, err := Collect(context.Background(), inv, extract.DefaultTable(), Options{Metrics: m})
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, "r1", results[0].Device.Name)
	assert.Equal(t, 1, results[0].Endpoints)
	assert.Equal(t, "r2", results[1].Device.Name)
	assert.Equal(t, "fw1", results[2].Device.Name)
	assert.True(t, results[2].Skipped)
	assert.Equal(t, "unknown vendor", results[2].Reason)

	entry, ok := store.Lookup(netip.MustParsePrefix("10.0.0.0/30"))
	require.True(t, ok)
	require.Equal(t, 2, entry.Len())
	for _, ep := range entry.Endpoints() {
		assert.NotEqual(t, "r3", ep.Device)
		assert.NotEqual(t, "fw1", ep.Device)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DevicesIngested))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DevicesSkipped.WithLabelValues(metrics.ReasonInactive)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DevicesSkipped.WithLabelValues(metrics.ReasonUnknownVendor)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Endpoints))
}

func TestCollectMissingConfigFails(t *testing.T) {
	path := writeArchive(t, "r1:cisco:up\nr2:cisco:up\n", map[string]string{"r1": r1Config})
	inv := loadInventory(t, path)

	store, _, err := Collect(context.Background(), inv, extract.DefaultTable(), Options{})
	require.Error(t, err)
	assert.Nil(t, store)

	var derr *DeviceError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "r2", derr.Device)
	assert.Equal(t, inv.ConfigPath("r2"), derr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCollectMissingConfigSkip(t *testing.T) {
	path := writeArchive(t, "r1:cisco:up\nr2:cisco:up\n", map[string]string{"r1": r1Config})
	inv := loadInventory(t, path)
	m := metrics.New()

	store, results, err := Collect(context.Background(), inv, extract.DefaultTable(), Options{
		OnMissing: MissingSkip,
		Metrics:   m,
	})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.True(t, results[1].Skipped)
	assert.Equal(t, "unreadable", results[1].Reason)
	assert.ErrorIs(t, results[1].Err, os.ErrNotExist)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DevicesSkipped.WithLabelValues(metrics.ReasonUnreadable)))
}

func TestCollectLineErrorsDoNotAbortDevice(t *testing.T) {
	config := "interface Gi0/0\n ip address 10.0.0.1 255.0.255.0\n!\ninterface Gi0/1\n ip address 10.0.1.1 255.255.255.252\n!\n"
	path := writeArchive(t, "r1:cisco:up\n", map[string]string{"r1": config})
	inv := loadInventory(t, path)
	m := metrics.New()

	store, results, err := Collect(context.Background(), inv, extract.DefaultTable(), Options{Metrics: m})
	require.NoError(t, err)

	assert.Equal(t, 1, results[0].LineErrors)
	assert.Equal(t, 1, results[0].Endpoints)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LineErrors))
}

func TestCollectWorkersMatchSequential(t *testing.T) {
	routerDB := ""
	configs := map[string]string{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		routerDB += name + ":cisco:up\n"
		configs[name] = "interface Gi0/0\n ip address 10.0.0.1 255.255.255.252\n!\n"
	}
	path := writeArchive(t, routerDB, configs)
	inv := loadInventory(t, path)

	seq, _, err := Collect(context.Background(), inv, extract.DefaultTable(), Options{Workers: 1})
	require.NoError(t, err)
	par, results, err := Collect(context.Background(), inv, extract.DefaultTable(), Options{Workers: 4})
	require.NoError(t, err)

	for i, name := range []string{"a", "b", "c", "d", "e", "f"} {
		assert.Equal(t, name, results[i].Device.Name)
	}

	p := netip.MustParsePrefix("10.0.0.0/30")
	a, _ := seq.Lookup(p)
	b, _ := par.Lookup(p)
	assert.Equal(t, a.Endpoints(), b.Endpoints())
	assert.Equal(t, "a", b.Endpoints()[0].Device)
}

func TestParseMissingPolicy(t *testing.T) {
	p, err := ParseMissingPolicy("")
	require.NoError(t, err)
	assert.Equal(t, MissingFail, p)

	p, err = ParseMissingPolicy("skip")
	require.NoError(t, err)
	assert.Equal(t, MissingSkip, p)

	_, err = ParseMissingPolicy("ignore")
	assert.Error(t, err)
}
