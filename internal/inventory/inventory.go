// Package inventory reads RANCID router.db device lists.
package inventory

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/teichopsia/rancid2dot/internal/model"
)

const (
	DefaultSeparator  = ":"
	DefaultConfigsDir = "configs"
)

// Options control how router.db is parsed and where configurations live.
type Options struct {
	Separator  string // field separator, ":" for RANCID 2 and ";" for RANCID 3
	ConfigsDir string // relative to the inventory file's directory
}

func (o Options) separator() string {
	if o.Separator == "" {
		return DefaultSeparator
	}
	return o.Separator
}

func (o Options) configsDir() string {
	if o.ConfigsDir == "" {
		return DefaultConfigsDir
	}
	return o.ConfigsDir
}

// Inventory is a parsed router.db.
type Inventory struct {
	Path    string
	Devices []model.Device // file order, de-duplicated
	Skipped int            // lines that were not name:vendor:status

	configsDir string
}

// Load reads the inventory at path.
func Load(path string, opts Options) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inv, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	inv.Path = path
	return inv, nil
}

// Parse reads inventory lines from r. Comments start at the first '#'.
// Lines that do not split into exactly three fields are skipped. A repeated
// (name, vendor) pair keeps its first position; an active repeat replaces an
// inactive entry.
func Parse(r io.Reader, opts Options) (*Inventory, error) {
	inv := &Inventory{configsDir: opts.configsDir()}
	sep := opts.separator()
	seen := make(map[[2]string]int)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, sep)
		if len(fields) != 3 {
			inv.Skipped++
			continue
		}
		d := model.Device{
			Name:   strings.TrimSpace(fields[0]),
			Vendor: strings.TrimSpace(fields[1]),
			Status: strings.TrimSpace(fields[2]),
		}
		if d.Name == "" {
			inv.Skipped++
			continue
		}

		key := [2]string{d.Name, d.Vendor}
		if i, ok := seen[key]; ok {
			// a later "up" line revives an entry first listed as down
			if d.Active() && !inv.Devices[i].Active() {
				inv.Devices[i] = d
			}
			continue
		}
		seen[key] = len(inv.Devices)
		inv.Devices = append(inv.Devices, d)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return inv, nil
}

// Active returns the devices whose status starts with "up", in file order.
func (inv *Inventory) Active() []model.Device {
	var out []model.Device
	for _, d := range inv.Devices {
		if d.Active() {
			out = append(out, d)
		}
	}
	return out
}

// ConfigPath returns where the saved configuration for device is expected.
func (inv *Inventory) ConfigPath(device string) string {
	return filepath.Join(filepath.Dir(inv.Path), inv.configsDir, device)
}
