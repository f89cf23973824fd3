// Package collector reads every active device's saved configuration and
// loads the extracted addresses into a prefix store.
package collector

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/teichopsia/rancid2dot/internal/extract"
	"github.com/teichopsia/rancid2dot/internal/inventory"
	"github.com/teichopsia/rancid2dot/internal/metrics"
	"github.com/teichopsia/rancid2dot/internal/model"
	"github.com/teichopsia/rancid2dot/internal/prefix"
	"golang.org/x/sync/errgroup"
)

var log = logrus.New()

func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// MissingPolicy decides what happens when a device's configuration cannot be read.
type MissingPolicy string

const (
	MissingFail MissingPolicy = "fail" // abort the run
	MissingSkip MissingPolicy = "skip" // log it and leave the device out
)

// ParseMissingPolicy validates a policy name. Empty means MissingFail.
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch MissingPolicy(s) {
	case "", MissingFail:
		return MissingFail, nil
	case MissingSkip:
		return MissingSkip, nil
	}
	return "", fmt.Errorf("unknown missing-config policy %q (want %s or %s)", s, MissingFail, MissingSkip)
}

type Options struct {
	OnMissing MissingPolicy
	Workers   int              // devices read concurrently; <1 means 1
	Metrics   *metrics.Metrics // optional
}

// Result holds the outcome for a single active device.
type Result struct {
	Device     model.Device
	Skipped    bool
	Reason     string
	Endpoints  int
	LineErrors int
	Err        error
}

// Collect extracts every active device in inv using table and returns the
// populated store. Results are in inventory order whatever the worker count.
func Collect(ctx context.Context, inv *inventory.Inventory, table *extract.Table, opts Options) (*prefix.Store, []Result, error) {
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	var active []model.Device
	for _, d := range inv.Devices {
		if !d.Active() {
			log.WithField("device", d.Name).Debugf("skipping device with status %q", d.Status)
			m.DevicesSkipped.WithLabelValues(metrics.ReasonInactive).Inc()
			continue
		}
		active = append(active, d)
	}

	store := prefix.NewStore()
	results := make([]Result, len(active))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, d := range active {
		i, d := i, d
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := collectDevice(inv, table, store, d, opts.OnMissing, m)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, results, err
	}

	return store, results, nil
}

func collectDevice(inv *inventory.Inventory, table *extract.Table, store *prefix.Store, d model.Device, policy MissingPolicy, m *metrics.Metrics) (Result, error) {
	r := Result{Device: d}
	dlog := log.WithFields(logrus.Fields{"device": d.Name, "vendor": d.Vendor})

	x, ok := table.Lookup(d.Vendor)
	if !ok {
		dlog.Debug("no extractor for vendor, skipping")
		m.DevicesSkipped.WithLabelValues(metrics.ReasonUnknownVendor).Inc()
		r.Skipped = true
		r.Reason = "unknown vendor"
		return r, nil
	}

	path := inv.ConfigPath(d.Name)
	res, err := extractFile(x, d.Name, path)
	if err != nil {
		derr := &DeviceError{Device: d.Name, Path: path, Err: err}
		if policy == MissingSkip {
			dlog.WithError(err).Warn("configuration unreadable, skipping")
			m.DevicesSkipped.WithLabelValues(metrics.ReasonUnreadable).Inc()
			r.Skipped = true
			r.Reason = "unreadable"
			r.Err = derr
			return r, nil
		}
		r.Err = derr
		return r, derr
	}

	for _, le := range res.LineErrors {
		dlog.WithFields(logrus.Fields{"line": le.Line, "text": le.Text}).WithError(le.Err).Warn("skipping config line")
	}
	m.LineErrors.Add(float64(len(res.LineErrors)))
	r.LineErrors = len(res.LineErrors)

	for _, ep := range res.Endpoints {
		conflict, err := store.Add(ep)
		if err != nil {
			dlog.WithError(err).Warn("skipping address")
			continue
		}
		if conflict {
			dlog.WithFields(logrus.Fields{"interface": ep.Interface, "address": ep.Address}).
				Warn("address already configured on another interface")
			m.AddressConflicts.Inc()
		}
		r.Endpoints++
	}
	m.Endpoints.Add(float64(r.Endpoints))
	m.DevicesIngested.Inc()

	dlog.WithField("endpoints", r.Endpoints).Debug("device ingested")
	return r, nil
}

func extractFile(x extract.Extractor, device, path string) (*extract.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := x.Extract(device, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return res, nil
}
