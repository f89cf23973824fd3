// Package metrics keeps per-run statistics in a Prometheus registry so they
// can be dropped into a node_exporter textfile directory after each run.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rancid2dot"

// Skip reasons used as the "reason" label of DevicesSkipped.
const (
	ReasonInactive      = "inactive"
	ReasonUnknownVendor = "unknown_vendor"
	ReasonUnreadable    = "unreadable"
)

type Metrics struct {
	reg *prometheus.Registry

	DevicesIngested  prometheus.Counter
	DevicesSkipped   *prometheus.CounterVec
	Endpoints        prometheus.Counter
	LineErrors       prometheus.Counter
	AddressConflicts prometheus.Counter

	Prefixes prometheus.Gauge
	Links    prometheus.Gauge
	Segments prometheus.Gauge
	Unpaired prometheus.Gauge

	LastRun prometheus.Gauge
}

// New returns a Metrics backed by its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		DevicesIngested: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "devices_ingested_total",
			Help:      "Devices whose configuration was read and extracted",
		}),
		DevicesSkipped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "devices_skipped_total",
			Help:      "Devices not ingested, by reason",
		}, []string{"reason"}),
		Endpoints: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "endpoints_total",
			Help:      "Interface addresses extracted from configurations",
		}),
		LineErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "line_errors_total",
			Help:      "Configuration lines with an unparseable address or mask",
		}),
		AddressConflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "address_conflicts_total",
			Help:      "Addresses claimed by more than one device interface",
		}),
		Prefixes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "prefixes",
			Help:      "Distinct prefixes in the last run",
		}),
		Links: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "links",
			Help:      "Point-to-point links inferred in the last run",
		}),
		Segments: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "segments",
			Help:      "Prefixes with three or more endpoints in the last run",
		}),
		Unpaired: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unpaired_prefixes",
			Help:      "Prefixes with a single endpoint in the last run",
		}),
		LastRun: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run completed",
		}),
	}
}

// WriteTextfile writes all metrics in the text exposition format. The file is
// replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	m.LastRun.SetToCurrentTime()
	return prometheus.WriteToTextfile(path, m.reg)
}
