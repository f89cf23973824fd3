package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/teichopsia/rancid2dot/internal/collector"
	"github.com/teichopsia/rancid2dot/internal/config"
	"github.com/teichopsia/rancid2dot/internal/extract"
	"github.com/teichopsia/rancid2dot/internal/inventory"
	"github.com/teichopsia/rancid2dot/internal/metrics"
	"github.com/teichopsia/rancid2dot/internal/render"
	"github.com/teichopsia/rancid2dot/internal/topology"
)

var (
	outputFile    string
	outputFormat  string
	themeName     string
	direction     string
	separator     string
	configsDir    string
	onMissing     string
	workers       int
	metricsFile   string
	logLevel      string
	noDiagnostics bool
	autoRender    string
)

func init() {
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the graph to a file instead of stdout")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "graph format: dot, d2")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "color theme: classic, dark, monochrome, ocean")
	rootCmd.Flags().StringVar(&direction, "direction", "", "layout direction: right, down")
	rootCmd.Flags().StringVar(&onMissing, "on-missing", "", "missing device configuration: fail, skip")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "devices to read in parallel")
	rootCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write run statistics in Prometheus text format")
	rootCmd.Flags().BoolVar(&noDiagnostics, "no-diagnostics", false, "do not list shared subnets on stderr")
	rootCmd.Flags().StringVar(&autoRender, "render", "", "also render the output file with dot or d2: svg, png")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return withHint(err, "check rancid2dot.yml")
	}
	applyFlagOverrides(cmd, cfg)

	if len(args) == 1 {
		cfg.Inventory.Path = args[0]
	}
	if cfg.Inventory.Path == "" {
		return withHint(errors.New("no router.db given"), "pass the path to router.db, or set inventory.path in rancid2dot.yml")
	}
	if autoRender != "" && cfg.Output == "" {
		return withHint(errors.New("--render needs an output file"), "add --output backbone."+cfg.Format)
	}

	err = generate(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if isBrokenPipe(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if autoRender != "" {
		return renderImage(cfg.Format, cfg.Output, autoRender)
	}
	return nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if outputFile != "" {
		cfg.Output = outputFile
	}
	if outputFormat != "" {
		cfg.Format = outputFormat
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if direction != "" {
		cfg.Direction = direction
	}
	if separator != "" {
		cfg.Inventory.Separator = separator
	}
	if configsDir != "" {
		cfg.Inventory.ConfigsDir = configsDir
	}
	if onMissing != "" {
		cfg.Collect.OnMissing = onMissing
	}
	if cmd.Flags().Changed("workers") {
		cfg.Collect.Workers = workers
	}
	if metricsFile != "" {
		cfg.MetricsFile = metricsFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if noDiagnostics {
		cfg.Diagnostics = false
	}
}

func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	return log, nil
}

// buildTable returns the default vendor table extended with configured aliases.
func buildTable(vendors map[string]string) (*extract.Table, error) {
	table := extract.DefaultTable()
	for vendor, style := range vendors {
		if err := table.Alias(vendor, extract.Style(style)); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// generate runs the whole pipeline: load the inventory, extract every active
// device, aggregate and write diagnostics to errOut and the graph to out (or
// cfg.Output).
func generate(ctx context.Context, cfg *config.Config, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := newLogger(cfg.LogLevel, errOut)
	if err != nil {
		return withHint(err, "use one of debug, info, warn, error")
	}
	collector.SetLogger(log)

	table, err := buildTable(cfg.Vendors)
	if err != nil {
		return withHint(err, "check the vendors section of rancid2dot.yml")
	}
	policy, err := collector.ParseMissingPolicy(cfg.Collect.OnMissing)
	if err != nil {
		return err
	}
	renderer, err := render.New(cfg.Format, render.Options{Theme: cfg.Theme, Direction: cfg.Direction})
	if err != nil {
		return err
	}

	inv, err := inventory.Load(cfg.Inventory.Path, inventory.Options{
		Separator:  cfg.Inventory.Separator,
		ConfigsDir: cfg.Inventory.ConfigsDir,
	})
	if err != nil {
		return withHint(fmt.Errorf("loading inventory: %w", err), "pass the path to a RANCID router.db")
	}
	log.WithFields(logrus.Fields{
		"path":    inv.Path,
		"devices": len(inv.Devices),
		"skipped": inv.Skipped,
	}).Debug("inventory loaded")

	m := metrics.New()
	store, _, err := collector.Collect(ctx, inv, table, collector.Options{
		OnMissing: policy,
		Workers:   cfg.Collect.Workers,
		Metrics:   m,
	})
	if err != nil {
		return withHint(err, "use --on-missing skip to leave devices without a saved configuration out")
	}

	topo := topology.Aggregate(store)
	m.Prefixes.Set(float64(store.Len()))
	m.Links.Set(float64(len(topo.Links)))
	m.Segments.Set(float64(topo.Segments))
	m.Unpaired.Set(float64(topo.Unpaired))
	log.WithFields(logrus.Fields{
		"prefixes": store.Len(),
		"links":    len(topo.Links),
		"segments": topo.Segments,
	}).Info("topology aggregated")

	if cfg.Diagnostics {
		if err := render.WriteDiagnostics(errOut, topo.Diagnostics); err != nil {
			return err
		}
	}

	if err := writeGraph(renderer, topology.BuildGraph(topo.Links), cfg.Output, out); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

func writeGraph(r render.Renderer, g *topology.Graph, path string, stdout io.Writer) error {
	if path == "" {
		w := bufio.NewWriter(stdout)
		if err := r.Render(w, g); err != nil {
			return err
		}
		return w.Flush()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := r.Render(w, g); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// isBrokenPipe reports whether the reader of our output went away, which is
// a normal way for a pipeline like "rancid2dot router.db | head" to end.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
