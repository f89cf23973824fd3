package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teichopsia/rancid2dot/internal/config"
	"github.com/teichopsia/rancid2dot/internal/inventory"
	"github.com/teichopsia/rancid2dot/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [router.db]",
	Short: "Check that every active device can be read",
	Long: `Load router.db and check, for every device marked up, that its vendor has an
extractor and that its saved configuration exists and is readable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// Check is one validation finding.
type Check struct {
	Device     string
	OK         bool
	Message    string
	Suggestion string
	Skipped    bool
	Warning    bool // device is up but will be left out of the graph
}

func runValidate(cmd *cobra.Command, args []string) error {
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

	fmt.Println(ui.Bold("Validating " + cfg.Inventory.Path + "..."))

	checks, err := validateInventory(cfg)
	if err != nil {
		return err
	}

	passed, failed := 0, 0
	for _, c := range checks {
		switch {
		case c.Warning:
			ui.Warn(c.Device + ": " + c.Message)
		case c.Skipped:
			ui.DeviceSkipped(c.Device, c.Message)
		case c.OK:
			ui.ValidationOK(c.Device, c.Message)
			passed++
		default:
			ui.ValidationErr(c.Device, c.Message, c.Suggestion)
			failed++
		}
	}

	fmt.Println()
	if failed == 0 {
		ui.Success(fmt.Sprintf("%d devices ready, 0 errors", passed))
		return nil
	}
	fmt.Printf("%d devices ready, %d errors\n", passed, failed)
	return fmt.Errorf("%d validation errors", failed)
}

// validateInventory inspects every device in the configured inventory
// without extracting anything.
func validateInventory(cfg *config.Config) ([]Check, error) {
	table, err := buildTable(cfg.Vendors)
	if err != nil {
		return nil, err
	}
	inv, err := inventory.Load(cfg.Inventory.Path, inventory.Options{
		Separator:  cfg.Inventory.Separator,
		ConfigsDir: cfg.Inventory.ConfigsDir,
	})
	if err != nil {
		return nil, withHint(fmt.Errorf("loading inventory: %w", err), "pass the path to a RANCID router.db")
	}

	var checks []Check
	for _, d := range inv.Devices {
		if !d.Active() {
			checks = append(checks, Check{Device: d.Name, Skipped: true, Message: "status " + d.Status})
			continue
		}
		x, ok := table.Lookup(d.Vendor)
		if !ok {
			checks = append(checks, Check{Device: d.Name, Skipped: true, Warning: true, Message: "no extractor for " + d.Vendor})
			continue
		}

		path := inv.ConfigPath(d.Name)
		f, err := os.Open(path)
		if err != nil {
			checks = append(checks, Check{
				Device:     d.Name,
				Message:    err.Error(),
				Suggestion: "run rancid-run for this group, or mark the device down in router.db",
			})
			continue
		}
		f.Close()

		checks = append(checks, Check{
			Device:  d.Name,
			OK:      true,
			Message: fmt.Sprintf("%s configuration (%s)", d.Vendor, x.Style()),
		})
	}
	return checks, nil
}
