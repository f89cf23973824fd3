package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult, themes []string) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		Format:     "dot",
		Theme:      "classic",
		Direction:  "right",
		Separator:  ":",
		ConfigsDir: "configs",
	}
	if !detection.GraphvizAvailable && detection.D2Available {
		answers.Format = "d2"
	}

	var hints []string
	if detection.GraphvizAvailable {
		hints = append(hints, "Graphviz (dot) detected")
	}
	if detection.D2Available {
		hints = append(hints, "d2 detected")
	}

	// Step 1: inventory
	var inventoryField huh.Field
	if len(detection.RouterDBs) > 0 {
		answers.Inventory = detection.RouterDBs[0]
		opts := make([]huh.Option[string], 0, len(detection.RouterDBs))
		for _, p := range detection.RouterDBs {
			opts = append(opts, huh.NewOption(p, p))
		}
		inventoryField = huh.NewSelect[string]().
			Title("Which router.db should be mapped?").
			Description(fmt.Sprintf("Found %d RANCID inventories", len(detection.RouterDBs))).
			Options(opts...).
			Value(&answers.Inventory)
	} else {
		inventoryField = huh.NewInput().
			Title("Path to router.db").
			Description("Leave empty to pass it on the command line instead").
			Placeholder("/var/lib/rancid/backbone/router.db").
			Value(&answers.Inventory)
	}

	var rancid3 bool
	workers := "1"

	themeOpts := make([]huh.Option[string], 0, len(themes))
	for _, name := range themes {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	formatDesc := "Graph description written to stdout or the output file"
	if len(hints) > 0 {
		formatDesc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	form := huh.NewForm(
		huh.NewGroup(
			inventoryField,
			huh.NewConfirm().
				Title("RANCID 3 inventory (fields separated by ';')?").
				Value(&rancid3),
			huh.NewInput().
				Title("Configuration directory").
				Description("Relative to the router.db directory").
				Value(&answers.ConfigsDir),
		),
		// Step 2: collection
		huh.NewGroup(
			huh.NewConfirm().
				Title("Skip devices whose saved configuration is missing?").
				Description("Otherwise the run stops at the first missing file").
				Value(&answers.SkipMissing),
			huh.NewInput().
				Title("Devices to read in parallel").
				Value(&workers).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
		),
		// Step 3: output
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Description(formatDesc).
				Options(
					huh.NewOption("Graphviz DOT", "dot"),
					huh.NewOption("D2", "d2"),
				).
				Value(&answers.Format),
			huh.NewInput().
				Title("Output file (optional)").
				Description("Leave empty to write to stdout").
				Value(&answers.Output),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&answers.Theme),
			huh.NewSelect[string]().
				Title("Diagram direction").
				Options(
					huh.NewOption("Right (horizontal)", "right"),
					huh.NewOption("Down (vertical)", "down"),
				).
				Value(&answers.Direction),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	if rancid3 {
		answers.Separator = ";"
	}
	answers.Workers, _ = strconv.Atoi(workers)

	return answers, nil
}
