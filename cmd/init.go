package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teichopsia/rancid2dot/internal/render"
	"github.com/teichopsia/rancid2dot/internal/ui"
	"github.com/teichopsia/rancid2dot/internal/wizard"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a rancid2dot.yml config file interactively",
	Long: `Look for RANCID router.db files and graph renderers, then write a config file
through an interactive wizard.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "rancid2dot.yml"

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("%s already exists.\n", configPath)
		fmt.Print("Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	fmt.Println(ui.Bold("Scanning for RANCID archives..."))
	detection := wizard.Detect(nil)

	answers, err := wizard.Run(detection, render.ThemeNames())
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ui.Success(fmt.Sprintf("Created %s", configPath))
	fmt.Println()
	if answers.Inventory != "" {
		fmt.Printf("Next step: %s\n", ui.Bold("rancid2dot validate"))
	} else {
		fmt.Printf("Next step: %s\n", ui.Bold("rancid2dot validate <router.db>"))
	}
	fmt.Printf("           %s\n", ui.Hint("or edit rancid2dot.yml to fine-tune your config"))

	return nil
}
