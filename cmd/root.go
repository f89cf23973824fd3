package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/teichopsia/rancid2dot/internal/ui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rancid2dot <router.db>",
	Short: "Draw a network map from a RANCID archive",
	Long: `rancid2dot reads a RANCID router.db and the saved configurations next to it,
groups interface addresses by subnet and treats every subnet shared by exactly
two interfaces as a point-to-point circuit.

The graph is written to stdout (Graphviz DOT by default). Every subnet shared by
two or more interfaces is listed on stderr.

  rancid2dot /var/lib/rancid/backbone/router.db | dot -Tsvg > backbone.svg`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// hintError carries a suggestion for the user alongside the error.
type hintError struct {
	err  error
	hint string
}

func (e *hintError) Error() string { return e.err.Error() }
func (e *hintError) Unwrap() error { return e.err }

func withHint(err error, hint string) error {
	return &hintError{err: err, hint: hint}
}

func Execute() error {
	// Without this a closed stdout kills the process with SIGPIPE instead of
	// surfacing EPIPE from Write.
	signal.Notify(make(chan os.Signal, 1), syscall.SIGPIPE)

	err := rootCmd.Execute()
	if err != nil {
		var he *hintError
		hint := ""
		if errors.As(err, &he) {
			hint = he.hint
		}
		fmt.Fprint(os.Stderr, ui.FormatError("rancid2dot failed", err.Error(), hint))
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: rancid2dot.yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&separator, "separator", "", "router.db field separator (';' for RANCID 3)")
	rootCmd.PersistentFlags().StringVar(&configsDir, "configs-dir", "", "configuration directory, relative to router.db")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rancid2dot")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("RANCID2DOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}
