// Package commands implements the CLI commands for pctnorm.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/pctnorm/internal/config"
	"github.com/jmylchreest/pctnorm/internal/logger"
	"github.com/jmylchreest/pctnorm/pkg/percent"
)

// errNormalizationFailed is returned after a failed result has already been
// written, so Execute does not report it twice.
var errNormalizationFailed = errors.New("normalization failed")

// app carries state shared by the commands of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v}
	config.Setup(v)

	rootCmd := &cobra.Command{
		Use:   "pctnorm",
		Short: "Normalize percent and decimal text into canonical decimal strings",
		Long: `pctnorm turns free-form numbers such as "12%", "1,345,678.00" or
"   -0.1 %" into canonical decimal strings ("0.12", "1345678.00", "-0.001").

Letters and other noise are ignored; a misplaced or repeated sign, point or
percent sign is rejected.

Examples:
  # Normalize a value given on the command line
  pctnorm normalize "12%"

  # Values starting with a sign need "--"
  pctnorm normalize -- "-1,345,678,001,234.00%"

  # Prompt for a value and print the result as JSON
  pctnorm normalize --format json

  # Serve the normalizer over HTTP
  pctnorm serve --addr 127.0.0.1:8080`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.pctnorm.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log errors and suppress the prompt")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("log-json", false, "write logs as JSON")

	rootCmd.AddCommand(
		newNormalizeCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"config":           "config",
	"debug":            "debug",
	"quiet":            "quiet",
	"log-level":        "log.level",
	"log-json":         "log.json",
	"format":           "format",
	"compact":          "compact",
	"indent":           "indent",
	"fold-width":       "fold_width",
	"prompt":           "prompt",
	"addr":             "serve.addr",
	"shutdown-timeout": "serve.shutdown_timeout",
}

// bindFlags binds the flags of the command being executed. Subcommands share
// flag names, so binding happens here rather than when flags are declared.
func (a *app) bindFlags(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && err == nil {
			err = a.v.BindPFlag(key, f)
		}
	})
	return err
}

// setup reads the config file, validates the configuration and initializes logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.bindFlags(cmd); err != nil {
		return err
	}
	if err := config.ReadFile(a.v, a.v.GetString("config")); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Debug:  cfg.Debug,
		Quiet:  cfg.Quiet,
		JSON:   cfg.Log.JSON,
		Output: cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}

	a.cfg = cfg
	logger.Debug("configuration loaded", "config_file", a.v.ConfigFileUsed(), "format", cfg.Format)
	return nil
}

// normalizer builds a normalizer from the loaded configuration.
func (a *app) normalizer() *percent.Normalizer {
	var opts []percent.Option
	if a.cfg.FoldWidth {
		opts = append(opts, percent.WithWidthFolding())
	}
	return percent.New(opts...)
}

// Execute runs the root command.
func Execute() error {
	rootCmd := newRootCmd(viper.New())
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errNormalizationFailed) {
		logError(os.Stderr, "%v", err)
	}
	return err
}

// logError prints an error message.
func logError(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "Error: "+format+"\n", args...)
}
