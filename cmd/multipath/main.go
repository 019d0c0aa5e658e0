// Command multipath computes tie-preserving shortest paths over weighted
// undirected multigraphs and enumerates every minimum-length route.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/katalvlaran/multipath/internal/config"
	"github.com/katalvlaran/multipath/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("multipath version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("multipath version %s-dev", version)
}

// app carries the resolved configuration shared by every subcommand.
type app struct {
	cfg *config.Config
	log *logrus.Logger

	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
	flagOutput    string
	flagStrategy  string
	flagTrace     bool
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:     "multipath",
		Short:   "multipath - every shortest path, ties included",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd, logOut)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flagConfig, "config", "", "YAML config file (env: MULTIPATH_*)")
	pf.StringVar(&a.flagLogLevel, "log-level", "", "Log level: debug|info|warn|error")
	pf.StringVar(&a.flagLogFormat, "log-format", "", "Log format: text|json")
	pf.StringVarP(&a.flagOutput, "output", "o", "", "Output format: table|json")
	pf.StringVar(&a.flagStrategy, "strategy", "", "Frontier strategy: heap|linear")
	pf.BoolVar(&a.flagTrace, "trace", false, "Log every relaxation decision at debug level")

	rootCmd.AddCommand(newDistancesCmd(a))
	rootCmd.AddCommand(newPathsCmd(a))
	rootCmd.AddCommand(newBatchCmd(a))
	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newServeCmd(a))

	return rootCmd
}

// resolve loads the config file and environment, then applies explicit flags.
func (a *app) resolve(cmd *cobra.Command, logOut io.Writer) error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flagLogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.flagLogFormat
	}
	if flags.Changed("output") {
		cfg.Output = a.flagOutput
	}
	if flags.Changed("strategy") {
		cfg.Strategy = a.flagStrategy
	}
	if a.flagTrace {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	if a.log, err = logging.New(cfg.LogLevel, cfg.LogFormat, logOut); err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

// engineOptions turns configuration into dijkstra options.
func (a *app) engineOptions() ([]dijkstra.Option, error) {
	s, err := a.cfg.EngineStrategy()
	if err != nil {
		return nil, err
	}
	opts := []dijkstra.Option{dijkstra.WithStrategy(s)}
	if a.flagTrace {
		opts = append(opts, dijkstra.WithLogger(a.log))
	}

	return opts, nil
}
