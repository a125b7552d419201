package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gtmstudio/scenedirector/internal/config"
	"github.com/gtmstudio/scenedirector/internal/logging"
	"github.com/gtmstudio/scenedirector/internal/scene"
	"github.com/gtmstudio/scenedirector/internal/system"
)

type rootOptions struct {
	configPath  string
	input       string
	output      string
	workers     int
	strict      bool
	showStats   bool
	metricsFile string
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "scenedirector",
		Short:         "Validate and auto-correct scene director configs",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	f.StringVarP(&opts.input, "input", "i", "", "Scene document (default: newest file in input/scenes/)")
	f.IntVar(&opts.workers, "workers", 0, "Parallel validation workers (default: CPU count)")
	f.BoolVar(&opts.strict, "strict", false, "Exit non-zero when any scene has errors")
	f.BoolVar(&opts.showStats, "show-stats", false, "Print a resource usage report")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", "", "Log format: console, json")

	root.AddCommand(
		newValidateCmd(opts),
		newResolveCmd(opts),
		newTimelineCmd(opts),
	)
	return root
}

// load merges the config file and environment with explicitly set flags.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputPath = o.input
	}
	if flags.Changed("output") {
		cfg.OutputPath = o.output
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	if flags.Changed("show-stats") {
		cfg.ShowStats = o.showStats
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// readInput loads the configured document, falling back to the newest
// document in the scenes directory.
func readInput(cmd *cobra.Command, cfg *config.Config) (string, *scene.Document, error) {
	path := cfg.InputPath
	if path == "" {
		latest, err := system.FindLatest(cfg.ScenesDir, scene.Extensions...)
		if err != nil {
			return "", nil, fmt.Errorf("%w. Put a scene document into %s/ or pass --input", err, cfg.ScenesDir)
		}
		path = latest
		fmt.Fprintf(cmd.OutOrStdout(), "[*] Selected document: %s\n", path)
	}

	doc, err := scene.ReadDocument(path)
	if err != nil {
		return "", nil, err
	}
	return path, doc, nil
}
