package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gtmstudio/scenedirector/internal/engine"
	"github.com/gtmstudio/scenedirector/internal/metrics"
	"github.com/gtmstudio/scenedirector/internal/scene"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the director config of every scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProject(cmd, opts, false)
		},
	}
}

func newResolveCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Disable conflicting effects and write a corrected document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProject(cmd, opts, true)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Corrected document path (default: <input>.fixed.<ext>)")
	return cmd
}

func runProject(cmd *cobra.Command, opts *rootOptions, fix bool) error {
	cfg, logger, err := opts.load(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	input, doc, err := readInput(cmd, cfg)
	if err != nil {
		return err
	}

	m := metrics.New()
	project := engine.NewProject(engine.Options{
		Workers:   cfg.Workers,
		Strict:    cfg.Strict,
		Fix:       fix || cfg.Fix,
		ShowStats: cfg.ShowStats,
	}, logger, m)

	report, runErr := project.Run(cmd.Context(), doc)
	if report != nil {
		printReport(cmd.OutOrStdout(), input, report)
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("failed to write metrics", zap.String("path", cfg.MetricsFile), zap.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	if report.Fixed != nil {
		output := cfg.OutputPath
		if output == "" {
			output = scene.FixedPath(input)
		}
		if err := scene.WriteDocument(report.Fixed, output); err != nil {
			return fmt.Errorf("write corrected document: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[+] Corrected document: %s\n", output)
	}
	return nil
}

func printReport(w io.Writer, input string, r *engine.Report) {
	fmt.Fprintf(w, "[*] Document: %s | Scenes: %d\n", input, r.Totals.Scenes)

	for _, s := range r.Scenes {
		if s.OK() {
			fmt.Fprintf(w, "[+] Scene %d (id %d): OK\n", s.Index, s.ID)
		} else {
			fmt.Fprintf(w, "[-] Scene %d (id %d): %d issue(s)\n", s.Index, s.ID, len(s.Issues))
			for _, issue := range s.Issues {
				fmt.Fprintf(w, "    %s\n", issue.Message)
			}
		}
		for _, warning := range s.Warnings {
			fmt.Fprintf(w, "[!] Scene %d: %s\n", s.Index, warning)
		}
	}

	t := r.Totals
	fmt.Fprintf(w,
		"--- [SUMMARY] ---\n"+
			"Scenes with issues: %d/%d\n"+
			"Missing fields: %d | Invalid values: %d | Conflicts: %d | Resolved: %d\n"+
			"-----------------\n",
		t.ScenesWithIssues, t.Scenes, t.Missing, t.Invalid, t.Conflicts, t.Resolved,
	)

	if r.Stats != nil {
		fmt.Fprintf(w,
			"--- [PERFORMANCE REPORT] ---\n"+
				"Total Time: %s\n"+
				"CPUs: %d\n"+
				"RSS: %.1f MB\n"+
				"Host memory used: %.1f%%\n"+
				"----------------------------\n",
			r.Duration, r.Stats.CPUs, float64(r.Stats.RSS)/(1<<20), r.Stats.SystemUsedPercent,
		)
	}
}
