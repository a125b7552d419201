package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtmstudio/scenedirector/internal/timeline"
)

func newTimelineCmd(opts *rootOptions) *cobra.Command {
	var sceneIndex int

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the entry/exit timing of a scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			_, doc, err := readInput(cmd, cfg)
			if err != nil {
				return err
			}
			if sceneIndex < 0 || sceneIndex >= len(doc.Scenes) {
				return fmt.Errorf("scene %d out of range (document has %d scenes)", sceneIndex, len(doc.Scenes))
			}

			sc := doc.Scenes[sceneIndex]
			env, err := timeline.Build(sc.Director, sc.Children)
			if err != nil {
				return fmt.Errorf("scene %d: %w", sceneIndex, err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "[*] Scene %d (id %d)\n", sceneIndex, sc.ID)
			for _, p := range []struct {
				name  string
				phase timeline.Phase
			}{{"entry", env.Entry}, {"exit", env.Exit}} {
				custom := ""
				if !p.phase.Known {
					custom = " (custom effect)"
				}
				fmt.Fprintf(w, "%-5s %s%s, %s: %.2fs -> %.2fs\n",
					p.name, p.phase.Effect, custom, p.phase.Easing, p.phase.Start, p.phase.End)
			}
			for i, offset := range env.ChildOffsets {
				fmt.Fprintf(w, "child %d starts at %.2fs\n", i, offset)
			}
			fmt.Fprintf(w, "settled at %.2fs\n", env.Settled())
			return nil
		},
	}
	cmd.Flags().IntVar(&sceneIndex, "scene", 0, "Zero-based scene index")
	return cmd
}
