package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/adapters/outbound/tui"
)

func newScanCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		minScore   int
		badge      bool
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Analyze every source file under a directory",
		Long:  "Walk a directory tree, analyze each recognized source file, and aggregate the scores into a project report. Include and exclude globs come from .codelens.yaml.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			svc := newAnalyzeService()
			report, err := svc.ScanTree(path)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			case badge:
				renderBadge(cmd, report.Overall)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderProject(report))
			}

			if ciMode && report.Overall < minScore {
				return fmt.Errorf("score %d is below minimum %d", report.Overall, minScore)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")

	return cmd
}
