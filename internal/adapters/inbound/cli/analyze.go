package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/adapters/outbound/config"
	"github.com/codelens/codelens/internal/adapters/outbound/gitinfo"
	"github.com/codelens/codelens/internal/adapters/outbound/history"
	"github.com/codelens/codelens/internal/adapters/outbound/loader"
	"github.com/codelens/codelens/internal/adapters/outbound/tui"
	"github.com/codelens/codelens/internal/application"
	"github.com/codelens/codelens/internal/domain"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		jsonOutput  bool
		ciMode      bool
		minScore    int
		badge       bool
		showHistory bool
		langFlag    string
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a source file and report its quality score",
		Long:  "Compute deterministic metrics for a source file, score the five quality categories, and print the full report with recommendations and located issues.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			svc := newAnalyzeService()

			if showHistory {
				absPath, err := filepath.Abs(path)
				if err != nil {
					return fmt.Errorf("resolving path: %w", err)
				}
				entries, err := svc.History(filepath.Dir(absPath))
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			var result *domain.QualityResult
			if langFlag != "" {
				// Explicit language overrides extension inference.
				fl := loader.New()
				unit, err := fl.LoadFile(path)
				if err != nil {
					return fmt.Errorf("analyze failed: %w", err)
				}
				unit.Language = domain.NormalizeLanguage(langFlag)
				result = svc.AnalyzeSource(unit, domain.DefaultConfig())
			} else {
				var err error
				result, err = svc.AnalyzeFile(path)
				if err != nil {
					return fmt.Errorf("analyze failed: %w", err)
				}
			}

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, result); err != nil {
					return err
				}
			case badge:
				renderBadge(cmd, result.Overall)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(result))
			}

			if ciMode && result.Overall < minScore {
				return fmt.Errorf("score %d is below minimum %d", result.Overall, minScore)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show score history for the file's directory")
	cmd.Flags().StringVar(&langFlag, "lang", "", "Override language detection (javascript, python, cpp, java, sql)")

	return cmd
}

func newAnalyzeService() *application.AnalyzeService {
	return application.NewAnalyzeService(
		loader.New(),
		config.New(),
		gitinfo.New(),
		history.New(),
	)
}

func renderJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderBadge(cmd *cobra.Command, overall int) {
	color := domain.BadgeColor(overall)
	url := fmt.Sprintf("https://img.shields.io/badge/codelens-%d%%2F100-%s", overall, color)
	fmt.Fprintln(cmd.OutOrStdout(), url)
}
