package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "codelens",
		Short:         "Score and refactor code without leaving the terminal",
		Long:          "CodeLens analyzes source files with deterministic metrics, scores them across five quality categories, and applies rule-based refactorings per language.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newRefactorCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newLanguagesCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
