package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/adapters/outbound/config"
	"github.com/codelens/codelens/internal/adapters/outbound/loader"
	"github.com/codelens/codelens/internal/adapters/outbound/tui"
	"github.com/codelens/codelens/internal/application"
)

func newRefactorCmd() *cobra.Command {
	var (
		jsonOutput bool
		write      bool
		outPath    string
		showDiff   bool
		genTests   bool
	)

	cmd := &cobra.Command{
		Use:   "refactor <file>",
		Short: "Apply rule-based refactorings to a source file",
		Long:  "Run the language's ordered refactoring rules over a source file, report what changed, and score the result. Without --write or -o the refactored code goes to stdout.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			svc := application.NewRefactorService(loader.New(), config.New())

			if genTests {
				skeleton, err := svc.GenerateTests(path)
				if err != nil {
					return fmt.Errorf("test generation failed: %w", err)
				}
				if skeleton == "" {
					return fmt.Errorf("no test skeleton available for this language")
				}
				fmt.Fprint(cmd.OutOrStdout(), skeleton)
				return nil
			}

			before, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}

			result, err := svc.RefactorFile(path)
			if err != nil {
				return fmt.Errorf("refactor failed: %w", err)
			}

			if showDiff {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderDiff(string(before), result.RefactoredCode))
			}

			switch {
			case jsonOutput:
				return renderJSON(cmd, result)
			case write:
				if err := os.WriteFile(path, []byte(result.RefactoredCode), 0644); err != nil {
					return fmt.Errorf("writing file: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRefactor(result))
			case outPath != "":
				if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
					return fmt.Errorf("creating output dir: %w", err)
				}
				if err := os.WriteFile(outPath, []byte(result.RefactoredCode), 0644); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRefactor(result))
			case showDiff:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRefactor(result))
			default:
				fmt.Fprint(cmd.OutOrStdout(), result.RefactoredCode)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().BoolVar(&write, "write", false, "Rewrite the file in place")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write refactored code to this path")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show a before/after diff")
	cmd.Flags().BoolVar(&genTests, "tests", false, "Emit a unit-test skeleton instead of refactoring")

	return cmd
}
