package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/rules"
)

func newLanguagesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and their refactoring rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			type langInfo struct {
				Language string   `json:"language"`
				Rules    []string `json:"rules"`
			}

			var infos []langInfo
			for _, lang := range rules.SupportedLanguages() {
				infos = append(infos, langInfo{
					Language: string(lang),
					Rules:    rules.RuleNames(lang),
				})
			}
			infos = append(infos, langInfo{
				Language: string(domain.LangGeneric),
				Rules:    rules.RuleNames(domain.LangGeneric),
			})

			if jsonOutput {
				return renderJSON(cmd, infos)
			}

			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", info.Language)
				for _, name := range info.Rules {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
