package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codelens/src/service/catalog"
)

func (h *Handler) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rule catalog",
		Run: func(cmd *cobra.Command, args []string) {
			for _, lang := range catalog.Languages() {
				fmt.Printf("%s:\n", lang)
				for _, rule := range catalog.RulesFor(lang) {
					mode := "first-match"
					if rule.FindAll {
						mode = "find-all"
					}
					fmt.Printf("  %-20s %-10s %-6s %-11s %s\n",
						rule.ID, rule.Kind, rule.Severity, mode, rule.Message)
				}
				fmt.Println()
			}
		},
	}
}
