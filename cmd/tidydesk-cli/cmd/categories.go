package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tidydesk/internal/config"
	"tidydesk/internal/domain"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the configured categories",
	Long: `List every category the active rules can produce: the pattern
categories, the extension groups in match order, and the fallback.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rules := GetClassifier().Rules()

		byExt := make(map[domain.Category][]string)
		for _, g := range rules.Extensions {
			byExt[g.Category] = g.Match
		}

		for _, cat := range rules.Categories() {
			if exts, ok := byExt[cat]; ok {
				fmt.Printf("%s  (%s)\n", cat, strings.Join(exts, " "))
			} else {
				fmt.Println(cat)
			}
		}
		return nil
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print a sample rules file",
	Long: `Print an annotated sample rules file to stdout. Redirect it to a
file and pass that with --rules to customize classification:

  tidydesk-cli rules > ~/.config/tidydesk/rules.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(config.SampleRules())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(rulesCmd)
}
