package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tidydesk/internal/application/commands"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <name>...",
	Short: "Show the category a filename resolves to",
	Long: `Classify one or more filenames without touching the filesystem.

Examples:
  tidydesk-cli classify vacation.png
  tidydesk-cli classify "samia_ibrahim_resume.pdf" "taxes_il_2023.pdf"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		classifyCmd := commands.NewClassifyCommand(GetClassifier(), args)
		result, err := classifyCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, c := range result.Classifications {
			fmt.Printf("%s → %s/\n", c.Name, c.Category)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
