package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tidydesk/internal/application"
	"tidydesk/internal/application/commands"
)

var (
	typeLive bool
	dateLive bool
)

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Organize files into category folders",
	Long: `Organize the immediate children of the target directory into
category folders (Resumes, Tax Documents, Screenshots, Images, ...)
chosen by filename heuristics and extension lookup.

Name collisions in the destination are resolved by appending _1, _2,
and so on to the stem; existing files are never overwritten.

Examples:
  tidydesk-cli type                     # simulate, ~/Downloads or $TIDYDESK_DIR
  tidydesk-cli type --dir ~/Desktop     # simulate another directory
  tidydesk-cli type --live              # actually move files`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		organizeCmd := commands.NewOrganizeByTypeCommand(GetWorkspace(), GetClassifier(), sourceDir, typeLive)
		result, err := organizeCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Print(application.FormatReport(result.Report))
		return nil
	},
}

var dateCmd = &cobra.Command{
	Use:   "date",
	Short: "Organize files into year/month folders",
	Long: `Organize the immediate children of the target directory into
YYYY/YYYY-MM folders from each file's creation time. Files whose
creation time cannot be determined are left in place.

Examples:
  tidydesk-cli date           # simulate
  tidydesk-cli date --live    # actually move files`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		organizeCmd := commands.NewOrganizeByDateCommand(GetWorkspace(), sourceDir, dateLive)
		result, err := organizeCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Print(application.FormatReport(result.Report))
		return nil
	},
}

func init() {
	typeCmd.Flags().BoolVar(&typeLive, "live", false, "move files instead of simulating")
	dateCmd.Flags().BoolVar(&dateLive, "live", false, "move files instead of simulating")
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(dateCmd)
}
