package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tidydesk/internal/adapters/filesystem"
	"tidydesk/internal/config"
	"tidydesk/internal/domain"
	"tidydesk/internal/ports"
)

var (
	sourceDir  string
	rulesPath  string
	workspace  ports.Workspace
	classifier *domain.Classifier
)

var rootCmd = &cobra.Command{
	Use:   "tidydesk-cli",
	Short: "CLI for organizing a cluttered directory",
	Long: `tidydesk-cli sorts the files of a single directory into category
subfolders using filename heuristics and extension lookup, or into
year/month folders by creation date.

Every command simulates by default; pass --live to actually move
files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		sourceDir = filesystem.ExpandPath(sourceDir)
		workspace = filesystem.NewRepository()

		rules, err := config.LoadRules(filesystem.ExpandPath(rulesPath))
		if err != nil {
			return err
		}
		classifier = domain.NewClassifier(rules)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sourceDir, "dir", "d", config.SourceDir(), "directory to organize")
	rootCmd.PersistentFlags().StringVarP(&rulesPath, "rules", "r", "", "path to a TOML rules file")
}

// GetWorkspace returns the initialized workspace
func GetWorkspace() ports.Workspace {
	return workspace
}

// GetClassifier returns the initialized classifier
func GetClassifier() *domain.Classifier {
	return classifier
}
