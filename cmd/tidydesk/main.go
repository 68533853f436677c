package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tidydesk/internal/adapters/filesystem"
	"tidydesk/internal/adapters/tui"
	"tidydesk/internal/config"
	"tidydesk/internal/domain"
)

func main() {
	dirFlag := flag.String("dir", config.SourceDir(), "directory to organize")
	rulesFlag := flag.String("rules", "", "path to a TOML rules file")
	flag.Parse()

	rules, err := config.LoadRules(filesystem.ExpandPath(*rulesFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ws := filesystem.NewRepository()
	classifier := domain.NewClassifier(rules)
	sourceDir := filesystem.ExpandPath(*dirFlag)

	app := tui.NewApp(ws, classifier, sourceDir)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
