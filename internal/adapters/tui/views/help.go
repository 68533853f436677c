package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tidydesk/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPlanMsg{}
			}
		}
	}

	return m, nil
}

type helpEntry struct {
	keys string
	desc string
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("tidydesk Help"))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render("Review the plan, then apply it. Nothing moves until you confirm."))
	b.WriteString("\n\n")

	sections := []struct {
		title   string
		entries []helpEntry
	}{
		{
			title: "Navigation",
			entries: []helpEntry{
				{"k/↑  j/↓", "move cursor"},
				{"h/←  l/→", "previous / next page"},
			},
		},
		{
			title: "Plan",
			entries: []helpEntry{
				{"tab", "switch between type and date mode"},
				{"r", "rescan the directory"},
				{"c", "copy the selected destination path"},
				{"a", "apply the plan (asks for confirmation)"},
			},
		},
		{
			title: "General",
			entries: []helpEntry{
				{"?", "toggle this help"},
				{"q", "quit"},
			},
		},
	}

	for _, section := range sections {
		b.WriteString(styles.InputLabel.Render(section.title))
		b.WriteString("\n")
		for _, e := range section.entries {
			b.WriteString("  ")
			b.WriteString(styles.HelpKey.Render(e.keys))
			b.WriteString("  ")
			b.WriteString(styles.HelpDesc.Render(e.desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpDesc.Render("esc/q to close"))
	return styles.App.Render(b.String())
}
