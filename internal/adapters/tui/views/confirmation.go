package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tidydesk/internal/adapters/tui/styles"
	"tidydesk/internal/application/commands"
	"tidydesk/internal/domain"
	"tidydesk/internal/ports"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmModel asks for confirmation before a plan is applied live.
type ConfirmModel struct {
	ViewState

	ws         ports.Workspace
	classifier *domain.Classifier
	sourceDir  string

	report   domain.Report
	applying bool
	Keys     ConfirmKeyMap
}

// NewConfirmModel creates a new confirmation view model
func NewConfirmModel(ws ports.Workspace, classifier *domain.Classifier, sourceDir string) *ConfirmModel {
	return &ConfirmModel{
		ws:         ws,
		classifier: classifier,
		sourceDir:  sourceDir,
		Keys:       DefaultConfirmKeys,
	}
}

// SetPlan sets the plan awaiting confirmation
func (m *ConfirmModel) SetPlan(report domain.Report) {
	m.report = report
	m.applying = false
	m.ClearMessage()
}

// Init initializes the confirmation view
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

type appliedMsg struct {
	report domain.Report
}

func (m *ConfirmModel) apply() tea.Msg {
	ctx := context.Background()

	var result *commands.OrganizeResult
	var err error
	if m.report.Mode == domain.ModeDate {
		result, err = commands.NewOrganizeByDateCommand(m.ws, m.sourceDir, true).Execute(ctx)
	} else {
		result, err = commands.NewOrganizeByTypeCommand(m.ws, m.classifier, m.sourceDir, true).Execute(ctx)
	}
	if err != nil {
		return errMsg{err}
	}
	return appliedMsg{report: result.Report}
}

// Update handles messages for the confirmation view
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case appliedMsg:
		message := fmt.Sprintf("Moved %d files", msg.report.Planned()-len(msg.report.Failed()))
		if failed := msg.report.Failed(); len(failed) > 0 {
			message = fmt.Sprintf("%s, %d failed", message, len(failed))
		}
		return m, func() tea.Msg {
			return SwitchToPlanMsg{Reload: true, Message: message}
		}

	case errMsg:
		m.applying = false
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if m.applying {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			return m, func() tea.Msg {
				return SwitchToPlanMsg{}
			}
		case key.Matches(msg, m.Keys.Confirm):
			m.applying = true
			return m, m.apply
		}
	}

	return m, nil
}

// View renders the confirmation view
func (m *ConfirmModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Apply plan"))
	b.WriteString("\n")

	modeLabel := "category folders"
	if m.report.Mode == domain.ModeDate {
		modeLabel = "year/month folders"
	}
	b.WriteString(styles.InputLabel.Render("Move:"))
	fmt.Fprintf(&b, "\n  %d files in %s into %s\n\n", m.report.Planned(), m.sourceDir, modeLabel)

	if m.applying {
		b.WriteString(styles.StatusText.Render("Applying..."))
	} else {
		b.WriteString("Proceed? ")
		b.WriteString(styles.HelpKey.Render("y"))
		b.WriteString(styles.HelpDesc.Render(" to confirm, "))
		b.WriteString(styles.HelpKey.Render("n"))
		b.WriteString(styles.HelpDesc.Render(" to cancel"))
	}

	if m.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ErrorMsg.Render(m.Message))
	}

	return styles.App.Render(b.String())
}
