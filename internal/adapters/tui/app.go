package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tidydesk/internal/adapters/tui/views"
	"tidydesk/internal/domain"
	"tidydesk/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPlan ViewState = iota
	ViewConfirm
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state   ViewState
	plan    *views.PlanModel
	confirm *views.ConfirmModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(ws ports.Workspace, classifier *domain.Classifier, sourceDir string) *App {
	return &App{
		state:   ViewPlan,
		plan:    views.NewPlanModel(ws, classifier, sourceDir),
		confirm: views.NewConfirmModel(ws, classifier, sourceDir),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.plan.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.plan.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToConfirmMsg:
		a.state = ViewConfirm
		a.confirm.SetPlan(msg.Report)
		return a, a.confirm.Init()

	case views.SwitchToPlanMsg:
		a.state = ViewPlan
		if msg.Message != "" {
			a.plan.SetMessage(msg.Message, false)
		}
		if msg.Reload {
			return a, a.plan.Reload()
		}
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPlan:
		_, cmd = a.plan.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewConfirm:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.plan.View()
	}
}
