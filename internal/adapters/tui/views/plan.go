package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tidydesk/internal/adapters/tui/styles"
	"tidydesk/internal/application/commands"
	"tidydesk/internal/domain"
	"tidydesk/internal/ports"
)

// PlanKeyMap defines key bindings for the plan view
type PlanKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Mode     key.Binding
	Apply    key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var PlanKeys = PlanKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next page"),
	),
	Mode: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "type/date mode"),
	),
	Apply: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "apply"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy destination"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PlanModel shows the dry-run plan for the source directory and lets
// the user page through it, switch mode, and hand it off for apply.
type PlanModel struct {
	ViewState

	ws         ports.Workspace
	classifier *domain.Classifier
	sourceDir  string

	mode      domain.Mode
	report    domain.Report
	loaded    bool
	paginator *Paginator
}

// NewPlanModel creates a new plan view model
func NewPlanModel(ws ports.Workspace, classifier *domain.Classifier, sourceDir string) *PlanModel {
	return &PlanModel{
		ws:         ws,
		classifier: classifier,
		sourceDir:  sourceDir,
		mode:       domain.ModeType,
		paginator:  NewPaginator(15),
	}
}

// Init initializes the plan view
func (m *PlanModel) Init() tea.Cmd {
	return m.loadPlan
}

// Reload rebuilds the plan from the current directory state.
func (m *PlanModel) Reload() tea.Cmd {
	m.loaded = false
	return m.loadPlan
}

// Mode returns the currently selected organization mode.
func (m *PlanModel) Mode() domain.Mode {
	return m.mode
}

// Report returns the last loaded plan.
func (m *PlanModel) Report() domain.Report {
	return m.report
}

func (m *PlanModel) loadPlan() tea.Msg {
	ctx := context.Background()

	var result *commands.OrganizeResult
	var err error
	if m.mode == domain.ModeDate {
		result, err = commands.NewOrganizeByDateCommand(m.ws, m.sourceDir, false).Execute(ctx)
	} else {
		result, err = commands.NewOrganizeByTypeCommand(m.ws, m.classifier, m.sourceDir, false).Execute(ctx)
	}
	if err != nil {
		return errMsg{err}
	}
	return planLoadedMsg{report: result.Report}
}

type planLoadedMsg struct {
	report domain.Report
}

// Update handles messages for the plan view
func (m *PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case planLoadedMsg:
		m.report = msg.report
		m.loaded = true
		m.paginator.Reset()
		m.paginator.SetTotal(len(m.report.Moves))
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *PlanModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, PlanKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, PlanKeys.Up):
		m.paginator.CursorUp()

	case key.Matches(msg, PlanKeys.Down):
		m.paginator.CursorDown()

	case key.Matches(msg, PlanKeys.PrevPage):
		m.paginator.PrevPage()

	case key.Matches(msg, PlanKeys.NextPage):
		m.paginator.NextPage()

	case key.Matches(msg, PlanKeys.Mode):
		if m.mode == domain.ModeType {
			m.mode = domain.ModeDate
		} else {
			m.mode = domain.ModeType
		}
		m.ClearMessage()
		return m, m.Reload()

	case key.Matches(msg, PlanKeys.Reload):
		m.ClearMessage()
		return m, m.Reload()

	case key.Matches(msg, PlanKeys.Copy):
		if move, ok := m.selectedMove(); ok {
			if err := clipboard.WriteAll(move.Dest); err != nil {
				m.SetMessage(err.Error(), true)
			} else {
				m.SetMessage(fmt.Sprintf("Copied %s", move.Dest), false)
			}
		}

	case key.Matches(msg, PlanKeys.Apply):
		if m.loaded && len(m.report.Moves) > 0 {
			report := m.report
			return m, func() tea.Msg {
				return SwitchToConfirmMsg{Report: report}
			}
		}
		m.SetMessage("Nothing to organize", false)

	case key.Matches(msg, PlanKeys.Help):
		return m, func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}

	return m, nil
}

func (m *PlanModel) selectedMove() (domain.Move, bool) {
	if !m.loaded || len(m.report.Moves) == 0 {
		return domain.Move{}, false
	}
	return m.report.Moves[m.paginator.Cursor()], true
}

// View renders the plan view
func (m *PlanModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("tidydesk — " + m.sourceDir))
	b.WriteString("\n")
	b.WriteString(styles.DryRunBadge.Render("PLAN"))
	b.WriteString(" ")
	b.WriteString(styles.Subtitle.Render(m.subtitle()))
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString(styles.StatusText.Render("Scanning..."))
		return styles.App.Render(b.String())
	}

	if len(m.report.Moves) == 0 {
		b.WriteString(styles.StatusText.Render("Nothing to organize."))
	} else {
		start, end := m.paginator.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.renderMove(i))
			b.WriteString("\n")
		}
		if m.paginator.TotalPages() > 1 {
			fmt.Fprintf(&b, "\n%s", styles.StatusText.Render(
				fmt.Sprintf("page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages())))
		}
	}

	b.WriteString("\n\n")
	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())
	return styles.App.Render(b.String())
}

func (m *PlanModel) subtitle() string {
	modeLabel := "by type"
	if m.mode == domain.ModeDate {
		modeLabel = "by date"
	}
	if !m.loaded {
		return modeLabel
	}
	return fmt.Sprintf("%s — %d to move, %d hidden skipped", modeLabel, m.report.Planned(), m.report.SkippedHidden)
}

func (m *PlanModel) renderMove(i int) string {
	move := m.report.Moves[i]
	line := fmt.Sprintf("%s %s %s/",
		styles.MoveName.Render(move.Name),
		styles.MoveArrow.Render("→"),
		styles.MoveCategory.Render(move.Folder))

	if i == m.paginator.Cursor() {
		return styles.MoveSelected.Render("  " + move.String())
	}
	return "  " + line
}

func (m *PlanModel) renderStatusBar() string {
	hints := []string{
		styles.HelpKey.Render("a") + styles.HelpDesc.Render(" apply"),
		styles.HelpKey.Render("tab") + styles.HelpDesc.Render(" mode"),
		styles.HelpKey.Render("c") + styles.HelpDesc.Render(" copy"),
		styles.HelpKey.Render("r") + styles.HelpDesc.Render(" reload"),
		styles.HelpKey.Render("?") + styles.HelpDesc.Render(" help"),
		styles.HelpKey.Render("q") + styles.HelpDesc.Render(" quit"),
	}
	return strings.Join(hints, styles.HelpDesc.Render(" • "))
}
