// Package tui is the terminal dashboard: a login screen and the batch
// settings form, routed through the session guard.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/batch-dashboard/internal/client/account"
	"github.com/heartmarshall/batch-dashboard/internal/client/form"
	"github.com/heartmarshall/batch-dashboard/internal/client/guard"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

type accountService interface {
	Login(ctx context.Context, creds domain.LoginCredentials) (*account.User, error)
	CurrentUser(ctx context.Context) (*account.User, error)
	Logout()
}

type batchService interface {
	GetSettings(ctx context.Context) (domain.BatchSettings, error)
	StopMasterBatch(ctx context.Context) (map[string]any, error)
	GetAuthURL(ctx context.Context) (string, error)
}

type formController interface {
	Submit(ctx context.Context, in form.Input) (form.State, error)
	State() form.State
	Subscribe(fn func(form.State))
	Dismiss()
}

type router interface {
	Follow(location string) string
}

// Model is the root bubbletea model.
type Model struct {
	ctx     context.Context
	account accountService
	batch   batchService
	form    formController
	guard   router
	log     *slog.Logger

	styles  Styles
	spinner spinner.Model
	width   int

	location string
	busy     bool
	states   chan form.State

	login loginView
	dash  dashboardView
}

// New builds the dashboard and resolves the first screen.
func New(ctx context.Context, a accountService, b batchService, f formController, g router, logger *slog.Logger) Model {
	styles := DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	states := make(chan form.State, 8)
	m := Model{
		ctx:     ctx,
		account: a,
		batch:   b,
		form:    f,
		guard:   g,
		log:     logger.With("component", "tui"),
		styles:  styles,
		spinner: sp,
		states:  states,
		login:   newLoginView(styles),
		dash:    newDashboardView(styles),
	}

	// Transitions the controller makes by itself (the success banner
	// clearing) reach the model through this channel. Dropping one is
	// harmless because every stateMsg re-reads the controller.
	f.Subscribe(func(st form.State) {
		select {
		case states <- st:
		default:
		}
	})

	m.dash.state = f.State()
	m.location = g.Follow(guard.PathRoot)
	m.focusCurrent()
	return m
}

// Location returns the screen being shown.
func (m Model) Location() string { return m.location }

// Init starts the cursor blink and the loads of the first screen.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, waitForState(m.states)}
	if m.location == guard.PathDashboard {
		cmds = append(cmds, m.dashboardLoads()...)
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.location == guard.PathDashboard {
			return m.updateDashboard(msg)
		}
		return m.updateLogin(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loginDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.login.err = msg.err.Error()
			return m, nil
		}
		m.login.err = ""
		m.login.inputs[passwordField].SetValue("")
		return m.navigate(guard.PathDashboard)

	case userMsg:
		if msg.err == nil && msg.user != nil {
			m.dash.user = msg.user.Email
		}
		return m.recheck()

	case settingsMsg:
		if msg.err != nil {
			m.dash.setNotice("Failed to load settings: "+msg.err.Error(), true)
			return m.recheck()
		}
		m.dash.setInput(form.InputFrom(msg.settings))
		return m, nil

	case submitDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.dash.state = m.form.State()
		} else {
			m.dash.state = msg.state
		}
		return m.recheck()

	case stateMsg:
		m.dash.state = m.form.State()
		return m, waitForState(m.states)

	case stopDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.dash.setNotice(msg.err.Error(), true)
			return m.recheck()
		}
		message, _ := msg.data["message"].(string)
		if message == "" {
			message = "Batch stopped"
		}
		m.dash.setNotice(message, false)
		return m, nil

	case authURLMsg:
		m.busy = false
		if msg.err != nil {
			m.dash.authURL = ""
			m.dash.setNotice(msg.err.Error(), true)
			return m.recheck()
		}
		m.dash.authURL = msg.url
		m.dash.setNotice("Open this URL to authorize calendar access:", false)
		return m, nil
	}

	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	if m.location == guard.PathDashboard {
		return m.styles.App.Render(m.viewDashboard())
	}
	if m.location == guard.PathLogin {
		return m.styles.App.Render(m.viewLogin())
	}
	return m.styles.App.Render(m.styles.Title.Render("Batch Dashboard") + "\n\n" + "Page not found")
}

// navigate resolves location through the guard and switches to the result.
func (m Model) navigate(location string) (tea.Model, tea.Cmd) {
	next := m.guard.Follow(location)
	if next == m.location {
		return m, nil
	}
	m.log.Debug("navigate", slog.String("from", m.location), slog.String("to", next))

	from := m.location
	m.location = next
	m.focusCurrent()

	switch next {
	case guard.PathDashboard:
		m.dash.reset()
		m.dash.state = m.form.State()
		return m, tea.Batch(m.dashboardLoads()...)
	case guard.PathLogin:
		if from == guard.PathDashboard {
			m.login.err = "Your session has ended. Please sign in again."
		}
	}
	return m, nil
}

// recheck re-resolves the current screen. A request that ended the session
// moves the dashboard back to the login screen.
func (m Model) recheck() (tea.Model, tea.Cmd) {
	return m.navigate(m.location)
}

func (m Model) dashboardLoads() []tea.Cmd {
	return []tea.Cmd{currentUserCmd(m.ctx, m.account), settingsCmd(m.ctx, m.batch)}
}

func (m *Model) focusCurrent() {
	m.login.blurAll()
	m.dash.blurAll()
	switch m.location {
	case guard.PathLogin:
		m.login.focus = 0
		m.login.inputs[0].Focus()
	case guard.PathDashboard:
		m.dash.focus = 0
		m.dash.inputs[0].Focus()
	}
}

func (m Model) startBusy(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy = true
	return m, tea.Batch(cmd, m.spinner.Tick)
}
