package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

const (
	emailField = iota
	passwordField
)

type loginView struct {
	inputs []textinput.Model
	focus  int
	err    string
}

func newLoginView(styles Styles) loginView {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "│ "
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "│ "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	v := loginView{inputs: []textinput.Model{email, password}}
	for i := range v.inputs {
		v.inputs[i].PromptStyle = styles.Blurred
	}
	return v
}

func (v *loginView) blurAll() {
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
}

func (v *loginView) move(delta int) {
	v.inputs[v.focus].Blur()
	v.focus = (v.focus + delta + len(v.inputs)) % len(v.inputs)
	v.inputs[v.focus].Focus()
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.login.move(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.login.move(-1)
		return m, nil
	case tea.KeyEnter:
		if m.busy {
			return m, nil
		}
		if m.login.focus == emailField {
			m.login.move(1)
			return m, nil
		}
		creds := domain.LoginCredentials{
			Email:    m.login.inputs[emailField].Value(),
			Password: m.login.inputs[passwordField].Value(),
		}
		m.login.err = ""
		return m.startBusy(loginCmd(m.ctx, m.account, creds))
	}

	if m.busy {
		return m, nil
	}
	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Batch Dashboard"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Sign in"))
	b.WriteString("\n\n")

	labels := []string{"Email", "Password"}
	for i, in := range m.login.inputs {
		label := m.styles.Label.Render(labels[i])
		if i == m.login.focus {
			label = m.styles.Focused.Render(m.styles.Label.Render(labels[i]))
		}
		b.WriteString(label + in.View() + "\n")
	}

	if m.login.err != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.login.err) + "\n")
	}
	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " Signing in...\n")
	}

	b.WriteString(m.styles.Help.Render("tab: next field • enter: sign in • ctrl+c: quit"))
	return b.String()
}
