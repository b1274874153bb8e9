package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/batch-dashboard/internal/client/form"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// Form fields in display order.
var dashboardFields = []string{
	domain.FieldTargetPercentage,
	domain.FieldImportSetupID,
	domain.FieldHourlyBatchCount,
}

type dashboardView struct {
	inputs []textinput.Model
	focus  int

	user      string
	state     form.State
	notice    string
	noticeErr bool
	authURL   string
}

func newDashboardView(styles Styles) dashboardView {
	placeholders := []string{"0-100", "1", "1-100"}
	v := dashboardView{state: form.Idle{}}
	for i := range dashboardFields {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Prompt = "│ "
		in.CharLimit = 16
		in.PromptStyle = styles.Blurred
		v.inputs = append(v.inputs, in)
	}
	v.setInput(form.InputFrom(domain.DefaultBatchSettings()))
	return v
}

func (v *dashboardView) reset() {
	v.user = ""
	v.notice = ""
	v.noticeErr = false
	v.authURL = ""
	v.setInput(form.InputFrom(domain.DefaultBatchSettings()))
}

func (v *dashboardView) blurAll() {
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
}

func (v *dashboardView) move(delta int) {
	v.inputs[v.focus].Blur()
	v.focus = (v.focus + delta + len(v.inputs)) % len(v.inputs)
	v.inputs[v.focus].Focus()
}

func (v *dashboardView) setInput(in form.Input) {
	v.inputs[0].SetValue(in.TargetPercentage)
	v.inputs[1].SetValue(in.ImportSetupID)
	v.inputs[2].SetValue(in.HourlyBatchCount)
}

func (v *dashboardView) input() form.Input {
	return form.Input{
		TargetPercentage: v.inputs[0].Value(),
		ImportSetupID:    v.inputs[1].Value(),
		HourlyBatchCount: v.inputs[2].Value(),
	}
}

func (v *dashboardView) setNotice(msg string, isErr bool) {
	v.notice = msg
	v.noticeErr = isErr
	if isErr {
		v.authURL = ""
	}
}

func (v dashboardView) fieldErrors() form.FieldErrors {
	switch st := v.state.(type) {
	case form.Idle:
		return st.FieldErrors
	case form.ErrorDisplayed:
		return st.FieldErrors
	}
	return nil
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.dash.move(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.dash.move(-1)
		return m, nil
	case tea.KeyEsc:
		m.form.Dismiss()
		m.dash.state = m.form.State()
		m.dash.notice = ""
		m.dash.authURL = ""
		return m, nil
	case tea.KeyCtrlL:
		m.account.Logout()
		return m.recheck()
	}

	if m.busy {
		return m, nil
	}
	if _, submitting := m.dash.state.(form.Submitting); submitting {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		m.dash.notice = ""
		m.dash.authURL = ""
		m.dash.state = form.Submitting{}
		return m.startBusy(submitCmd(m.ctx, m.form, m.dash.input()))
	case tea.KeyCtrlS:
		m.dash.setNotice("", false)
		return m.startBusy(stopCmd(m.ctx, m.batch))
	case tea.KeyCtrlU:
		m.dash.setNotice("", false)
		return m.startBusy(authURLCmd(m.ctx, m.batch))
	}

	var cmd tea.Cmd
	m.dash.inputs[m.dash.focus], cmd = m.dash.inputs[m.dash.focus].Update(msg)
	return m, cmd
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Batch Dashboard"))
	if m.dash.user != "" {
		b.WriteString("  " + m.styles.Muted.Render("signed in as "+m.dash.user))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Master batch settings"))
	b.WriteString("\n\n")

	errs := m.dash.fieldErrors()
	for i, field := range dashboardFields {
		label := m.styles.Label.Render(form.Labels[field])
		if i == m.dash.focus {
			label = m.styles.Focused.Render(label)
		}
		b.WriteString(label + m.dash.inputs[i].View() + "\n")
		if msg := errs[field]; msg != "" {
			b.WriteString(m.styles.FieldError.Render(msg) + "\n")
		}
	}
	b.WriteString("\n")

	switch st := m.dash.state.(type) {
	case form.Submitting:
		b.WriteString(m.spinner.View() + " Starting batch...\n")
	case form.SuccessDisplayed:
		text := st.Message
		if st.Result != nil && st.Result.TaskID != "" {
			text += " (task " + st.Result.TaskID + ")"
		}
		b.WriteString(m.styles.Success.Render(text) + "\n")
	case form.ErrorDisplayed:
		b.WriteString(m.styles.Error.Render(st.Message) + "\n")
	}

	if m.busy {
		if _, submitting := m.dash.state.(form.Submitting); !submitting {
			b.WriteString(m.spinner.View() + " Working...\n")
		}
	}
	if m.dash.notice != "" {
		style := m.styles.Notice
		if m.dash.noticeErr {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.dash.notice) + "\n")
	}
	if m.dash.authURL != "" {
		b.WriteString(m.dash.authURL + "\n")
	}

	b.WriteString(m.styles.Help.Render("enter: start batch • ctrl+s: stop batch • ctrl+u: calendar auth URL • esc: dismiss • ctrl+l: log out • ctrl+c: quit"))
	return b.String()
}
