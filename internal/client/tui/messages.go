package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/batch-dashboard/internal/client/account"
	"github.com/heartmarshall/batch-dashboard/internal/client/form"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

type (
	loginDoneMsg struct {
		user *account.User
		err  error
	}
	userMsg struct {
		user *account.User
		err  error
	}
	settingsMsg struct {
		settings domain.BatchSettings
		err      error
	}
	submitDoneMsg struct {
		state form.State
		err   error
	}
	// stateMsg carries a transition the form controller made on its own.
	stateMsg struct {
		state form.State
	}
	stopDoneMsg struct {
		data map[string]any
		err  error
	}
	authURLMsg struct {
		url string
		err error
	}
)

func loginCmd(ctx context.Context, a accountService, creds domain.LoginCredentials) tea.Cmd {
	return func() tea.Msg {
		user, err := a.Login(ctx, creds)
		return loginDoneMsg{user: user, err: err}
	}
}

func currentUserCmd(ctx context.Context, a accountService) tea.Cmd {
	return func() tea.Msg {
		user, err := a.CurrentUser(ctx)
		return userMsg{user: user, err: err}
	}
}

func settingsCmd(ctx context.Context, b batchService) tea.Cmd {
	return func() tea.Msg {
		s, err := b.GetSettings(ctx)
		return settingsMsg{settings: s, err: err}
	}
}

func submitCmd(ctx context.Context, f formController, in form.Input) tea.Cmd {
	return func() tea.Msg {
		st, err := f.Submit(ctx, in)
		return submitDoneMsg{state: st, err: err}
	}
}

func stopCmd(ctx context.Context, b batchService) tea.Cmd {
	return func() tea.Msg {
		data, err := b.StopMasterBatch(ctx)
		return stopDoneMsg{data: data, err: err}
	}
}

func authURLCmd(ctx context.Context, b batchService) tea.Cmd {
	return func() tea.Msg {
		u, err := b.GetAuthURL(ctx)
		return authURLMsg{url: u, err: err}
	}
}

func waitForState(ch <-chan form.State) tea.Cmd {
	return func() tea.Msg {
		return stateMsg{state: <-ch}
	}
}
