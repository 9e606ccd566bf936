// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package tallerui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvgr-soft/taller/api"
	"github.com/mvgr-soft/taller/lib/tui"
	"github.com/mvgr-soft/taller/session"
)

// loginField identifies which input has focus on the login screen.
type loginField int

const (
	fieldUsername loginField = iota
	fieldPassword
)

// loginResultMsg reports an authentication attempt.
type loginResultMsg struct {
	response *api.LoginResponse
	err      error
}

// LoginView is the login screen: two inputs and an error line.
type LoginView struct {
	username textinput.Model
	password textinput.Model
	focus    loginField

	// errorText shows the last rejection ("Credenciales inválidas",
	// network failure) under the form.
	errorText string

	// busy is true while an authentication request is in flight.
	busy bool
}

// NewLoginView creates the login form with the username focused.
func NewLoginView() LoginView {
	username := textinput.New()
	username.Placeholder = "usuario"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "contraseña"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return LoginView{username: username, password: password}
}

// Reset clears both inputs and any error, refocusing the username.
// Called when a session expiry drops the user back to the login
// screen.
func (view *LoginView) Reset() {
	view.username.SetValue("")
	view.password.SetValue("")
	view.errorText = ""
	view.busy = false
	view.focus = fieldUsername
	view.username.Focus()
	view.password.Blur()
}

// Update handles login-screen input. Returns a non-nil command when
// the form submits.
func (view *LoginView) Update(message tea.Msg, client *api.Client, store *session.Store) tea.Cmd {
	keyMsg, isKey := message.(tea.KeyMsg)
	if !isKey || view.busy {
		return view.updateInputs(message)
	}

	switch keyMsg.String() {
	case "tab", "shift+tab", "up", "down":
		if view.focus == fieldUsername {
			view.focus = fieldPassword
			view.username.Blur()
			view.password.Focus()
		} else {
			view.focus = fieldUsername
			view.password.Blur()
			view.username.Focus()
		}
		return nil

	case "enter":
		if view.focus == fieldUsername {
			view.focus = fieldPassword
			view.username.Blur()
			view.password.Focus()
			return nil
		}
		username := view.username.Value()
		password := view.password.Value()
		if username == "" || password == "" {
			view.errorText = "Usuario y contraseña son obligatorios"
			return nil
		}
		view.busy = true
		view.errorText = ""
		return authenticate(client, store, username, password)
	}

	return view.updateInputs(message)
}

func (view *LoginView) updateInputs(message tea.Msg) tea.Cmd {
	var usernameCmd, passwordCmd tea.Cmd
	view.username, usernameCmd = view.username.Update(message)
	view.password, passwordCmd = view.password.Update(message)
	return tea.Batch(usernameCmd, passwordCmd)
}

// HandleResult applies an authentication outcome. Returns true when
// the login succeeded and the dashboard should take over.
func (view *LoginView) HandleResult(result loginResultMsg) bool {
	view.busy = false
	if result.err != nil {
		view.errorText = api.ErrorMessage(result.err, "No se pudo iniciar sesión")
		view.password.SetValue("")
		return false
	}
	return true
}

// View renders the login screen centered in the window.
func (view *LoginView) View(theme tui.Theme, width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	errorStyle := lipgloss.NewStyle().Foreground(theme.ErrorForeground)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(1, 3)

	status := ""
	if view.busy {
		status = labelStyle.Render("Autenticando…")
	} else if view.errorText != "" {
		status = errorStyle.Render(view.errorText)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Taller — Iniciar sesión"),
		"",
		labelStyle.Render("Usuario"),
		view.username.View(),
		"",
		labelStyle.Render("Contraseña"),
		view.password.View(),
		"",
		status,
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		boxStyle.Render(form))
}

// authenticate runs the login call off the UI thread and persists the
// session on success.
func authenticate(client *api.Client, store *session.Store, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		response, err := client.Login(ctx, username, password)
		if err != nil {
			return loginResultMsg{err: err}
		}
		store.Login(response.Token, response.Username)
		return loginResultMsg{response: response}
	}
}
