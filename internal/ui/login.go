package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davrek/roster/internal/api"
)

// loginForm holds the credential inputs for the login view.
type loginForm struct {
	inputs   [2]textinput.Model // 0 = username, 1 = password
	focusIdx int
	errors   [2]string
}

func newLoginForm() loginForm {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 64
	username.Width = 28
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 64
	password.Width = 28
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginForm{
		inputs: [2]textinput.Model{username, password},
	}
}

func (f loginForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

// next moves focus to the following field, wrapping around.
func (f *loginForm) next() {
	f.inputs[f.focusIdx].Blur()
	f.focusIdx = (f.focusIdx + 1) % len(f.inputs)
	f.inputs[f.focusIdx].Focus()
}

func (f *loginForm) prev() {
	f.inputs[f.focusIdx].Blur()
	f.focusIdx--
	if f.focusIdx < 0 {
		f.focusIdx = len(f.inputs) - 1
	}
	f.inputs[f.focusIdx].Focus()
}

// validate checks that both fields are filled in. It records per-field
// messages and reports whether the form can be submitted.
func (f *loginForm) validate() bool {
	ok := true
	for i, label := range [2]string{"Username", "Password"} {
		if strings.TrimSpace(f.inputs[i].Value()) == "" {
			f.errors[i] = label + " is required"
			ok = false
		} else {
			f.errors[i] = ""
		}
	}
	return ok
}

func (f loginForm) credentials() api.Credentials {
	return api.Credentials{
		Username: strings.TrimSpace(f.inputs[0].Value()),
		Password: f.inputs[1].Value(),
	}
}

// update forwards a message to the focused input.
func (f loginForm) update(msg tea.Msg) (loginForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focusIdx], cmd = f.inputs[f.focusIdx].Update(msg)
	return f, cmd
}

// handleLoginKey processes keyboard input for the login view.
func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextField):
		m.login.next()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.PrevField):
		m.login.prev()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Confirm):
		if m.login.focusIdx < len(m.login.inputs)-1 {
			m.login.next()
			return m, textinput.Blink
		}
		if !m.login.validate() {
			return m, nil
		}
		return m, m.loginCmd(m.login.credentials())
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

// renderLogin renders the centered login card.
func (m Model) renderLogin() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Sign in"))
	b.WriteString("\n\n")

	for i, label := range [2]string{"Username", "Password"} {
		b.WriteString(styles.Label.Render(label))
		b.WriteString(m.login.inputs[i].View())
		b.WriteString("\n")
		if m.login.errors[i] != "" {
			b.WriteString(styles.FieldError.Render(m.login.errors[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter submit · tab next field"))

	card := styles.Card.Render(b.String())
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, card)
}
