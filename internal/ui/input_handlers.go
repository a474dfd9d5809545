package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davrek/roster/internal/api"
	"github.com/davrek/roster/internal/prefs"
)

// handleKey processes keyboard input. All bindings come from the keyMap so
// the handlers and the help overlay share one source of truth.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Notification modals take priority over everything else.
	if len(m.modals) > 0 {
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Escape), msg.String() == " ":
			m.modals = m.modals[1:]
		}
		return m, nil
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Text-entry contexts swallow printable keys, so they get their own
	// handlers before the global bindings.
	switch {
	case m.currentView == ViewLogin:
		return m.handleLoginKey(msg)
	case m.currentView == ViewUserForm:
		return m.handleFormKey(msg)
	case m.currentView == ViewDashboard && m.searching:
		return m.handleSearchKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ViewDashboard):
		cmd := m.navigate(ViewDashboard)
		return m, cmd

	case key.Matches(msg, m.keys.ViewProfile):
		m.currentView = m.guard(ViewProfile)
		return m, nil

	case key.Matches(msg, m.keys.AddUser):
		cmd := m.navigate(ViewUserForm)
		return m, cmd

	case key.Matches(msg, m.keys.Logout):
		// Logout clears the store and the persisted session.
		m.acts.Logout()
		m.snapshot = m.store.Snapshot()
		cmd := m.navigate(ViewLogin)
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		if m.currentView == ViewDashboard {
			if m.activeQuery != "" {
				m.activeQuery = ""
				m.searchInput.SetValue("")
				return m, m.fetchUsersCmd()
			}
			return m, nil
		}
		cmd := m.navigate(ViewDashboard)
		return m, cmd
	}

	// View-specific keys
	switch m.currentView {
	case ViewDashboard:
		return m.handleDashboardKey(msg)
	case ViewProfile:
		return m.handleProfileKey(msg)
	}

	return m, nil
}

// handleDashboardKey processes keyboard input for the user list.
func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.CycleSort):
		// Cycle sort column and refetch the full list.
		m.sortBy = nextSortBy(m.sortBy)
		m.activeQuery = ""
		m.searchInput.SetValue("")
		m.savePrefs()
		return m, m.fetchUsersCmd()

	case key.Matches(msg, m.keys.FlipOrder):
		// Flip sort order and refetch the full list.
		if m.order == "asc" {
			m.order = "desc"
		} else {
			m.order = "asc"
		}
		m.activeQuery = ""
		m.searchInput.SetValue("")
		m.savePrefs()
		return m, m.fetchUsersCmd()

	case key.Matches(msg, m.keys.Open):
		if user := m.selectedUser(); user != nil {
			cmd := m.openDetail(user.ID)
			return m, cmd
		}
		return m, nil
	}

	userCount := len(m.snapshot.Users)
	if userCount == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < userCount-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = userCount - 1
	}

	return m, nil
}

// handleSearchKey processes keyboard input while the search box has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.searchInput.Blur()
		query := m.searchInput.Value()
		m.activeQuery = strings.TrimSpace(query)
		m.selectedRow = 0
		return m, m.searchCmd(query)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleProfileKey processes keyboard input for the profile view.
func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.EditProfile) {
		cmd := m.openEditProfile()
		return m, cmd
	}
	return m, nil
}

// updateFocusedInput forwards component messages (cursor blinks and the
// like) to whichever text input currently has focus.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.currentView == ViewLogin:
		m.login, cmd = m.login.update(msg)
	case m.currentView == ViewUserForm:
		m.form, cmd = m.form.update(msg)
	case m.currentView == ViewDashboard && m.searching:
		m.searchInput, cmd = m.searchInput.Update(msg)
	}
	return m, cmd
}

// selectedUser returns the user under the cursor, or nil.
func (m Model) selectedUser() *api.User {
	if m.selectedRow < 0 || m.selectedRow >= len(m.snapshot.Users) {
		return nil
	}
	return &m.snapshot.Users[m.selectedRow]
}

// nextSortBy cycles through the sortable columns.
func nextSortBy(current string) string {
	switch current {
	case "firstName":
		return "lastName"
	case "lastName":
		return "age"
	default:
		return "firstName"
	}
}

// savePrefs persists the current theme and sort preferences.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:  m.theme.Name,
		SortBy: m.sortBy,
		Order:  m.order,
	})
}
