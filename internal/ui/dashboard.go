package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/davrek/roster/internal/api"
)

// Column widths for the user table.
const (
	colID       = 6
	colName     = 28
	colUsername = 16
	colEmail    = 32
	colAge      = 5
	colGender   = 8
)

// renderDashboard renders the user list with the optional search box.
func (m Model) renderDashboard() string {
	styles := m.theme.Styles()

	var b strings.Builder

	if m.searching {
		b.WriteString(styles.AccentText.Render("/"))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderUserTableHeader(styles))
	b.WriteString("\n")

	users := m.snapshot.Users
	if len(users) == 0 {
		empty := "No users loaded."
		if m.activeQuery != "" {
			empty = fmt.Sprintf("No users match %q.", m.activeQuery)
		}
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("  " + empty))
		return b.String()
	}

	visible, offset := m.visibleRange(len(users))
	for i := offset; i < offset+visible; i++ {
		b.WriteString(m.renderUserRow(styles, users[i], i == m.selectedRow))
		b.WriteString("\n")
	}

	if offset > 0 || offset+visible < len(users) {
		b.WriteString(styles.FaintText.Render(
			fmt.Sprintf("  %d-%d of %d", offset+1, offset+visible, len(users))))
	}

	return b.String()
}

func (m Model) renderUserTableHeader(styles Styles) string {
	cells := []string{
		pad("ID", colID),
		pad("Name", colName),
		pad("Username", colUsername),
		pad("Email", colEmail),
		pad("Age", colAge),
		pad("Gender", colGender),
		"Role",
	}
	return styles.MutedText.Bold(true).Render("  " + strings.Join(cells, ""))
}

func (m Model) renderUserRow(styles Styles, user api.User, selected bool) string {
	cells := []string{
		pad(fmt.Sprintf("#%d", user.ID), colID),
		pad(truncate(user.FullName(), colName-2), colName),
		pad(truncate(user.Username, colUsername-2), colUsername),
		pad(truncate(user.Email, colEmail-2), colEmail),
		pad(fmt.Sprintf("%d", user.Age), colAge),
		pad(user.Gender, colGender),
	}
	row := strings.Join(cells, "")

	if selected {
		line := "> " + row + strings.ToUpper(user.Role)
		return styles.Selected.Render(line)
	}

	role := ""
	if user.Role != "" {
		role = styles.RoleStyle(user.Role).Render(strings.ToUpper(user.Role))
	}
	return "  " + styles.Text.Render(row) + role
}

// visibleRange returns how many rows fit and the scroll offset that keeps
// the selection on screen.
func (m Model) visibleRange(total int) (visible, offset int) {
	visible = m.contentHeight() - 2 // table header + padding
	if m.searching {
		visible -= 2
	}
	if visible < 1 {
		visible = 1
	}
	if visible > total {
		visible = total
	}

	offset = 0
	if m.selectedRow >= visible {
		offset = m.selectedRow - visible + 1
	}
	if offset+visible > total {
		offset = total - visible
	}
	if offset < 0 {
		offset = 0
	}
	return visible, offset
}

// contentHeight returns the rows available below the header and command bar.
func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// pad right-pads a string to the given width, truncating if needed.
func pad(s string, width int) string {
	if lipgloss.Width(s) > width {
		s = truncate(s, width)
	}
	n := width - lipgloss.Width(s)
	if n < 0 {
		n = 0
	}
	return s + strings.Repeat(" ", n)
}
