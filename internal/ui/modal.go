package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/davrek/roster/internal/actions"
)

// renderModal renders a notification dialog over the whole screen. Enter or
// escape dismisses it; queued notifications show one at a time.
func (m Model) renderModal(n actions.Notification) string {
	styles := m.theme.Styles()

	titleStyle := styles.SuccessText
	borderColor := m.theme.Success
	if n.Icon == actions.IconError {
		titleStyle = styles.DangerText
		borderColor = m.theme.Danger
	}

	var b strings.Builder
	b.WriteString(titleStyle.Bold(true).Render(n.Title))
	if n.Text != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.Text.Render(n.Text))
	}
	b.WriteString("\n\n")

	confirm := n.ConfirmText
	if confirm == "" {
		confirm = "Ok"
	}
	b.WriteString(styles.Selected.Render(" " + confirm + " "))

	if len(m.modals) > 1 {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(
			strings.Repeat(".", len(m.modals)-1) + " more"))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
