package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/davrek/roster/internal/api"
)

// renderDetail renders the detail card for the selected user.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()

	detail := m.snapshot.UserDetail
	if detail == nil || detail.ID != m.detailID {
		loading := styles.MutedText.Render(fmt.Sprintf("Loading user #%d...", m.detailID))
		return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, loading)
	}

	card := m.renderUserCard(styles, *detail, "User details")
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, card)
}

// renderProfile renders the signed-in user's profile card.
func (m Model) renderProfile() string {
	styles := m.theme.Styles()

	current := m.snapshot.CurrentUser
	if current == nil {
		empty := styles.MutedText.Render("Not signed in.")
		return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, empty)
	}

	var b strings.Builder
	b.WriteString(m.renderUserCard(styles, *current, "My profile"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter edit profile"))

	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, b.String())
}

// renderUserCard renders the fields of a user record inside a bordered card.
func (m Model) renderUserCard(styles Styles, user api.User, title string) string {
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render(title))
	if user.Role != "" {
		b.WriteString("  ")
		b.WriteString(styles.RoleStyle(user.Role).Render(strings.ToUpper(user.Role)))
	}
	b.WriteString("\n\n")

	fields := []struct{ label, value string }{
		{"ID", fmt.Sprintf("#%d", user.ID)},
		{"Name", user.FullName()},
		{"Username", user.Username},
		{"Email", user.Email},
		{"Age", fmt.Sprintf("%d", user.Age)},
		{"Gender", user.Gender},
	}
	if user.Image != "" {
		fields = append(fields, struct{ label, value string }{"Image", truncateMiddle(user.Image, 40)})
	}

	for _, f := range fields {
		value := f.value
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		b.WriteString(styles.Label.Render(f.label))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}

	return styles.Card.Render(strings.TrimRight(b.String(), "\n"))
}
