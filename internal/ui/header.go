package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the status bar: logo, session state, list counts,
// and the active sort.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	var parts []string

	parts = append(parts, styles.Logo.Render("roster"))

	if current := m.snapshot.CurrentUser; current != nil {
		parts = append(parts, styles.SuccessText.Render("●")+" "+styles.Text.Render(current.FullName()))
		if current.Role != "" {
			parts = append(parts, styles.RoleStyle(current.Role).Render(strings.ToUpper(current.Role)))
		}
	} else {
		parts = append(parts, styles.MutedText.Render("● signed out"))
	}

	if m.currentView != ViewLogin {
		parts = append(parts,
			styles.MutedText.Render("Users:")+" "+
				styles.Text.Render(fmt.Sprintf("%d", len(m.snapshot.Users))))

		arrow := "↑"
		if m.order == "desc" {
			arrow = "↓"
		}
		parts = append(parts,
			styles.MutedText.Render("Sort:")+" "+
				styles.Text.Render(m.sortBy+" "+arrow))

		if m.activeQuery != "" {
			parts = append(parts, styles.AccentText.Render("/"+truncate(m.activeQuery, 18)))
		}
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderCommandBar renders the command hints bar for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewLogin:
		commands = []cmd{
			{"enter", "Submit"},
			{"tab", "Next field"},
			{"ctrl+c", "Quit"},
		}
	case ViewDashboard:
		if m.searching {
			commands = []cmd{
				{"enter", "Search"},
				{"esc", "Cancel"},
			}
		} else {
			commands = []cmd{
				{"j/k", "Navigate"},
				{"enter", "Details"},
				{"/", "Search"},
				{"s", "Sort"},
				{"o", "Order"},
				{"a", "Add"},
				{"p", "Profile"},
				{"L", "Logout"},
				{"?", "More"},
			}
		}
	case ViewDetail:
		commands = []cmd{
			{"esc", "Back"},
			{"d", "Dashboard"},
			{"?", "More"},
		}
	case ViewProfile:
		commands = []cmd{
			{"enter", "Edit"},
			{"d", "Dashboard"},
			{"L", "Logout"},
			{"?", "More"},
		}
	case ViewUserForm:
		commands = []cmd{
			{"ctrl+s", "Submit"},
			{"tab", "Next field"},
			{"esc", "Cancel"},
		}
	}

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			styles.AccentText.Render(c.key)+styles.FaintText.Render(":")+styles.MutedText.Render(c.desc))
	}

	// Theme indicator
	segments = append(segments,
		styles.AccentText.Render("T")+styles.FaintText.Render(":")+styles.FaintText.Render(m.theme.Name))

	return styles.Footer.Width(m.width).Render(strings.Join(segments, "  "))
}
