package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davrek/roster/internal/api"
)

// genderOptions are the selectable values for the gender field.
var genderOptions = []string{"male", "female", "other"}

const (
	fieldFirstName = iota
	fieldLastName
	fieldAge
	fieldGender
	fieldCount
)

// userForm holds the add/edit user form state. The same form backs both
// flows; editing forms are pre-filled once the detail fetch lands.
type userForm struct {
	inputs    [3]textinput.Model // firstName, lastName, age
	genderIdx int
	focusIdx  int
	errors    [fieldCount]string

	editing   bool
	editID    int
	prefilled bool
}

func newUserForm() userForm {
	first := textinput.New()
	first.Placeholder = "First name"
	first.CharLimit = 64
	first.Width = 28
	first.Focus()

	last := textinput.New()
	last.Placeholder = "Last name"
	last.CharLimit = 64
	last.Width = 28

	age := textinput.New()
	age.Placeholder = "Age"
	age.CharLimit = 3
	age.Width = 28

	return userForm{
		inputs: [3]textinput.Model{first, last, age},
	}
}

func newAddUserForm() userForm {
	return newUserForm()
}

func newEditUserForm(id int) userForm {
	f := newUserForm()
	f.editing = true
	f.editID = id
	return f
}

func (f userForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

// prefill populates the form from a fetched user record.
func (f *userForm) prefill(user api.User) {
	f.inputs[fieldFirstName].SetValue(user.FirstName)
	f.inputs[fieldLastName].SetValue(user.LastName)
	f.inputs[fieldAge].SetValue(strconv.Itoa(user.Age))
	f.genderIdx = 0
	for i, g := range genderOptions {
		if g == user.Gender {
			f.genderIdx = i
			break
		}
	}
	f.prefilled = true
}

func (f *userForm) next() {
	f.blurFocused()
	f.focusIdx = (f.focusIdx + 1) % fieldCount
	f.focusFocused()
}

func (f *userForm) prev() {
	f.blurFocused()
	f.focusIdx--
	if f.focusIdx < 0 {
		f.focusIdx = fieldCount - 1
	}
	f.focusFocused()
}

func (f *userForm) blurFocused() {
	if f.focusIdx < len(f.inputs) {
		f.inputs[f.focusIdx].Blur()
	}
}

func (f *userForm) focusFocused() {
	if f.focusIdx < len(f.inputs) {
		f.inputs[f.focusIdx].Focus()
	}
}

// cycleGender advances the gender selector.
func (f *userForm) cycleGender(delta int) {
	f.genderIdx = (f.genderIdx + delta + len(genderOptions)) % len(genderOptions)
}

// validate checks all fields and records per-field messages. Age must be a
// whole number between 1 and 120.
func (f *userForm) validate() bool {
	ok := true

	if strings.TrimSpace(f.inputs[fieldFirstName].Value()) == "" {
		f.errors[fieldFirstName] = "First name is required"
		ok = false
	} else {
		f.errors[fieldFirstName] = ""
	}

	if strings.TrimSpace(f.inputs[fieldLastName].Value()) == "" {
		f.errors[fieldLastName] = "Last name is required"
		ok = false
	} else {
		f.errors[fieldLastName] = ""
	}

	ageText := strings.TrimSpace(f.inputs[fieldAge].Value())
	if ageText == "" {
		f.errors[fieldAge] = "Age is required"
		ok = false
	} else if age, err := strconv.Atoi(ageText); err != nil || age < 1 || age > 120 {
		f.errors[fieldAge] = "Age must be between 1 and 120"
		ok = false
	} else {
		f.errors[fieldAge] = ""
	}

	return ok
}

func (f userForm) age() int {
	age, _ := strconv.Atoi(strings.TrimSpace(f.inputs[fieldAge].Value()))
	return age
}

func (f userForm) newUser() api.NewUser {
	return api.NewUser{
		FirstName: strings.TrimSpace(f.inputs[fieldFirstName].Value()),
		LastName:  strings.TrimSpace(f.inputs[fieldLastName].Value()),
		Age:       f.age(),
		Gender:    genderOptions[f.genderIdx],
	}
}

func (f userForm) patch() api.UserPatch {
	return api.UserPatch{
		FirstName: strings.TrimSpace(f.inputs[fieldFirstName].Value()),
		LastName:  strings.TrimSpace(f.inputs[fieldLastName].Value()),
		Age:       f.age(),
		Gender:    genderOptions[f.genderIdx],
	}
}

// update forwards a message to the focused text input.
func (f userForm) update(msg tea.Msg) (userForm, tea.Cmd) {
	if f.focusIdx >= len(f.inputs) {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focusIdx], cmd = f.inputs[f.focusIdx].Update(msg)
	return f, cmd
}

// handleFormKey processes keyboard input for the add/edit user form.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		if m.form.editing {
			m.currentView = m.guard(ViewProfile)
			return m, nil
		}
		cmd := m.navigate(ViewDashboard)
		return m, cmd

	case key.Matches(msg, m.keys.NextField):
		m.form.next()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.PrevField):
		m.form.prev()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()

	case key.Matches(msg, m.keys.Confirm):
		if m.form.focusIdx < fieldCount-1 {
			m.form.next()
			return m, textinput.Blink
		}
		return m.submitForm()
	}

	// The gender selector is not a text input; arrows and space cycle it.
	if m.form.focusIdx == fieldGender {
		switch msg.String() {
		case "left":
			m.form.cycleGender(-1)
			return m, nil
		case "right", " ":
			m.form.cycleGender(1)
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if !m.form.validate() {
		return m, nil
	}
	if m.form.editing {
		return m, m.updateCmd(m.form.editID, m.form.patch())
	}
	return m, m.createCmd(m.form.newUser())
}

// renderUserForm renders the add/edit card.
func (m Model) renderUserForm() string {
	styles := m.theme.Styles()

	title := "Add user"
	if m.form.editing {
		title = "Edit profile"
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n\n")

	labels := [3]string{"First name", "Last name", "Age"}
	for i := range m.form.inputs {
		b.WriteString(styles.Label.Render(labels[i]))
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
		if m.form.errors[i] != "" {
			b.WriteString(styles.FieldError.Render(m.form.errors[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString(styles.Label.Render("Gender"))
	b.WriteString(m.renderGenderSelector(styles))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("ctrl+s submit · tab next field · esc cancel"))

	card := styles.Card.Render(b.String())
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, card)
}

func (m Model) renderGenderSelector(styles Styles) string {
	parts := make([]string, 0, len(genderOptions))
	for i, g := range genderOptions {
		switch {
		case i == m.form.genderIdx && m.form.focusIdx == fieldGender:
			parts = append(parts, styles.Selected.Render(" "+g+" "))
		case i == m.form.genderIdx:
			parts = append(parts, styles.AccentText.Render(g))
		default:
			parts = append(parts, styles.MutedText.Render(g))
		}
	}
	return strings.Join(parts, "  ")
}
