package ui

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/davrek/roster/internal/actions"
	"github.com/davrek/roster/internal/api"
	"github.com/davrek/roster/internal/prefs"
	"github.com/davrek/roster/internal/session"
	"github.com/davrek/roster/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewLogin View = iota
	ViewDashboard
	ViewDetail
	ViewProfile
	ViewUserForm
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Client      api.Directory
	Store       *state.Store
	Prefs       prefs.Prefs
	PrefsPath   string
	SessionPath string
	Logger      *zap.Logger
}

// pendingNotifier queues notifications emitted by operations running on
// command goroutines until the update loop drains them into the modal stack.
type pendingNotifier struct {
	mu      sync.Mutex
	pending []actions.Notification
}

func (p *pendingNotifier) Notify(n actions.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = append(p.pending, n)
}

func (p *pendingNotifier) drain() []actions.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.pending
	p.pending = nil
	return out
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	acts        *actions.Actions
	store       *state.Store
	notifier    *pendingNotifier
	sessionPath string
	prefsPath   string

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot state.Snapshot

	// Login state
	login loginForm

	// Dashboard state
	sortBy      string
	order       string
	selectedRow int
	searchInput textinput.Model
	searching   bool
	activeQuery string

	// Detail state
	detailID int

	// User form state (add + edit)
	form userForm

	// Overlays
	modals   []actions.Notification
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sessionPath := opts.SessionPath
	if sessionPath == "" {
		sessionPath = session.DefaultPath()
	}

	notifier := &pendingNotifier{}
	acts := actions.New(opts.Client, opts.Store, notifier, sessionPath, opts.Logger)

	search := textinput.New()
	search.Placeholder = "Search users..."
	search.CharLimit = 64
	search.Width = 32

	m := Model{
		ctx:         ctx,
		acts:        acts,
		store:       opts.Store,
		notifier:    notifier,
		sessionPath: sessionPath,
		prefsPath:   prefsPath,
		theme:       GetTheme(opts.Prefs.Theme),
		keys:        DefaultKeyMap(),
		sortBy:      opts.Prefs.SortBy,
		order:       opts.Prefs.Order,
		searchInput: search,
		login:       newLoginForm(),
		snapshot:    opts.Store.Snapshot(),
	}
	// Route guard at startup: a persisted token lands on the dashboard,
	// everything else lands on login.
	m.currentView = m.guard(ViewDashboard)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		textinput.Blink,
	}
	if m.currentView == ViewDashboard {
		cmds = append(cmds, m.fetchUsersCmd())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case opDoneMsg:
		return m.handleOpDone(msg)
	}

	// Cursor blink and other component messages go to whichever input
	// currently has focus.
	return m.updateFocusedInput(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if len(m.modals) > 0 {
		return m.renderModal(m.modals[0])
	}

	return m.renderMain()
}

// renderMain renders the header, command bar, and active view.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())

	return b.String()
}

func (m Model) renderContent() string {
	switch m.currentView {
	case ViewLogin:
		return m.renderLogin()
	case ViewDashboard:
		return m.renderDashboard()
	case ViewDetail:
		return m.renderDetail()
	case ViewProfile:
		return m.renderProfile()
	case ViewUserForm:
		return m.renderUserForm()
	default:
		return ""
	}
}

// guard applies the route guards: authenticated views require a persisted
// token, and the login view redirects away when one is present. These are
// presence checks only; token validity is the server's concern.
func (m Model) guard(v View) View {
	sess, err := session.Load(m.sessionPath)
	hasToken := err == nil && sess.HasToken()

	if v == ViewLogin {
		if hasToken {
			return ViewDashboard
		}
		return ViewLogin
	}
	if !hasToken {
		return ViewLogin
	}
	return v
}

// navigate switches to the guarded view and returns the command that loads
// its data. Each view refetches on entry rather than trusting stale state.
func (m *Model) navigate(v View) tea.Cmd {
	v = m.guard(v)
	m.currentView = v

	switch v {
	case ViewLogin:
		m.login = newLoginForm()
		return m.login.focusCmd()
	case ViewDashboard:
		return m.fetchUsersCmd()
	case ViewUserForm:
		m.form = newAddUserForm()
		return m.form.focusCmd()
	}
	return nil
}

// openDetail switches to the detail view and fetches the record.
func (m *Model) openDetail(id int) tea.Cmd {
	if v := m.guard(ViewDetail); v != ViewDetail {
		m.currentView = v
		return nil
	}
	m.currentView = ViewDetail
	m.detailID = id
	return m.detailCmd(id)
}

// openEditProfile jumps to the user form pre-filled from a detail fetch.
func (m *Model) openEditProfile() tea.Cmd {
	current := m.snapshot.CurrentUser
	if current == nil || current.ID <= 0 {
		return nil
	}
	if v := m.guard(ViewUserForm); v != ViewUserForm {
		m.currentView = v
		return nil
	}
	m.currentView = ViewUserForm
	m.form = newEditUserForm(current.ID)
	return tea.Batch(m.form.focusCmd(), m.detailCmd(current.ID))
}

// Messages

type opKind int

const (
	opLogin opKind = iota
	opList
	opSearch
	opDetail
	opCreate
	opUpdate
)

type opDoneMsg struct {
	kind opKind
}

// Commands

func (m Model) loginCmd(creds api.Credentials) tea.Cmd {
	return func() tea.Msg {
		m.acts.Login(m.ctx, creds)
		return opDoneMsg{kind: opLogin}
	}
}

func (m Model) fetchUsersCmd() tea.Cmd {
	sortBy, order := m.sortBy, m.order
	return func() tea.Msg {
		m.acts.FetchUsers(m.ctx, sortBy, order)
		return opDoneMsg{kind: opList}
	}
}

func (m Model) searchCmd(query string) tea.Cmd {
	sortBy, order := m.sortBy, m.order
	return func() tea.Msg {
		m.acts.Search(m.ctx, query, sortBy, order)
		return opDoneMsg{kind: opSearch}
	}
}

func (m Model) detailCmd(id int) tea.Cmd {
	return func() tea.Msg {
		m.acts.FetchUserDetail(m.ctx, id)
		return opDoneMsg{kind: opDetail}
	}
}

func (m Model) createCmd(user api.NewUser) tea.Cmd {
	return func() tea.Msg {
		m.acts.CreateUser(m.ctx, user)
		return opDoneMsg{kind: opCreate}
	}
}

func (m Model) updateCmd(id int, patch api.UserPatch) tea.Cmd {
	return func() tea.Msg {
		m.acts.UpdateUser(m.ctx, id, patch)
		return opDoneMsg{kind: opUpdate}
	}
}

// handleOpDone refreshes the snapshot after an operation and applies any
// follow-up navigation.
func (m Model) handleOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	m.snapshot = m.store.Snapshot()
	m.modals = append(m.modals, m.notifier.drain()...)

	switch msg.kind {
	case opLogin:
		if m.snapshot.SignedIn() {
			m.currentView = ViewDashboard
			m.login = newLoginForm()
			return m, m.fetchUsersCmd()
		}

	case opList, opSearch:
		m.clampSelection()

	case opDetail:
		if m.currentView == ViewUserForm && m.form.editing && !m.form.prefilled {
			if detail := m.snapshot.UserDetail; detail != nil && detail.ID == m.form.editID {
				m.form.prefill(*detail)
			}
		}

	case opCreate:
		// The add form resets after submission regardless of outcome.
		if m.currentView == ViewUserForm && !m.form.editing {
			m.form = newAddUserForm()
			return m, m.form.focusCmd()
		}

	case opUpdate:
		// The edit page always navigates back to the profile on submit.
		if m.currentView == ViewUserForm && m.form.editing {
			m.currentView = m.guard(ViewProfile)
		}
	}

	return m, nil
}

func (m *Model) clampSelection() {
	count := len(m.snapshot.Users)
	if count == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}
