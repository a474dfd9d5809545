// Package ui provides the terminal user interface for the roster application.
//
// # Architecture Overview
//
// The UI package implements a TUI (Terminal User Interface) using the Bubble
// Tea framework with Lip Gloss styling. The interface signs an operator in
// against the user directory API, then lets them browse, search, sort, add,
// and edit user records.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Root model, view routing, command dispatch, and the main Run function
//   - input_handlers.go: Keyboard dispatch for the list and global bindings
//   - login.go: Credential form and the login view
//   - dashboard.go: User table rendering with scrolling and search box
//   - detail.go: User detail and profile cards
//   - form.go: Shared add/edit user form with field validation
//   - header.go: Status bar and per-view command hints
//   - modal.go: Notification dialogs
//   - help.go: Keyboard shortcut overlay
//   - theme.go: Color themes and pre-built styles
//
// # View Types
//
// Five views are available:
//
//   - Login: Username/password form, shown whenever no session token exists
//   - Dashboard: Sortable, searchable table of all users
//   - Detail: Full record for the selected user
//   - Profile: The signed-in user's own record
//   - User Form: Add a new user, or edit the signed-in profile
//
// # Event Flow
//
//  1. Run() builds the model and starts the Bubble Tea program
//  2. Remote operations run as commands on background goroutines through
//     the actions package
//  3. Each completed operation emits an opDoneMsg; the update loop takes a
//     fresh store snapshot and drains any pending notifications
//  4. Notifications display as modal dialogs, one at a time
//
// # Route Guarding
//
// Navigation to any authenticated view checks for a persisted session
// token and falls back to the login view when none exists. The login view
// redirects to the dashboard when a token is already present. These are
// presence checks only; an expired token surfaces as an API error on the
// next request.
//
// # External Dependencies
//
//   - api: Directory client for all remote operations
//   - state.Store: In-memory user data shared with the actions layer
//   - actions: Remote operations with store updates and notifications
//   - prefs: Persisted theme and sort preferences
//   - session: Persisted login token used by the route guards
//
// # Key Bindings
//
//   - d: Dashboard view
//   - p: Profile view
//   - a: Add user form
//   - /: Search users
//   - s: Cycle sort column
//   - o: Flip sort order
//   - enter: Open details / submit form
//   - T: Cycle theme
//   - L: Logout
//   - h or ?: Help overlay
//   - ESC: Return to dashboard
//   - e or Ctrl+C: Exit
package ui
