// Package app provides the orchestration layer for the roster application.
//
// # Overview
//
// This package wires together configuration, preferences, the API client,
// the state store, session bootstrap, and the UI. It is the composition root
// where all dependencies are initialized and connected; every collaborator
// is constructor-injected and no package keeps ambient singletons.
//
// # Startup Sequence
//
//  1. Load roster configuration from ~/.config/roster/config.toml
//  2. Load user preferences (theme, last sort settings)
//  3. Open the file-backed logger under the configured log directory
//  4. Initialize the HTTP client for the directory API
//  5. Bootstrap the session: read the persisted token pair and serialized
//     user once, seeding the store's current user when parseable
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Error Handling
//
// Fatal errors (returned from Run): unparseable config, API client
// initialization failure. Recoverable degradations: unreadable preferences
// fall back to defaults, logger setup failure falls back to a no-op logger,
// and a missing or corrupt session file simply starts the app signed out.
package app
