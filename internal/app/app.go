package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/davrek/roster/internal/api"
	"github.com/davrek/roster/internal/config"
	"github.com/davrek/roster/internal/prefs"
	"github.com/davrek/roster/internal/session"
	"github.com/davrek/roster/internal/state"
	"github.com/davrek/roster/internal/ui"
)

// Options configure the roster application.
type Options struct {
	ConfigPath  string // empty uses default ~/.config/roster/config.toml
	PrefsPath   string // empty uses default ~/.config/roster/prefs.toml
	SessionPath string // empty uses default ~/.config/roster/session.toml
}

// Run boots the roster TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		userPrefs = prefs.Default()
	}

	logger := newLogger(cfg.ClientLogPath())
	defer func() { _ = logger.Sync() }()

	client, err := api.NewClient(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}

	// Session bootstrap: one read at startup seeds the store, so views never
	// repeat the check. Missing or unparseable data leaves the user signed out.
	sess, err := session.Load(opts.SessionPath)
	if err == nil && sess.HasToken() {
		if user, ok := sess.DecodeUser(); ok {
			store.SetCurrentUser(user)
		}
	}

	logger.Info("starting roster",
		zap.String("base_url", cfg.BaseURL),
		zap.Bool("session_present", sess.HasToken()))

	uiOpts := ui.Options{
		Context:     ctx,
		Client:      client,
		Store:       store,
		Prefs:       userPrefs,
		PrefsPath:   opts.PrefsPath,
		SessionPath: opts.SessionPath,
		Logger:      logger,
	}
	return ui.Run(uiOpts)
}

// newLogger builds a file-backed logger. The TUI owns the terminal, so
// nothing may write to stdout/stderr while it runs; on any setup failure the
// logger degrades to a no-op.
func newLogger(path string) *zap.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
