// Package session persists the authenticated session across restarts.
// The token pair and the serialized user are stored together in
// ~/.config/roster/session.toml and erased together on logout.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/davrek/roster/internal/api"
)

// Session holds the three persisted fields. User is the session profile
// serialized as JSON, mirroring what the login response returned.
type Session struct {
	Token        string `toml:"token"`
	RefreshToken string `toml:"refresh_token"`
	User         string `toml:"user"`
}

const defaultSessionPath = "~/.config/roster/session.toml"

// DefaultPath returns the default session file path.
func DefaultPath() string {
	return defaultSessionPath
}

// HasToken reports whether an auth token is persisted. Route guards use this
// presence check only; token validity is the server's concern.
func (s Session) HasToken() bool {
	return strings.TrimSpace(s.Token) != ""
}

// DecodeUser parses the serialized session user. Returns false when the
// field is absent or unparseable, leaving the caller unauthenticated.
func (s Session) DecodeUser() (*api.User, bool) {
	if strings.TrimSpace(s.User) == "" {
		return nil, false
	}
	var user api.User
	if err := json.Unmarshal([]byte(s.User), &user); err != nil {
		return nil, false
	}
	return &user, true
}

// New builds a Session from a login response, serializing the profile.
func New(login *api.LoginResponse) Session {
	encoded, err := json.Marshal(login.User)
	if err != nil {
		// api.User contains only plain fields; Marshal cannot fail on it.
		encoded = nil
	}
	return Session{
		Token:        login.Token,
		RefreshToken: login.RefreshToken,
		User:         string(encoded),
	}
}

// Load reads the session from the given path. A missing or unreadable file
// yields an empty session: the user simply is not signed in.
func Load(path string) (Session, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Session{}, nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Session{}, nil
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Session{}, nil
	}

	var sess Session
	if err := toml.Unmarshal(bytes, &sess); err != nil {
		return Session{}, nil
	}
	return sess, nil
}

// Save writes all three session fields, creating directories as needed.
// The file is user-only readable since it carries the auth token.
func Save(path string, s Session) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	bytes, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear erases all persisted session fields by removing the file.
func Clear(path string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultSessionPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
