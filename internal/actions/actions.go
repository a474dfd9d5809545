package actions

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/davrek/roster/internal/api"
	"github.com/davrek/roster/internal/session"
	"github.com/davrek/roster/internal/state"
)

// Fallback failure messages, shown when the server supplies none.
const (
	fallbackLogin  = "An error occurred during login"
	fallbackList   = "An error occurred while fetching users"
	fallbackDetail = "An error occurred while fetching user details"
	fallbackSearch = "An error occurred while searching users"
	fallbackCreate = "An error occurred while adding user"
	fallbackUpdate = "An error occurred while updating user"
	confirmText    = "Ok"
)

// Actions bundles the remote-sync operations: each pairs one API call with a
// store mutation on success and a notification on failure. Failures never
// propagate; the store is left untouched and the user sees a message.
type Actions struct {
	client      api.Directory
	store       *state.Store
	notifier    Notifier
	sessionPath string
	logger      *zap.Logger
}

// New wires the operations to their collaborators. A nil logger is replaced
// with a no-op one.
func New(client api.Directory, store *state.Store, notifier Notifier, sessionPath string, logger *zap.Logger) *Actions {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Actions{
		client:      client,
		store:       store,
		notifier:    notifier,
		sessionPath: sessionPath,
		logger:      logger,
	}
}

// Login authenticates the credentials. On success the session user lands in
// the store and all three session fields are persisted; on failure the prior
// state is untouched.
func (a *Actions) Login(ctx context.Context, creds api.Credentials) {
	resp, err := a.client.Login(ctx, creds)
	if err != nil {
		a.logger.Warn("login failed", zap.String("username", creds.Username), zap.Error(err))
		a.notifier.Notify(Notification{
			Title:       "Login Failed!",
			Text:        api.ServerMessage(err, fallbackLogin),
			Icon:        IconError,
			ConfirmText: confirmText,
		})
		return
	}

	a.store.SetCurrentUser(&resp.User)
	if err := session.Save(a.sessionPath, session.New(resp)); err != nil {
		// The in-memory session is still valid; only persistence failed.
		a.logger.Warn("persist session failed", zap.Error(err))
	}
	a.logger.Info("login succeeded", zap.String("username", resp.Username))
	a.notifier.Notify(Notification{
		Title:       "Login Successful!",
		Text:        fmt.Sprintf("Welcome %s", resp.Username),
		Icon:        IconSuccess,
		ConfirmText: confirmText,
	})
}

// FetchUsers replaces the cached list with a server-sorted one. Success is
// silent; failure surfaces a notification and leaves the list unchanged.
func (a *Actions) FetchUsers(ctx context.Context, sortBy, order string) {
	users, err := a.client.ListUsers(ctx, sortBy, order)
	if err != nil {
		a.logger.Warn("fetch users failed", zap.String("sortBy", sortBy), zap.Error(err))
		a.notifyError(fallbackList, err)
		return
	}
	a.store.SetUsers(users)
}

// FetchUserDetail replaces the detail cache wholesale.
func (a *Actions) FetchUserDetail(ctx context.Context, id int) {
	user, err := a.client.GetUser(ctx, id)
	if err != nil {
		a.logger.Warn("fetch user detail failed", zap.Int("id", id), zap.Error(err))
		a.notifyError(fallbackDetail, err)
		return
	}
	a.store.SetUserDetail(user)
}

// Search routes the query: blank after trimming falls back to FetchUsers with
// the given sort settings, so the search endpoint is never called with an
// empty query.
func (a *Actions) Search(ctx context.Context, query, sortBy, order string) {
	if strings.TrimSpace(query) == "" {
		a.FetchUsers(ctx, sortBy, order)
		return
	}
	a.SearchUsers(ctx, query)
}

// SearchUsers replaces the cached list with the search result.
func (a *Actions) SearchUsers(ctx context.Context, query string) {
	users, err := a.client.SearchUsers(ctx, query)
	if err != nil {
		a.logger.Warn("search users failed", zap.String("query", query), zap.Error(err))
		a.notifyError(fallbackSearch, err)
		return
	}
	a.store.SetUsers(users)
}

// CreateUser submits a new record; on success the server's copy (with its
// assigned id) is appended to the cached list.
func (a *Actions) CreateUser(ctx context.Context, user api.NewUser) {
	created, err := a.client.CreateUser(ctx, user)
	if err != nil {
		a.logger.Warn("create user failed", zap.Error(err))
		a.notifyError(fallbackCreate, err)
		return
	}
	a.store.AppendUser(*created)
	a.logger.Info("user created", zap.Int("id", created.ID))
	a.notifier.Notify(Notification{
		Title:       "User Added Successfully!",
		Text:        fmt.Sprintf("User %s has been added.", created.FullName()),
		Icon:        IconSuccess,
		ConfirmText: confirmText,
	})
}

// UpdateUser submits a partial update; on success the server's copy replaces
// the matching list entry.
func (a *Actions) UpdateUser(ctx context.Context, id int, patch api.UserPatch) {
	updated, err := a.client.UpdateUser(ctx, id, patch)
	if err != nil {
		a.logger.Warn("update user failed", zap.Int("id", id), zap.Error(err))
		a.notifyError(fallbackUpdate, err)
		return
	}
	a.store.ReplaceUser(*updated)
	a.logger.Info("user updated", zap.Int("id", id))
	a.notifier.Notify(Notification{
		Title:       "User Updated Successfully!",
		Text:        fmt.Sprintf("User %s has been updated.", updated.FullName()),
		Icon:        IconSuccess,
		ConfirmText: confirmText,
	})
}

// Logout clears the in-memory session user and erases all persisted session
// fields together. It performs no network call and shows no notification.
func (a *Actions) Logout() {
	a.store.ClearSession()
	if err := session.Clear(a.sessionPath); err != nil {
		a.logger.Warn("clear session failed", zap.Error(err))
	}
	a.logger.Info("logged out")
}

func (a *Actions) notifyError(fallback string, err error) {
	a.notifier.Notify(Notification{
		Title:       "Error!",
		Text:        api.ServerMessage(err, fallback),
		Icon:        IconError,
		ConfirmText: confirmText,
	})
}
