package actions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrek/roster/internal/api"
	"github.com/davrek/roster/internal/session"
	"github.com/davrek/roster/internal/state"
)

type recordingNotifier struct {
	notifications []Notification
}

func (r *recordingNotifier) Notify(n Notification) {
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) last(t *testing.T) Notification {
	t.Helper()
	require.NotEmpty(t, r.notifications, "expected a notification")
	return r.notifications[len(r.notifications)-1]
}

type fixture struct {
	actions     *Actions
	store       *state.Store
	notifier    *recordingNotifier
	sessionPath string

	searchCalls int
	listCalls   int
	listQuery   url.Values
}

func newFixture(t *testing.T, handler func(f *fixture, w http.ResponseWriter, r *http.Request)) *fixture {
	t.Helper()

	f := &fixture{
		store:       &state.Store{},
		notifier:    &recordingNotifier{},
		sessionPath: filepath.Join(t.TempDir(), "session.toml"),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users":
			f.listCalls++
			f.listQuery = r.URL.Query()
		case "/users/search":
			f.searchCalls++
		}
		handler(f, w, r)
	}))
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)

	f.actions = New(client, f.store, f.notifier, f.sessionPath, nil)
	return f
}

func TestLogin_SuccessSetsUserAndPersistsSession(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.LoginResponse{
			User:         api.User{ID: 1, Username: "emilys", FirstName: "Emily"},
			Token:        "tok",
			RefreshToken: "refresh",
		})
	})

	f.actions.Login(context.Background(), api.Credentials{Username: "emilys", Password: "pass"})

	snap := f.store.Snapshot()
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "emilys", snap.CurrentUser.Username)

	persisted, err := session.Load(f.sessionPath)
	require.NoError(t, err)
	assert.Equal(t, "tok", persisted.Token)
	assert.Equal(t, "refresh", persisted.RefreshToken)
	user, ok := persisted.DecodeUser()
	require.True(t, ok)
	assert.Equal(t, 1, user.ID)

	n := f.notifier.last(t)
	assert.Equal(t, "Login Successful!", n.Title)
	assert.Equal(t, "Welcome emilys", n.Text)
	assert.Equal(t, IconSuccess, n.Icon)
	assert.Equal(t, "Ok", n.ConfirmText)
}

func TestLogin_FailureUsesServerMessageAndLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	f.actions.Login(context.Background(), api.Credentials{Username: "wrong", Password: "wrong"})

	assert.Nil(t, f.store.Snapshot().CurrentUser)
	persisted, err := session.Load(f.sessionPath)
	require.NoError(t, err)
	assert.False(t, persisted.HasToken())

	n := f.notifier.last(t)
	assert.Equal(t, "Login Failed!", n.Title)
	assert.Equal(t, "Invalid credentials", n.Text)
	assert.Equal(t, IconError, n.Icon)
}

func TestLogin_FailureWithoutServerMessageUsesFallback(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	f.actions.Login(context.Background(), api.Credentials{Username: "x", Password: "y"})

	n := f.notifier.last(t)
	assert.Equal(t, "An error occurred during login", n.Text)
}

func TestFetchUsers_DefaultSortQueryAndSilentSuccess(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.UserListResponse{Users: []api.User{{ID: 1}, {ID: 2}}})
	})

	f.actions.FetchUsers(context.Background(), "", "")

	assert.Equal(t, "firstName", f.listQuery.Get("sortBy"))
	assert.Equal(t, "asc", f.listQuery.Get("order"))
	assert.Len(t, f.store.Snapshot().Users, 2)
	assert.Empty(t, f.notifier.notifications, "list success is silent")
}

func TestFetchUsers_FailureKeepsPreviousList(t *testing.T) {
	fail := false
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(api.UserListResponse{Users: []api.User{{ID: 1}}})
	})

	f.actions.FetchUsers(context.Background(), "firstName", "asc")
	require.Len(t, f.store.Snapshot().Users, 1)

	fail = true
	f.actions.FetchUsers(context.Background(), "firstName", "asc")

	assert.Len(t, f.store.Snapshot().Users, 1, "failed fetch must not touch the list")
	n := f.notifier.last(t)
	assert.Equal(t, "Error!", n.Title)
	assert.Equal(t, "An error occurred while fetching users", n.Text)
}

func TestSearch_BlankQueryFallsBackToList(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.UserListResponse{Users: []api.User{{ID: 1}}})
	})

	f.actions.Search(context.Background(), "   ", "age", "desc")

	assert.Zero(t, f.searchCalls, "search endpoint must not be hit for blank queries")
	assert.Equal(t, 1, f.listCalls)
	assert.Equal(t, "age", f.listQuery.Get("sortBy"))
	assert.Equal(t, "desc", f.listQuery.Get("order"))
}

func TestSearch_NonBlankQueryHitsSearchEndpoint(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.UserListResponse{Users: []api.User{{ID: 7}}})
	})

	f.actions.Search(context.Background(), "emily", "firstName", "asc")

	assert.Equal(t, 1, f.searchCalls)
	assert.Zero(t, f.listCalls)
	users := f.store.Snapshot().Users
	require.Len(t, users, 1)
	assert.Equal(t, 7, users[0].ID)
}

func TestFetchUserDetail_ReplacesDetailWholesale(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/5", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.User{ID: 5, Username: "five"})
	})

	f.store.SetUserDetail(&api.User{ID: 99})
	f.actions.FetchUserDetail(context.Background(), 5)

	detail := f.store.Snapshot().UserDetail
	require.NotNil(t, detail)
	assert.Equal(t, 5, detail.ID)
	assert.Empty(t, f.notifier.notifications)
}

func TestCreateUser_AppendsAndNotifies(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/add", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.User{ID: 101, FirstName: "Ada", LastName: "Lovelace"})
	})

	f.store.SetUsers([]api.User{{ID: 1}})
	f.actions.CreateUser(context.Background(), api.NewUser{FirstName: "Ada", LastName: "Lovelace", Age: 36, Gender: "female"})

	users := f.store.Snapshot().Users
	require.Len(t, users, 2)
	assert.Equal(t, 101, users[1].ID)

	n := f.notifier.last(t)
	assert.Equal(t, "User Added Successfully!", n.Title)
	assert.Equal(t, "User Ada Lovelace has been added.", n.Text)
	assert.Equal(t, IconSuccess, n.Icon)
}

func TestCreateUser_FailureLeavesListUnchanged(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"age out of range"}`))
	})

	f.store.SetUsers([]api.User{{ID: 1}})
	f.actions.CreateUser(context.Background(), api.NewUser{})

	assert.Len(t, f.store.Snapshot().Users, 1)
	n := f.notifier.last(t)
	assert.Equal(t, "age out of range", n.Text)
}

func TestUpdateUser_ReplacesMatchingEntryAndNotifies(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/1", r.URL.Path)
		require.Equal(t, http.MethodPut, r.Method)
		_ = json.NewEncoder(w).Encode(api.User{ID: 1, FirstName: "Up", LastName: "Dated", Username: "updatedUser"})
	})

	f.store.SetUsers([]api.User{
		{ID: 1, Username: "user1"},
		{ID: 2, Username: "user2"},
	})
	f.actions.UpdateUser(context.Background(), 1, api.UserPatch{FirstName: "Up"})

	users := f.store.Snapshot().Users
	require.Len(t, users, 2)
	assert.Equal(t, "updatedUser", users[0].Username)
	assert.Equal(t, "user2", users[1].Username)

	n := f.notifier.last(t)
	assert.Equal(t, "User Updated Successfully!", n.Title)
	assert.Equal(t, "User Up Dated has been updated.", n.Text)
}

func TestLogout_ClearsStoreAndPersistedFields(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {})

	require.NoError(t, session.Save(f.sessionPath, session.Session{
		Token: "tok", RefreshToken: "refresh", User: `{"id":1}`,
	}))
	f.store.SetCurrentUser(&api.User{ID: 1})

	f.actions.Logout()

	assert.Nil(t, f.store.Snapshot().CurrentUser)
	persisted, err := session.Load(f.sessionPath)
	require.NoError(t, err)
	assert.False(t, persisted.HasToken())
	assert.Empty(t, persisted.RefreshToken)
	assert.Empty(t, persisted.User)
	assert.Empty(t, f.notifier.notifications)
}
