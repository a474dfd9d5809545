package state

import (
	"sync"

	"github.com/davrek/roster/internal/api"
)

// Snapshot represents the store contents at a point in time. Slices and
// records are defensive copies, safe to hand to the UI.
type Snapshot struct {
	CurrentUser *api.User
	Users       []api.User
	UserDetail  *api.User
}

// SignedIn reports whether a session user is present in the store.
func (s Snapshot) SignedIn() bool {
	return s.CurrentUser != nil
}

// Store is the single in-memory state container. Mutations are named,
// synchronous, and perform no I/O; remote-sync operations call them from
// completion handlers. The zero value is ready to use.
type Store struct {
	mu          sync.RWMutex
	currentUser *api.User
	users       []api.User
	userDetail  *api.User
}

// SetCurrentUser replaces the session user. nil clears it.
func (s *Store) SetCurrentUser(user *api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = cloneUser(user)
}

// SetUsers replaces the cached user list wholesale.
func (s *Store) SetUsers(users []api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = cloneUsers(users)
}

// SetUserDetail replaces the detail cache wholesale. nil clears it.
func (s *Store) SetUserDetail(user *api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userDetail = cloneUser(user)
}

// AppendUser appends a record to the cached list. Used after a create.
func (s *Store) AppendUser(user api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
}

// ReplaceUser replaces the first list entry whose id matches the payload.
// When no entry matches this is a no-op. Applying the same record twice
// yields the same list as applying it once.
func (s *Store) ReplaceUser(user api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = user
			return
		}
	}
}

// ClearSession drops the session user. Persisted session fields are erased
// by the session layer; the store only owns in-memory state.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		CurrentUser: cloneUser(s.currentUser),
		Users:       cloneUsers(s.users),
		UserDetail:  cloneUser(s.userDetail),
	}
}

func cloneUser(u *api.User) *api.User {
	if u == nil {
		return nil
	}
	dup := *u
	return &dup
}

func cloneUsers(users []api.User) []api.User {
	if len(users) == 0 {
		return nil
	}
	dup := make([]api.User, len(users))
	copy(dup, users)
	return dup
}
