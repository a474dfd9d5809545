package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrek/roster/internal/api"
)

func TestStore_SetCurrentUserAndClearSession(t *testing.T) {
	var s Store

	s.SetCurrentUser(&api.User{ID: 1, Username: "user1"})
	snap := s.Snapshot()
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "user1", snap.CurrentUser.Username)
	assert.True(t, snap.SignedIn())

	s.ClearSession()
	snap = s.Snapshot()
	assert.Nil(t, snap.CurrentUser)
	assert.False(t, snap.SignedIn())
}

func TestStore_SetUsersReplacesWholesale(t *testing.T) {
	var s Store

	s.SetUsers([]api.User{{ID: 1}, {ID: 2}, {ID: 3}})
	s.SetUsers([]api.User{{ID: 9}})

	snap := s.Snapshot()
	require.Len(t, snap.Users, 1)
	assert.Equal(t, 9, snap.Users[0].ID)
}

func TestStore_AppendUserGrowsByOneAtEnd(t *testing.T) {
	var s Store
	s.SetUsers([]api.User{{ID: 1}, {ID: 2}})

	s.AppendUser(api.User{ID: 3, Username: "newuser"})

	snap := s.Snapshot()
	require.Len(t, snap.Users, 3)
	assert.Equal(t, "newuser", snap.Users[2].Username)
}

func TestStore_ReplaceUserByID(t *testing.T) {
	var s Store
	s.SetUsers([]api.User{
		{ID: 1, Username: "user1"},
		{ID: 2, Username: "user2"},
	})

	s.ReplaceUser(api.User{ID: 1, Username: "updatedUser"})

	snap := s.Snapshot()
	require.Len(t, snap.Users, 2)
	assert.Equal(t, "updatedUser", snap.Users[0].Username)
	assert.Equal(t, "user2", snap.Users[1].Username)
}

func TestStore_ReplaceUserIsIdempotent(t *testing.T) {
	var s Store
	s.SetUsers([]api.User{{ID: 1, Username: "user1"}, {ID: 2, Username: "user2"}})

	record := api.User{ID: 1, Username: "updatedUser"}
	s.ReplaceUser(record)
	once := s.Snapshot().Users
	s.ReplaceUser(record)
	twice := s.Snapshot().Users

	assert.Equal(t, once, twice)
}

func TestStore_ReplaceUserUnknownIDIsNoop(t *testing.T) {
	var s Store
	s.SetUsers([]api.User{{ID: 1}, {ID: 2}})

	s.ReplaceUser(api.User{ID: 99, Username: "ghost"})

	snap := s.Snapshot()
	require.Len(t, snap.Users, 2)
	assert.Equal(t, 1, snap.Users[0].ID)
	assert.Equal(t, 2, snap.Users[1].ID)
}

func TestStore_SnapshotIsIndependentCopy(t *testing.T) {
	var s Store
	s.SetUsers([]api.User{{ID: 1}})
	s.SetUserDetail(&api.User{ID: 5})

	snap := s.Snapshot()
	snap.Users[0].ID = 999
	snap.UserDetail.ID = 999

	again := s.Snapshot()
	assert.Equal(t, 1, again.Users[0].ID)
	assert.Equal(t, 5, again.UserDetail.ID)
}
