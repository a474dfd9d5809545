// Package actions implements the remote-sync operations of the console.
//
// # Operation Shape
//
// Every operation follows the same contract: perform one network call; on
// success apply a store mutation (and, for login, persist the session); on
// failure surface a notification using the server-provided message when
// present, else a fixed fallback string, leaving prior state untouched.
// There is no retry, no backoff, and no queuing. Errors never propagate to
// the caller.
//
// # Operations
//
//   - Login: sets the current user, persists token/refreshToken/user
//   - FetchUsers: wholesale list replacement, silent on success
//   - FetchUserDetail: wholesale detail replacement, silent on success
//   - Search/SearchUsers: list replacement; a blank query falls back to
//     FetchUsers with the current sort settings
//   - CreateUser: appends the server's record to the list
//   - UpdateUser: replaces the matching list entry by id
//   - Logout: clears in-memory and persisted session, no network call
//
// # Concurrency
//
// Operations run on Bubble Tea command goroutines. Nothing de-duplicates
// rapid repeated submissions and nothing cancels a superseded request: a
// stale response can overwrite newer state with older data. The store lock
// serializes the writes; ordering is last-writer-wins and the race is
// accepted.
package actions
