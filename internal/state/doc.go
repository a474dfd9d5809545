// Package state provides the in-memory state container for the console.
//
// # Overview
//
// The Store holds the three pieces of client-side state: the signed-in user,
// the cached user list, and the currently viewed user detail. Remote-sync
// operations mutate it from their completion handlers; the UI reads it via
// Snapshot.
//
// # Update Semantics
//
// Every mutation is named, synchronous, and free of I/O. List and detail are
// replaced wholesale on each successful fetch; the only in-place splices are
// AppendUser after a create and ReplaceUser after an update, both keyed by
// the server-assigned id. ReplaceUser is idempotent and a no-op when the id
// is absent. Inputs are assumed well-formed; there are no error returns.
//
// # Concurrency Model
//
// A readers-writer lock guards the fields. Operations complete on Bubble Tea
// command goroutines, so writes can race when the user fires two submissions
// quickly; the lock serializes them but ordering stays last-writer-wins.
// There is no request de-duplication or cancellation above this layer.
//
// # Defensive Copying
//
// Snapshot returns cloned slices and records so the UI can never mutate
// stored state, and mutations clone their inputs for the same reason.
package state
