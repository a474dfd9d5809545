// Package api provides an HTTP client for the user directory API.
//
// # Overview
//
// The package defines the API client roster uses to authenticate and to read
// and write user records. It handles HTTP communication, JSON serialization,
// and type-safe representation of user records and response envelopes.
//
// # Endpoints
//
//   - POST /auth/login: authenticate, returns profile plus token pair
//   - GET /users?sortBy=&order=: server-sorted user list
//   - GET /users/search?q=: user list matching a query
//   - GET /users/<id>: single user record
//   - POST /users/add: create a record, server assigns the id
//   - PUT /users/<id>: partial update of a record
//
// List and search share the {users: [...]} envelope; the remaining endpoints
// return the record directly.
//
// # Request Handling
//
// All requests use context for cancellation, set Accept and User-Agent
// headers, carry a 10-second timeout, and return wrapped errors describing
// what failed.
//
// # Error Handling
//
// Responses with a 4xx/5xx status produce an *Error carrying the status code
// and, when the body is a JSON object with a "message" field, the server's
// message. ServerMessage unwraps that message from any error chain so callers
// can show it to the user, falling back to a fixed string for transport and
// decode failures. The client makes no distinction between transient and
// permanent failures and never retries.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use; the underlying http.Client
// handles connection pooling internally.
package api
