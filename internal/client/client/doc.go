// Package client contains the HTTP data-access layer of the user directory.
//
// # Overview
//
// The package provides:
//  1. The Client interface: ListUsers, GetUser, GetCurrentUser, CreateUser
//     and UpdateUser against the directory REST backend.
//  2. HTTPClient, a net/http implementation that resolves every path against
//     a configured base URL and asks a TokenSource for the bearer token on
//     each request, so a rotated token is picked up by the next call.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite file the CLI keeps its token in and applies embedded goose
//     migrations.
//
// # Error Handling
//
// Failures are reported with sentinel errors matched through errors.Is:
// ErrNetwork (request not sent or no response), ErrDecode (body is not the
// expected JSON) and ErrUnexpectedStatus for any non-2xx answer. The latter
// is carried by *StatusError, which also matches ErrUnauthorized on 401/403
// and ErrNotFound on 404. The underlying cause stays in the chain, so
// errors.Is(err, context.DeadlineExceeded) works for timed-out calls.
//
// Each call makes exactly one attempt; there are no retries and no built-in
// timeout. Deadlines and cancellation come from the caller's context.
package client
