// Package api contains the single outbound HTTP pipeline of the Storekeeper
// client.
//
// # Overview
//
// The package provides:
//  1. A Client that all backend calls go through. Every request picks up the
//     current bearer token from a TokenSource and a fresh X-Request-Id;
//     every response with status 401 triggers the configured unauthorized
//     handler exactly once before the error is returned to the caller.
//  2. Envelope decoding: backend success payloads are {message, data}; the
//     data part is unmarshalled into the caller's type, the message is
//     returned alongside.
//  3. A typed *Error for backend-rejected requests carrying the HTTP status
//     and the backend message, unwrapping to the sentinels in
//     internal/common so callers can match with errors.Is.
//
// # Failure Semantics
//
// Network failures and non-401 HTTP errors pass through unmodified to the
// caller. There is no retry and no backoff: calls are user-initiated, and a
// silent retry would be surprising.
//
// The unauthorized handler is an explicit constructor dependency, not a
// settable global, so registration order can never matter.
package api
