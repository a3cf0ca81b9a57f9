// Package leafal provides an HTTP implementation of the domain.ProfileService
// interface used by leafdesk.
//
// The remote service speaks form-encoded requests and JSON responses. Every
// request carries the Client-Id header identifying this installation;
// authenticated requests additionally carry an Authorization bearer token.
//
// Supported operations include:
//   - Looking up public profile data by username or id.
//   - Exchanging credentials for a sign-in token.
//   - Resolving the identity a bearer token belongs to.
//   - Downloading avatar image bytes.
//
// All requests accept a context for cancellation and deadlines, and the
// underlying http.Client carries the configured timeout. Non-2xx statuses are
// returned as errors with the path and status text to aid diagnostics.
package leafal
