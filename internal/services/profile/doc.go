// Package profile implements the local profile cache and its registry.
//
// A Profile wraps one cached record: it refreshes the record from the remote
// service under a throttle, caches the avatar image locally, validates and
// binds sign-in tokens, and persists every mutation back to the store. The
// Registry enumerates, finds, creates and deletes records; it never mutates a
// record directly, all mutation funnels through the Profile wrapper.
//
// High-level flow:
//   - Registry loads raw records from the store and wraps each in a Profile.
//   - Wrapping opportunistically refreshes the record, bounded by a 2-minute
//     throttle, so repeatedly materialising profiles stays cheap.
//   - Callers authenticate, refresh and read fields on the Profile; the store
//     always reflects the last completed operation.
//
// A wrapper built over absent or malformed stored data never fails to
// construct: it becomes an update-disabled placeholder on which every
// mutating or network-touching operation is a no-op reporting failure.
package profile
