// Package commands defines the leafdesk CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - list     Show every cached profile
//   - add      Cache a profile from the remote service
//   - remove   Delete a cached profile
//   - show     Look up a profile on the remote service
//   - login    Sign a cached profile in
//   - logout   Revoke a cached profile's sign-in token
//   - refresh  Sync cached profiles with the remote service
//
// # Implementation
//
// The root command loads config from the environment and builds the
// dependency graph (store, service client, blob sink, registry) before any
// subcommand runs, so handlers share one app context with timeouts and
// connection pooling.
package commands
