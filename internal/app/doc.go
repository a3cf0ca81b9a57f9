// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment and builds the concrete store, remote
// service client and blob sink, exposing them via the Wire struct for
// commands to use.
package app
