// Package store provides file-based persistence for leafdesk's cached data.
//
// It implements the domain.Store contract: a single JSON document addressed
// by dotted paths ("userprofiles.3"), serialised to disk on every write. All
// methods are concurrency-safe via internal locking; writes go through a temp
// file and rename so a crash never leaves a truncated document behind.
package store
