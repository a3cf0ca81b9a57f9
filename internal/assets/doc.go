// Package assets stores downloaded binary assets (avatar images) under the
// local data directory. It implements the domain.BlobSink contract.
package assets
