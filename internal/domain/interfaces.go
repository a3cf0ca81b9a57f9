package domain

import (
	"context"
	"io"
)

// Store is a durable key-value document keyed by dotted paths, e.g.
// "userprofiles.3". Numeric segments index into arrays. Implementations must
// serialize writes; the document is a single shared file, not a per-record
// transactional store.
type Store interface {
	// Get returns the decoded JSON value at path, or nil if absent.
	Get(path string) any
	// Set writes value at path. Setting an array index equal to the array
	// length appends.
	Set(path string, value any) error
	// Delete removes the value at path. Deleting an array slot nulls it
	// instead of shifting later elements.
	Delete(path string) error
}

// ProfileService is the remote profile/authentication service.
type ProfileService interface {
	// ProfileByUsername looks up public profile data. Works regardless of
	// authentication status.
	ProfileByUsername(ctx context.Context, username string) (RemoteProfile, error)
	// ProfileByID looks up public profile data by remote identity key.
	ProfileByID(ctx context.Context, id int64) (RemoteProfile, error)
	// Authenticate exchanges credentials for a sign-in token.
	Authenticate(ctx context.Context, username, password string) (AuthResult, error)
	// WhoAmI reports the identity a bearer token belongs to.
	WhoAmI(ctx context.Context, token string) (WhoAmI, error)
	// DownloadAvatar fetches raw avatar image bytes from url. The caller
	// must close the returned reader.
	DownloadAvatar(ctx context.Context, url string) (io.ReadCloser, error)
	// Authenticated returns a derived service that presents token as a
	// bearer credential on every request.
	Authenticated(token string) ProfileService
}

// BlobSink writes downloaded binary assets under the local asset directory.
type BlobSink interface {
	// WriteAvatar streams r to a file named name and returns the relative
	// path to record on the profile. A failed write must leave no partial
	// file behind.
	WriteAvatar(name string, r io.Reader) (string, error)
}
