package profile

import (
	"log/slog"
	"time"

	"leafdesk/internal/domain"
)

// Deps bundles the collaborators a Profile or Registry operates through.
type Deps struct {
	Store   domain.Store
	Service domain.ProfileService
	Blobs   domain.BlobSink

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
	// Log receives diagnostics for failures that are deliberately absorbed
	// (decoupled avatar writes, best-effort persists). Defaults to
	// slog.Default.
	Log *slog.Logger
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d Deps) log() *slog.Logger {
	if d.Log != nil {
		return d.Log
	}
	return slog.Default()
}
