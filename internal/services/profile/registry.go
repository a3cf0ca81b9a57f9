package profile

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"leafdesk/internal/domain"
)

var (
	// ErrExists is returned when creating a profile whose username is
	// already cached locally.
	ErrExists = errors.New("profile already exists")
	// ErrUnknownProfile is returned when the remote service does not know
	// the requested profile.
	ErrUnknownProfile = errors.New("profile unknown to the remote service")
)

// Registry enumerates, finds, creates and deletes cached profiles. It is the
// entry point that materialises Profile wrappers; it never mutates a record
// itself.
type Registry struct {
	deps Deps
}

// NewRegistry returns a registry over the given collaborators, creating the
// profile collection in the store if it does not exist yet.
func NewRegistry(deps Deps) (*Registry, error) {
	r := &Registry{deps: deps}
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}
	return r, nil
}

// ensureInitialized makes sure the store has a profile collection. Safe to
// call repeatedly.
func (r *Registry) ensureInitialized() error {
	if r.deps.Store.Get(domain.ProfilesKey) != nil {
		return nil
	}
	return r.deps.Store.Set(domain.ProfilesKey, []any{})
}

// List wraps every non-null stored record, preserving store order.
func (r *Registry) List(ctx context.Context) []*Profile {
	col, _ := r.deps.Store.Get(domain.ProfilesKey).([]any)
	var out []*Profile
	for _, slot := range col {
		if slot == nil {
			continue
		}
		out = append(out, New(ctx, slot, r.deps))
	}
	return out
}

// Find scans the collection for username and wraps the match.
func (r *Registry) Find(ctx context.Context, username string) (*Profile, bool) {
	slot, ok := r.rawByUsername(username)
	if !ok {
		return nil, false
	}
	return New(ctx, slot, r.deps), true
}

// Exists reports whether a record with username is cached locally,
// independent of the stored shape being valid.
func (r *Registry) Exists(username string) bool {
	_, ok := r.rawByUsername(username)
	return ok
}

// Obtain looks up a profile on the remote service without touching the local
// cache. When byID is set, usernameOrID must be a numeric identity key.
func (r *Registry) Obtain(ctx context.Context, usernameOrID string, byID bool) (domain.RemoteProfile, error) {
	if byID {
		id, err := strconv.ParseInt(usernameOrID, 10, 64)
		if err != nil {
			return domain.RemoteProfile{}, fmt.Errorf("obtain by id: %w", err)
		}
		return r.deps.Service.ProfileByID(ctx, id)
	}
	return r.deps.Service.ProfileByUsername(ctx, usernameOrID)
}

// RefreshResult is the outcome of one profile's refresh within a batch.
type RefreshResult struct {
	Username  string
	Refreshed bool
	Err       error
}

// RefreshAll refreshes every listed profile sequentially, one completing
// before the next begins, and reports a per-profile outcome. Individual
// failures never abort the batch.
func (r *Registry) RefreshAll(ctx context.Context, force bool) []RefreshResult {
	var out []RefreshResult
	for _, p := range r.List(ctx) {
		ok, err := p.Refresh(ctx, force)
		out = append(out, RefreshResult{Username: p.Username(), Refreshed: ok, Err: err})
	}
	return out
}

// Create caches a new profile for username. It fails with ErrExists when the
// username is already cached, and with ErrUnknownProfile when the remote
// service refuses the lookup. The new record starts signed out with
// Updated=0, so the first wrap performs a real refresh (which also caches
// the avatar image).
func (r *Registry) Create(ctx context.Context, username string) (*Profile, error) {
	if r.Exists(username) {
		return nil, ErrExists
	}
	remote, err := r.deps.Service.ProfileByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !remote.Success {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, username)
	}

	rec := domain.ProfileRecord{
		ID:          remote.ID,
		Username:    remote.Username,
		DisplayName: remote.Name,
		URL:         remote.URL,
		Coin:        remote.Coin,
	}
	return newFromRecord(ctx, rec, r.deps), nil
}

// Delete removes the record for username from the store. Unknown usernames
// are a no-op; the store is not touched.
func (r *Registry) Delete(ctx context.Context, username string) bool {
	p, ok := r.Find(ctx, username)
	if !ok {
		return false
	}
	return p.Delete()
}

func (r *Registry) rawByUsername(username string) (any, bool) {
	col, _ := r.deps.Store.Get(domain.ProfilesKey).([]any)
	for _, slot := range col {
		m, ok := slot.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := m["username"].(string); ok && name == username {
			return slot, true
		}
	}
	return nil, false
}
