package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"leafdesk/internal/domain"
)

// refreshWindow is the minimum number of whole minutes between non-forced
// refreshes of the same record.
const refreshWindow = 2

// Profile wraps one cached record and applies the cache/sync rules to it.
// It holds a copy of the record in memory; every completed mutation is
// written back to the store before the operation returns.
type Profile struct {
	deps  Deps
	rec   domain.ProfileRecord
	valid bool
}

// New wraps raw stored data in a Profile. Absent or malformed input yields an
// update-disabled placeholder rather than an error, so callers can wrap
// arbitrary store slots without a prior validity check.
//
// A valid record is registered in the store if its id is not present yet,
// then refreshed once, non-forced; the throttle keeps repeated wrapping from
// hammering the remote service.
func New(ctx context.Context, raw any, deps Deps) *Profile {
	rec, ok := decodeRecord(raw)
	if !ok {
		return &Profile{deps: deps, rec: domain.PlaceholderRecord()}
	}
	return newFromRecord(ctx, rec, deps)
}

func newFromRecord(ctx context.Context, rec domain.ProfileRecord, deps Deps) *Profile {
	p := &Profile{deps: deps, rec: rec, valid: true}

	if _, ok := findSlot(deps.Store, rec.ID); !ok {
		col, isSlice := deps.Store.Get(domain.ProfilesKey).([]any)
		if !isSlice {
			if err := deps.Store.Set(domain.ProfilesKey, []any{}); err != nil {
				deps.log().Warn("init profile collection", "err", err)
			}
		}
		path := fmt.Sprintf("%s.%d", domain.ProfilesKey, len(col))
		if err := deps.Store.Set(path, rec); err != nil {
			deps.log().Warn("register profile", "username", rec.Username, "err", err)
		}
	}

	if _, err := p.Refresh(ctx, false); err != nil {
		deps.log().Warn("refresh on load", "username", rec.Username, "err", err)
	}
	return p
}

// decodeRecord converts a raw store slot into a record. A nil slot, a shape
// that does not decode, or a record without an identity counts as malformed.
func decodeRecord(raw any) (domain.ProfileRecord, bool) {
	if raw == nil {
		return domain.ProfileRecord{}, false
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return domain.ProfileRecord{}, false
	}
	var rec domain.ProfileRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.ProfileRecord{}, false
	}
	if rec.ID == 0 || rec.Username == "" {
		return domain.ProfileRecord{}, false
	}
	return rec, true
}

// Valid reports whether the wrapper holds a real record. Every mutating or
// network-touching operation on an invalid wrapper is a no-op reporting
// failure.
func (p *Profile) Valid() bool { return p.valid }

// Record returns a copy of the in-memory record.
func (p *Profile) Record() domain.ProfileRecord { return p.rec }

func (p *Profile) ID() int64        { return p.rec.ID }
func (p *Profile) Username() string { return p.rec.Username }
func (p *Profile) SignedIn() bool   { return p.rec.SignedIn }

// Token returns the sign-in token, or "" unless the profile is signed in. A
// stale token left behind by an interrupted sign-out is never exposed.
func (p *Profile) Token() string {
	if !p.rec.SignedIn {
		return ""
	}
	return p.rec.Token
}

// Authenticate submits the password for this profile's username and, on
// success, binds the issued token and refreshes the record. A remote-reported
// failure is passed through to the caller; transport failures surface as
// errors.
func (p *Profile) Authenticate(ctx context.Context, password string) (domain.AuthResult, error) {
	if !p.valid {
		return domain.AuthResult{}, nil
	}
	res, err := p.deps.Service.Authenticate(ctx, p.rec.Username, password)
	if err != nil {
		return domain.AuthResult{}, err
	}
	if !res.Success {
		return res, nil
	}

	ok, err := p.SetToken(ctx, res.Token)
	if err != nil {
		return domain.AuthResult{}, err
	}
	if !ok {
		return domain.AuthResult{Message: "token does not belong to this profile"}, nil
	}
	if _, err := p.Refresh(ctx, false); err != nil {
		p.deps.log().Warn("refresh after sign-in", "username", p.rec.Username, "err", err)
	}
	return domain.AuthResult{Success: true, Token: res.Token}, nil
}

// SignOut revokes the cached credential locally. It does not contact the
// remote service.
func (p *Profile) SignOut() bool {
	if !p.valid {
		return false
	}
	p.rec.SignedIn = false
	p.rec.Token = ""
	if err := p.persist(); err != nil {
		p.deps.log().Warn("persist sign-out", "username", p.rec.Username, "err", err)
	}
	return true
}

// SetToken validates token against this record's identity via the remote
// who-am-i endpoint and binds it only on a match. A token issued for a
// different identity leaves the record untouched and reports false. This is
// the sole gate for attaching externally supplied tokens.
func (p *Profile) SetToken(ctx context.Context, token string) (bool, error) {
	if !p.valid {
		return false, nil
	}
	me, err := p.deps.Service.WhoAmI(ctx, token)
	if err != nil {
		return false, err
	}
	if !me.Success || me.ID != p.rec.ID {
		return false, nil
	}
	p.rec.Token = token
	p.rec.SignedIn = true
	if err := p.persist(); err != nil {
		return false, err
	}
	return true, nil
}

// AuthenticatedClient returns a service client carrying this profile's bearer
// token, or nil when there is no signed-in session. Callers must treat nil as
// "not signed in", not retry.
func (p *Profile) AuthenticatedClient() domain.ProfileService {
	if !p.valid || !p.rec.SignedIn {
		return nil
	}
	return p.deps.Service.Authenticated(p.rec.Token)
}

// Refresh syncs the record from the remote service and reports whether it
// was updated. Unless forced, it is a no-op within refreshWindow minutes of
// the last update. The avatar image is only re-fetched when forced or when
// the remote URL changed; an avatar failure is logged and never blocks or
// rolls back the field update.
func (p *Profile) Refresh(ctx context.Context, force bool) (bool, error) {
	if !p.valid {
		return false, nil
	}
	if !force {
		elapsed := p.deps.now().UnixMilli() - p.rec.Updated
		if elapsed/60000 < refreshWindow {
			return false, nil
		}
	}

	remote, err := p.deps.Service.ProfileByUsername(ctx, p.rec.Username)
	if err != nil {
		return false, err
	}
	if !remote.Success {
		return false, nil
	}

	if force || remote.Avatar != p.rec.Avatar {
		p.cacheAvatar(ctx, remote.Avatar)
	}

	p.rec.Updated = p.deps.now().UnixMilli()
	p.rec.DisplayName = remote.Name
	p.rec.URL = remote.URL
	p.rec.Avatar = remote.Avatar
	p.rec.Coin = remote.Coin
	if err := p.persist(); err != nil {
		return false, err
	}
	return true, nil
}

// cacheAvatar downloads rawURL and stores it as {id}.{ext}. Failures leave
// the previously cached path intact.
func (p *Profile) cacheAvatar(ctx context.Context, rawURL string) {
	if rawURL == "" {
		return
	}
	body, err := p.deps.Service.DownloadAvatar(ctx, rawURL)
	if err != nil {
		p.deps.log().Warn("download avatar", "username", p.rec.Username, "err", err)
		return
	}
	defer body.Close()

	name := fmt.Sprintf("%d.%s", p.rec.ID, avatarExt(rawURL))
	rel, err := p.deps.Blobs.WriteAvatar(name, body)
	if err != nil {
		p.deps.log().Warn("cache avatar", "username", p.rec.Username, "err", err)
		return
	}
	p.rec.LocalAvatar = rel
	if err := p.persist(); err != nil {
		p.deps.log().Warn("persist avatar path", "username", p.rec.Username, "err", err)
	}
}

// Delete nulls this record's slot in the store. The slot is not removed so
// indexes held by other wrappers stay stable.
func (p *Profile) Delete() bool {
	if !p.valid {
		return false
	}
	i, ok := findSlot(p.deps.Store, p.rec.ID)
	if !ok {
		return false
	}
	if err := p.deps.Store.Delete(fmt.Sprintf("%s.%d", domain.ProfilesKey, i)); err != nil {
		p.deps.log().Warn("delete profile", "username", p.rec.Username, "err", err)
		return false
	}
	return true
}

// persist writes the in-memory record over its store slot. A record whose
// slot has been deleted underneath us is silently dropped.
func (p *Profile) persist() error {
	i, ok := findSlot(p.deps.Store, p.rec.ID)
	if !ok {
		return nil
	}
	return p.deps.Store.Set(fmt.Sprintf("%s.%d", domain.ProfilesKey, i), p.rec)
}

// findSlot returns the collection index of the record with the given id.
func findSlot(s domain.Store, id int64) (int, bool) {
	col, _ := s.Get(domain.ProfilesKey).([]any)
	for i, slot := range col {
		m, ok := slot.(map[string]any)
		if !ok {
			continue
		}
		if sid, ok := m["id"].(float64); ok && int64(sid) == id {
			return i, true
		}
	}
	return 0, false
}

// avatarExt extracts the file extension from a remote avatar URL.
func avatarExt(rawURL string) string {
	parts := strings.Split(rawURL, ".")
	return parts[len(parts)-1]
}
