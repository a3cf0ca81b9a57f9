package profile_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"leafdesk/internal/assets"
	"leafdesk/internal/domain"
	"leafdesk/internal/services/profile"
	"leafdesk/internal/store"
)

// fakeService is an in-memory stand-in for the remote profile service.
type fakeService struct {
	profiles map[string]domain.RemoteProfile
	tokens   map[string]int64  // token -> identity it belongs to
	avatars  map[string][]byte // avatar URL -> image bytes

	auth    domain.AuthResult
	authErr error

	lookups   int
	downloads int
	// refuseAfter, when > 0, makes profile lookups report remote failure
	// once that many lookups have been served.
	refuseAfter int
}

func (f *fakeService) ProfileByUsername(_ context.Context, username string) (domain.RemoteProfile, error) {
	f.lookups++
	if f.refuseAfter > 0 && f.lookups > f.refuseAfter {
		return domain.RemoteProfile{}, nil
	}
	p, ok := f.profiles[username]
	if !ok {
		return domain.RemoteProfile{}, nil
	}
	return p, nil
}

func (f *fakeService) ProfileByID(ctx context.Context, id int64) (domain.RemoteProfile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			f.lookups++
			return p, nil
		}
	}
	f.lookups++
	return domain.RemoteProfile{}, nil
}

func (f *fakeService) Authenticate(context.Context, string, string) (domain.AuthResult, error) {
	return f.auth, f.authErr
}

func (f *fakeService) WhoAmI(_ context.Context, token string) (domain.WhoAmI, error) {
	id, ok := f.tokens[token]
	if !ok {
		return domain.WhoAmI{}, nil
	}
	return domain.WhoAmI{Success: true, ID: id}, nil
}

func (f *fakeService) DownloadAvatar(_ context.Context, url string) (io.ReadCloser, error) {
	f.downloads++
	b, ok := f.avatars[url]
	if !ok {
		return nil, fmt.Errorf("no such avatar: %s", url)
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (f *fakeService) Authenticated(string) domain.ProfileService { return f }

// testDeps builds Deps over a real on-disk store and blob sink, a fake remote
// service, and a fixed clock.
func testDeps(t *testing.T, svc domain.ProfileService, now time.Time) (profile.Deps, *store.Document) {
	t.Helper()
	doc, err := store.Open(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return profile.Deps{
		Store:   doc,
		Service: svc,
		Blobs:   assets.NewDir(t.TempDir()),
		Now:     func() time.Time { return now },
		Log:     slog.New(slog.DiscardHandler),
	}, doc
}

// seedRecord writes rec into the store collection without going through a
// wrapper, mimicking pre-existing on-disk state.
func seedRecord(t *testing.T, doc *store.Document, rec domain.ProfileRecord) {
	t.Helper()
	col, _ := doc.Get(domain.ProfilesKey).([]any)
	if col == nil {
		if err := doc.Set(domain.ProfilesKey, []any{}); err != nil {
			t.Fatalf("init collection: %v", err)
		}
	}
	path := fmt.Sprintf("%s.%d", domain.ProfilesKey, len(col))
	if err := doc.Set(path, rec); err != nil {
		t.Fatalf("seed record: %v", err)
	}
}

// storedRecord decodes the record at collection index i.
func storedRecord(t *testing.T, doc *store.Document, i int) domain.ProfileRecord {
	t.Helper()
	raw := doc.Get(fmt.Sprintf("%s.%d", domain.ProfilesKey, i))
	if raw == nil {
		t.Fatalf("no record at index %d", i)
	}
	m, ok := raw.(map[string]any)
	if !ok {
		t.Fatalf("record at index %d is %T", i, raw)
	}
	rec := domain.ProfileRecord{}
	if v, ok := m["id"].(float64); ok {
		rec.ID = int64(v)
	}
	if v, ok := m["username"].(string); ok {
		rec.Username = v
	}
	if v, ok := m["token"].(string); ok {
		rec.Token = v
	}
	if v, ok := m["signedin"].(bool); ok {
		rec.SignedIn = v
	}
	if v, ok := m["updated"].(float64); ok {
		rec.Updated = int64(v)
	}
	if v, ok := m["displayname"].(string); ok {
		rec.DisplayName = v
	}
	if v, ok := m["localAvatar"].(string); ok {
		rec.LocalAvatar = v
	}
	return rec
}
