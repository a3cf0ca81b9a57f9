package assets

import (
	"io"
	"os"
	"path/filepath"

	"leafdesk/internal/domain"
)

// avatarSubdir is the relative location of cached avatar images; the relative
// path recorded on the profile starts here.
const avatarSubdir = "img/profile"

// Dir writes blobs under a root asset directory.
type Dir struct {
	root string
}

// NewDir returns a sink rooted at root. Directories are created lazily on
// first write.
func NewDir(root string) *Dir { return &Dir{root: root} }

// WriteAvatar streams r to img/profile/<name> and returns that relative path.
// The bytes go through a temp file and rename, so a failed download never
// clobbers a previously cached image.
func (d *Dir) WriteAvatar(name string, r io.Reader) (string, error) {
	dir := filepath.Join(d.root, avatarSubdir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	target := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, name+".*")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return avatarSubdir + "/" + name, nil
}

var _ domain.BlobSink = (*Dir)(nil)
