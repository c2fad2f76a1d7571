package artifact

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore keeps documents under a local directory. Locations are served
// as /uploads/<key> by whatever fronts the directory.
type DiskStore struct {
	dir string
}

// NewDiskStore constructs a disk-backed store rooted at dir.
func NewDiskStore(dir string) *DiskStore { return &DiskStore{dir: dir} }

func (d *DiskStore) path(key string) string {
	return filepath.Join(d.dir, filepath.FromSlash(key))
}

// Save writes the document to disk and returns its serving location.
func (d *DiskStore) Save(_ context.Context, key, _ string, r io.Reader, _ int64) (string, error) {
	p := d.path(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(p)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(p)
		return "", fmt.Errorf("close file: %w", err)
	}
	return "/uploads/" + key, nil
}

// Delete removes the stored document.
func (d *DiskStore) Delete(_ context.Context, key string) error {
	return os.Remove(d.path(key))
}
