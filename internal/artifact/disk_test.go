package artifact

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStore_SaveDeleteRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := NewDiskStore(dir)
	ctx := context.Background()

	key := NewKey()
	body := []byte("%PDF-1.4 fake")

	loc, err := st.Save(ctx, key, "application/pdf", bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if loc != "/uploads/"+key {
		t.Fatalf("location=%q, want /uploads/%s", loc, key)
	}

	got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("stored bytes differ")
	}

	if err := st.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(key))); !os.IsNotExist(err) {
		t.Fatalf("file still present after Delete")
	}
}

func TestNewKey_DatePartitionedAndUnique(t *testing.T) {
	t.Parallel()

	a, b := NewKey(), NewKey()
	if a == b {
		t.Fatalf("two keys are equal: %s", a)
	}
	if !strings.HasPrefix(a, "ideas/") || !strings.HasSuffix(a, ".pdf") {
		t.Fatalf("unexpected key shape: %s", a)
	}
}
