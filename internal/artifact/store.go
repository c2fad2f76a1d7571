// Package artifact persists uploaded documents behind a storage-agnostic
// interface so the upload workflow can apply the same compensating-delete
// rule over any backend.
package artifact

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Store saves and removes document bytes. Save returns the public location
// recorded on the user row; Delete undoes a Save by key.
type Store interface {
	Save(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewKey returns a date-partitioned object key for an uploaded document.
func NewKey() string {
	d := time.Now()
	return fmt.Sprintf("ideas/%d/%02d/%02d/%s.pdf", d.Year(), d.Month(), d.Day(), uuid.Must(uuid.NewV4()))
}
