// Package store writes rendered pages to a local directory or an S3 bucket.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNotFound is returned when a page doesn't exist.
var ErrNotFound = errors.New("store: page not found")

// ErrInvalidName is returned for names that are absolute or escape the
// store root.
var ErrInvalidName = errors.New("store: invalid page name")

// ContentType is the content type pages are stored with.
const ContentType = "text/html; charset=utf-8"

// Store is a sink for rendered pages. Names are slash-separated paths
// relative to the store root, such as "index.html" or "ext/abc.html".
type Store interface {
	// Put stores body under name, replacing any previous page.
	Put(ctx context.Context, name string, body []byte) error

	// Get returns the page stored under name, or ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)
}

func checkName(name string) error {
	if name == "" || !filepath.IsLocal(filepath.FromSlash(name)) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
