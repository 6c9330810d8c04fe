package ports

import (
	"context"
	"io"
)

// FileStore stores opaque bytes under a generated name and returns a stable
// reference string. The core is coupled to nothing else about storage.
type FileStore interface {
	Store(ctx context.Context, filename string, content io.Reader) (string, error)
}
