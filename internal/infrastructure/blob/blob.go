package blob

import (
	"context"
	"io"
)

// Store persists uploaded media and returns the public path clients
// use to fetch it back.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
