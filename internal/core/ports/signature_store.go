package ports

import "context"

// SignatureStore is the durable object storage for proof-of-delivery images.
//
// Uploads happen before the delivery transaction begins, since object
// storage cannot participate in it; an upload orphaned by a failed commit is
// an accepted minor leak.
type SignatureStore interface {
	// UploadPNG stores the PNG bytes under key and returns a stable URL.
	UploadPNG(ctx context.Context, key string, data []byte) (string, error)

	// Delete removes a stored object by key.
	Delete(ctx context.Context, key string) error
}
