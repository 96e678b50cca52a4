package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *Document) error
	ListByApplication(ctx context.Context, applicationID uint64) ([]Document, error)
	DeleteByApplication(ctx context.Context, applicationID uint64) error
}

// Store is the external object store holding the uploaded files themselves.
// The core persists only the object key it returns.
type Store interface {
	Put(ctx context.Context, filename, contentType string, data []byte) (objectKey string, err error)
	Remove(ctx context.Context, objectKey string) error
}
