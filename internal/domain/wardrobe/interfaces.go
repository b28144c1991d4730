package wardrobe

import (
	"context"
	"io"
)

// Repository persists wardrobe items. Every method is scoped to the owner.
type Repository interface {
	Create(ctx context.Context, item Item) (Item, error)
	// List returns the user's items newest first.
	List(ctx context.Context, userID string, filter ItemFilter) ([]Item, error)
	Get(ctx context.Context, userID, id string) (Item, bool, error)
	// GetMany returns the items found, in the order of ids.
	GetMany(ctx context.Context, userID string, ids []string) ([]Item, error)
	SetImage(ctx context.Context, userID, id, key, url, mimeType string) (Item, bool, error)
	Delete(ctx context.Context, userID, id string) (Item, bool, error)
}

// ImageStorage stores item photos as blobs.
type ImageStorage interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredObject, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
