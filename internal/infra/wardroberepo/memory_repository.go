package wardroberepo

import (
	"context"
	"sync"

	"github.com/yanqian/closet-stylist/internal/domain/wardrobe"
)

// MemoryRepository provides an in-memory item store for tests/dev.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  map[string]wardrobe.Item
	byUser map[string][]string
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items:  make(map[string]wardrobe.Item),
		byUser: make(map[string][]string),
	}
}

// Create stores the item.
func (r *MemoryRepository) Create(_ context.Context, item wardrobe.Item) (wardrobe.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.StyleTags = append([]string(nil), item.StyleTags...)
	r.items[item.ID] = item
	r.byUser[item.UserID] = append(r.byUser[item.UserID], item.ID)
	return item, nil
}

// List returns the user's items, newest first.
func (r *MemoryRepository) List(_ context.Context, userID string, filter wardrobe.ItemFilter) ([]wardrobe.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byUser[userID]
	out := make([]wardrobe.Item, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		item := r.items[ids[i]]
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// Get fetches one item owned by the user.
func (r *MemoryRepository) Get(_ context.Context, userID, id string) (wardrobe.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return wardrobe.Item{}, false, nil
	}
	return item, true, nil
}

// GetMany fetches the user's items in the order of ids, skipping unknown ids.
func (r *MemoryRepository) GetMany(_ context.Context, userID string, ids []string) ([]wardrobe.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]wardrobe.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.items[id]; ok && item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

// SetImage records the stored photo for an item.
func (r *MemoryRepository) SetImage(_ context.Context, userID, id, key, url, mimeType string) (wardrobe.Item, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return wardrobe.Item{}, false, nil
	}
	item.ImageKey = key
	item.ImageURL = url
	item.ImageType = mimeType
	r.items[id] = item
	return item, true, nil
}

// Delete removes the item and returns what was stored.
func (r *MemoryRepository) Delete(_ context.Context, userID, id string) (wardrobe.Item, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return wardrobe.Item{}, false, nil
	}
	delete(r.items, id)
	ids := r.byUser[userID]
	for i, candidate := range ids {
		if candidate == id {
			r.byUser[userID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return item, true, nil
}

var _ wardrobe.Repository = (*MemoryRepository)(nil)
