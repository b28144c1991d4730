package outfitrepo

import (
	"context"
	"sync"

	"github.com/yanqian/closet-stylist/internal/domain/outfit"
)

// MemoryRepository keeps outfits and share tokens in memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	outfits map[string]outfit.Outfit
	order   []string
	shares  map[string]outfit.Share
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		outfits: make(map[string]outfit.Outfit),
		shares:  make(map[string]outfit.Share),
	}
}

func (r *MemoryRepository) Create(_ context.Context, o outfit.Outfit) (outfit.Outfit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ItemIDs = append([]string(nil), o.ItemIDs...)
	r.outfits[o.ID] = o
	r.order = append(r.order, o.ID)
	return o, nil
}

func (r *MemoryRepository) List(_ context.Context, userID string, filter outfit.ListFilter) ([]outfit.Outfit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]outfit.Outfit, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		o := r.outfits[r.order[i]]
		if o.UserID != userID {
			continue
		}
		if filter.Occasion != "" && o.Occasion != filter.Occasion {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, userID, id string) (outfit.Outfit, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.outfits[id]
	if !ok || o.UserID != userID {
		return outfit.Outfit{}, false, nil
	}
	return o, true, nil
}

func (r *MemoryRepository) SetFavorite(_ context.Context, userID, id string, favorite bool) (outfit.Outfit, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.outfits[id]
	if !ok || o.UserID != userID {
		return outfit.Outfit{}, false, nil
	}
	o.IsFavorite = favorite
	r.outfits[id] = o
	return o, true, nil
}

func (r *MemoryRepository) Delete(_ context.Context, userID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.outfits[id]
	if !ok || o.UserID != userID {
		return false, nil
	}
	delete(r.outfits, id)
	for i, candidate := range r.order {
		if candidate == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	for token, share := range r.shares {
		if share.OutfitID == id {
			delete(r.shares, token)
		}
	}
	return true, nil
}

func (r *MemoryRepository) CreateShare(_ context.Context, share outfit.Share) (outfit.Share, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shares[share.Token] = share
	return share, nil
}

func (r *MemoryRepository) SharedOutfit(_ context.Context, token string) (outfit.Outfit, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	share, ok := r.shares[token]
	if !ok {
		return outfit.Outfit{}, false, nil
	}
	o, ok := r.outfits[share.OutfitID]
	return o, ok, nil
}

var _ outfit.Repository = (*MemoryRepository)(nil)
