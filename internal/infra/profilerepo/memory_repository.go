package profilerepo

import (
	"context"
	"sync"

	"github.com/yanqian/closet-stylist/internal/domain/profile"
)

// MemoryRepository keeps profiles in memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]profile.Profile
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{profiles: make(map[string]profile.Profile)}
}

func (r *MemoryRepository) Get(_ context.Context, userID string) (profile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	return p, ok, nil
}

func (r *MemoryRepository) Upsert(_ context.Context, p profile.Profile) (profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.StylePreferences = append([]string{}, p.StylePreferences...)
	r.profiles[p.UserID] = p
	return p, nil
}

var _ profile.Repository = (*MemoryRepository)(nil)
