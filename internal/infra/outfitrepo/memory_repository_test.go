package outfitrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/closet-stylist/internal/domain/outfit"
)

func TestMemoryRepositoryDeleteDropsShares(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	_, err := repo.Create(ctx, outfit.Outfit{ID: "o1", UserID: "u1", ItemIDs: []string{"a", "b"}, CreatedAt: time.Now()})
	require.NoError(t, err)
	_, err = repo.CreateShare(ctx, outfit.Share{Token: "t1", OutfitID: "o1", UserID: "u1"})
	require.NoError(t, err)

	o, ok, err := repo.SharedOutfit(ctx, "t1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "o1", o.ID)

	deleted, err := repo.Delete(ctx, "u2", "o1")
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = repo.Delete(ctx, "u1", "o1")
	require.NoError(t, err)
	require.True(t, deleted)

	_, ok, err = repo.SharedOutfit(ctx, "t1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryRepositoryListFilters(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	for _, o := range []outfit.Outfit{
		{ID: "o1", UserID: "u1", Occasion: "casual"},
		{ID: "o2", UserID: "u1", Occasion: "formal"},
		{ID: "o3", UserID: "u1", Occasion: "casual"},
		{ID: "o4", UserID: "u2", Occasion: "casual"},
	} {
		_, err := repo.Create(ctx, o)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, "u1", outfit.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "o3", all[0].ID)

	casual, err := repo.List(ctx, "u1", outfit.ListFilter{Occasion: "casual"})
	require.NoError(t, err)
	require.Len(t, casual, 2)
	require.Equal(t, []string{"o3", "o1"}, []string{casual[0].ID, casual[1].ID})
}
