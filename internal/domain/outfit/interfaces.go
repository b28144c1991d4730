package outfit

import (
	"context"

	"github.com/yanqian/closet-stylist/internal/domain/profile"
	"github.com/yanqian/closet-stylist/internal/domain/wardrobe"
	"github.com/yanqian/closet-stylist/internal/domain/weather"
)

// Repository persists outfits and their share tokens.
type Repository interface {
	Create(ctx context.Context, o Outfit) (Outfit, error)
	// List returns the user's outfits newest first.
	List(ctx context.Context, userID string, filter ListFilter) ([]Outfit, error)
	Get(ctx context.Context, userID, id string) (Outfit, bool, error)
	SetFavorite(ctx context.Context, userID, id string, favorite bool) (Outfit, bool, error)
	// Delete removes the outfit and any shares pointing at it.
	Delete(ctx context.Context, userID, id string) (bool, error)
	CreateShare(ctx context.Context, share Share) (Share, error)
	// SharedOutfit resolves a share token to the outfit it exposes.
	SharedOutfit(ctx context.Context, token string) (Outfit, bool, error)
}

// ItemReader is the slice of the wardrobe store outfits depend on.
type ItemReader interface {
	List(ctx context.Context, userID string, filter wardrobe.ItemFilter) ([]wardrobe.Item, error)
	GetMany(ctx context.Context, userID string, ids []string) ([]wardrobe.Item, error)
}

// WeatherLookup resolves current conditions for a location.
type WeatherLookup interface {
	Lookup(ctx context.Context, location string) (weather.Report, error)
}

// ProfileReader supplies the user's saved location.
type ProfileReader interface {
	Get(ctx context.Context, userID string) (profile.Profile, error)
}
