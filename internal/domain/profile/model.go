package profile

import (
	"context"
	"time"
)

// StylePreferences lists the accepted preference tags.
var StylePreferences = []string{"minimalist", "bohemian", "classic", "streetwear", "preppy", "edgy", "romantic", "sporty"}

// Profile holds per-user styling defaults.
type Profile struct {
	UserID           string    `json:"userId"`
	FullName         string    `json:"fullName"`
	Location         string    `json:"location"`
	StylePreferences []string  `json:"stylePreferences"`
	UpdatedAt        time.Time `json:"updatedAt,omitempty"`
}

// UpdateRequest replaces the editable profile fields.
type UpdateRequest struct {
	FullName         string   `json:"fullName" validate:"max=120"`
	Location         string   `json:"location" validate:"max=120"`
	StylePreferences []string `json:"stylePreferences" validate:"max=8,dive,oneof=minimalist bohemian classic streetwear preppy edgy romantic sporty"`
}

// Repository persists profiles keyed by user id.
type Repository interface {
	Get(ctx context.Context, userID string) (Profile, bool, error)
	Upsert(ctx context.Context, p Profile) (Profile, error)
}
