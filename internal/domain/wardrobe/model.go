package wardrobe

import (
	"io"
	"time"

	"github.com/yanqian/closet-stylist/internal/domain/stylist"
)

// Item is a persisted clothing item owned by one user.
type Item struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Name      string           `json:"name"`
	Category  stylist.Category `json:"category"`
	Color     string           `json:"color"`
	Season    stylist.Season   `json:"season"`
	StyleTags []string         `json:"styleTags"`
	ImageURL  string           `json:"imageUrl,omitempty"`
	ImageKey  string           `json:"-"`
	ImageType string           `json:"-"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Styled returns the view of the item the recommender works with.
func (i Item) Styled() stylist.WardrobeItem {
	return stylist.WardrobeItem{
		ID:        i.ID,
		Name:      i.Name,
		Category:  i.Category,
		Color:     i.Color,
		Season:    i.Season,
		StyleTags: i.StyleTags,
	}
}

// StyledItems converts a slice of items, keeping order.
func StyledItems(items []Item) []stylist.WardrobeItem {
	out := make([]stylist.WardrobeItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.Styled())
	}
	return out
}

// CreateItemRequest is the payload accepted when cataloging an item.
type CreateItemRequest struct {
	Name      string   `json:"name" validate:"required,max=120"`
	Category  string   `json:"category" validate:"required,oneof=tops bottoms shoes accessories outerwear"`
	Color     string   `json:"color" validate:"required,max=40"`
	Season    string   `json:"season" validate:"required,oneof=spring summer fall winter all-season"`
	StyleTags []string `json:"styleTags" validate:"max=12,dive,max=32"`
	ImageURL  string   `json:"imageUrl" validate:"omitempty,url"`
}

// ItemFilter narrows List results.
type ItemFilter struct {
	Category stylist.Category
}

// ImageUpload is a photo submitted for an item.
type ImageUpload struct {
	Filename string
	MimeType string
	Content  []byte
}

// ImageContent streams a stored photo back to the caller.
type ImageContent struct {
	Body     io.ReadCloser
	MimeType string
}

// StoredObject describes a blob written to image storage.
type StoredObject struct {
	Key      string
	Size     int64
	MimeType string
	ETag     string
}
