package outfit

import (
	"time"

	"github.com/yanqian/closet-stylist/internal/domain/stylist"
	"github.com/yanqian/closet-stylist/internal/domain/wardrobe"
	"github.com/yanqian/closet-stylist/internal/domain/weather"
)

// Outfit is a saved combination of wardrobe items.
type Outfit struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	Name       string         `json:"name"`
	Occasion   string         `json:"occasion"`
	Season     stylist.Season `json:"season"`
	ItemIDs    []string       `json:"items"`
	Score      float64        `json:"aiScore"`
	Reason     string         `json:"reason"`
	IsFavorite bool           `json:"isFavorite"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// View pairs an outfit with the wardrobe items it still references.
// Items deleted since the outfit was saved are omitted.
type View struct {
	Outfit
	Details []wardrobe.Item `json:"itemDetails"`
}

// SuggestRequest drives one recommendation run.
type SuggestRequest struct {
	Occasion      string   `json:"occasion" validate:"required,max=40"`
	Location      string   `json:"location" validate:"max=120"`
	Temperature   *float64 `json:"temperature" validate:"omitempty,gte=-80,lte=150"`
	Condition     string   `json:"condition" validate:"max=40"`
	IgnoreWeather bool     `json:"ignoreWeather"`
}

// Suggestion is a ranked candidate with full item records.
type Suggestion struct {
	Items  []wardrobe.Item `json:"items"`
	Score  float64         `json:"score"`
	Reason string          `json:"reason"`
}

// SuggestResult is returned by Suggest.
type SuggestResult struct {
	Occasion    string                   `json:"occasion"`
	Weather     *stylist.WeatherSnapshot `json:"weather,omitempty"`
	Report      *weather.Report          `json:"weatherReport,omitempty"`
	Suggestions []Suggestion             `json:"suggestions"`
}

// SaveRequest persists a candidate the user liked.
type SaveRequest struct {
	Name     string   `json:"name" validate:"max=120"`
	Occasion string   `json:"occasion" validate:"required,max=40"`
	ItemIDs  []string `json:"itemIds" validate:"required,min=2,max=4,dive,required"`
	Score    float64  `json:"score" validate:"gte=0,lte=1"`
	Reason   string   `json:"reason" validate:"max=500"`
}

// ListFilter narrows List results.
type ListFilter struct {
	Occasion string
}

// Share is a public link to one outfit.
type Share struct {
	Token     string    `json:"token"`
	OutfitID  string    `json:"outfitId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShareLink is returned to the owner after sharing.
type ShareLink struct {
	Token string `json:"token"`
	Path  string `json:"path"`
}
