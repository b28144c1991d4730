package stylist

// Category groups wardrobe items by the slot they fill in an outfit.
type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
	CategoryOuterwear   Category = "outerwear"
)

// Season is the time of year an item is meant for.
type Season string

const (
	SeasonSpring    Season = "spring"
	SeasonSummer    Season = "summer"
	SeasonFall      Season = "fall"
	SeasonWinter    Season = "winter"
	SeasonAllSeason Season = "all-season"
)

// Categories lists every accepted category in display order.
var Categories = []Category{CategoryTops, CategoryBottoms, CategoryShoes, CategoryAccessories, CategoryOuterwear}

// Seasons lists every accepted season in display order.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter, SeasonAllSeason}

// WardrobeItem is the read-only view of a clothing item the recommender scores.
type WardrobeItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Color     string   `json:"color"`
	Season    Season   `json:"season"`
	StyleTags []string `json:"styleTags"`
}

// WeatherSnapshot is the optional weather constraint for a suggestion run.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
}

// OutfitCandidate is a scored combination of 2 to 4 items.
type OutfitCandidate struct {
	Items  []WardrobeItem `json:"items"`
	Score  float64        `json:"score"`
	Reason string         `json:"reason"`
}

// ItemIDs returns the candidate's item ids in outfit order.
func (c OutfitCandidate) ItemIDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func isTopLayer(c Category) bool {
	return c == CategoryTops || c == CategoryOuterwear
}
