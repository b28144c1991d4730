// Package stylist builds and ranks outfit combinations from a wardrobe snapshot.
//
// Scoring is a fixed heuristic over color harmony, occasion keywords and
// weather fit. Nothing here performs I/O; the only external input besides the
// wardrobe is the RandomSource used to pick shoes and accessories.
package stylist

import "sort"

const (
	// DefaultMaxCandidates bounds how many raw combinations are scored.
	// Generation stops at this cap, so on large wardrobes later top/bottom
	// pairs are never considered.
	DefaultMaxCandidates = 20
	// DefaultMaxResults is the number of ranked candidates returned.
	DefaultMaxResults = 10

	accessoryProbability = 0.5
)

// Config bounds the amount of work done per suggestion run.
type Config struct {
	MaxCandidates int
	MaxResults    int
}

// Recommender generates ranked outfit candidates.
type Recommender struct {
	cfg    Config
	random RandomSource
}

// NewRecommender builds a recommender. Zero config values fall back to the
// defaults and a nil source uses DefaultRandomSource.
func NewRecommender(cfg Config, random RandomSource) *Recommender {
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = DefaultMaxCandidates
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if random == nil {
		random = DefaultRandomSource()
	}
	return &Recommender{cfg: cfg, random: random}
}

// GenerateSuggestions runs a default recommender over the items.
func GenerateSuggestions(items []WardrobeItem, occasion string, weather *WeatherSnapshot) []OutfitCandidate {
	return NewRecommender(Config{}, nil).Generate(items, occasion, weather)
}

// Generate returns at most MaxResults candidates ordered by descending score.
// Ties keep generation order. Fewer than one top and one bottom yields an
// empty, non-nil slice.
func (r *Recommender) Generate(items []WardrobeItem, occasion string, weather *WeatherSnapshot) []OutfitCandidate {
	groups := partition(items)
	candidates := make([]OutfitCandidate, 0, min(r.cfg.MaxCandidates, len(groups.tops)*len(groups.bottoms)))

enumerate:
	for _, top := range groups.tops {
		for _, bottom := range groups.bottoms {
			outfit := []WardrobeItem{top, bottom}
			if len(groups.shoes) > 0 {
				outfit = append(outfit, groups.shoes[r.random.IntN(len(groups.shoes))])
			}
			if len(groups.accessories) > 0 && r.random.Float64() > accessoryProbability {
				outfit = append(outfit, groups.accessories[r.random.IntN(len(groups.accessories))])
			}
			if !hasRequiredCategories(outfit) {
				continue
			}

			breakdown := Score(outfit, occasion, weather)
			candidates = append(candidates, OutfitCandidate{
				Items:  outfit,
				Score:  breakdown.Total(),
				Reason: buildReason(breakdown, occasion, weather),
			})
			if len(candidates) >= r.cfg.MaxCandidates {
				break enumerate
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > r.cfg.MaxResults {
		candidates = candidates[:r.cfg.MaxResults]
	}
	return candidates
}

type partitioned struct {
	tops        []WardrobeItem
	bottoms     []WardrobeItem
	shoes       []WardrobeItem
	accessories []WardrobeItem
}

func partition(items []WardrobeItem) partitioned {
	var p partitioned
	for _, item := range items {
		switch {
		case isTopLayer(item.Category):
			p.tops = append(p.tops, item)
		case item.Category == CategoryBottoms:
			p.bottoms = append(p.bottoms, item)
		case item.Category == CategoryShoes:
			p.shoes = append(p.shoes, item)
		case item.Category == CategoryAccessories:
			p.accessories = append(p.accessories, item)
		}
	}
	return p
}

func hasRequiredCategories(outfit []WardrobeItem) bool {
	var hasTop, hasBottom bool
	for _, item := range outfit {
		if isTopLayer(item.Category) {
			hasTop = true
		}
		if item.Category == CategoryBottoms {
			hasBottom = true
		}
	}
	return hasTop && hasBottom
}
