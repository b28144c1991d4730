package stylist

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

const reasonSeparator = " • "

// Breakdown holds the component scores behind an outfit's total.
type Breakdown struct {
	Color      float64
	Style      float64
	Weather    float64
	HasWeather bool
}

// Total applies the fixed weights to the component scores.
func (b Breakdown) Total() float64 {
	return colorWeight*b.Color + styleWeight*b.Style + weatherWeight*b.Weather
}

// Score evaluates a single outfit against an occasion and optional weather.
func Score(items []WardrobeItem, occasion string, weather *WeatherSnapshot) Breakdown {
	colors := make([]string, 0, len(items))
	for _, item := range items {
		colors = append(colors, item.Color)
	}
	b := Breakdown{
		Color:   colorScore(colors),
		Style:   styleScore(items, occasion),
		Weather: defaultWeatherScore,
	}
	if weather != nil {
		b.Weather = weatherScore(items, *weather)
		b.HasWeather = true
	}
	return b
}

func colorScore(colors []string) float64 {
	lowered := make([]string, 0, len(colors))
	neutrals := 0
	for _, c := range colors {
		lc := strings.ToLower(c)
		lowered = append(lowered, lc)
		if _, ok := neutralColors[lc]; ok {
			neutrals++
		}
	}
	if neutrals >= 2 {
		return colorScoreNeutral
	}

	// Substring containment, so "light blue" pairs with "burnt orange".
	for _, pair := range complementaryPairs {
		if anyContains(lowered, pair[0]) && anyContains(lowered, pair[1]) {
			return colorScoreComplementary
		}
	}
	return colorScoreBaseline
}

func anyContains(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(v, needle) {
			return true
		}
	}
	return false
}

func styleScore(items []WardrobeItem, occasion string) float64 {
	if len(items) == 0 {
		return 0
	}
	keywords, ok := styleKeywords[normalizeOccasion(occasion)]
	if !ok {
		keywords = styleKeywords[defaultOccasion]
	}

	matches := 0
	for _, item := range items {
		if matchesOccasion(item, keywords) {
			matches++
		}
	}
	return float64(matches) / float64(len(items))
}

func matchesOccasion(item WardrobeItem, keywords []string) bool {
	tags := make([]string, 0, len(item.StyleTags))
	for _, t := range item.StyleTags {
		tags = append(tags, strings.ToLower(t))
	}
	words := strings.Fields(strings.ToLower(item.Name))

	for _, kw := range keywords {
		if slices.Contains(tags, kw) {
			return true
		}
		for _, w := range words {
			if strings.Contains(w, kw) {
				return true
			}
		}
	}
	return false
}

func weatherScore(items []WardrobeItem, weather WeatherSnapshot) float64 {
	if len(items) == 0 {
		return 0
	}
	seasons := preferredSeasons[BucketFor(weather.Temperature)]
	matches := 0
	for _, item := range items {
		if slices.Contains(seasons, item.Season) {
			matches++
		}
	}
	return float64(matches) / float64(len(items))
}

func buildReason(b Breakdown, occasion string, weather *WeatherSnapshot) string {
	var reasons []string
	if b.Style > 0.6 {
		reasons = append(reasons, "Perfect for "+occasion)
	}
	if weather != nil && b.Weather > 0.7 {
		reasons = append(reasons, fmt.Sprintf("Suitable for %d°F", int(math.Round(weather.Temperature))))
	}
	if b.Color > 0.8 {
		reasons = append(reasons, "Great color combination")
	}
	if len(reasons) == 0 {
		return "Good outfit choice"
	}
	return strings.Join(reasons, reasonSeparator)
}

func normalizeOccasion(occasion string) string {
	return strings.ToLower(strings.TrimSpace(occasion))
}
