package stylist

const (
	colorScoreNeutral       = 0.9
	colorScoreComplementary = 0.85
	colorScoreBaseline      = 0.7

	defaultWeatherScore = 0.8

	colorWeight   = 0.3
	styleWeight   = 0.4
	weatherWeight = 0.3

	defaultOccasion = "casual"
)

// TemperatureBucket names a weather band derived from the temperature in °F.
type TemperatureBucket string

const (
	BucketCold TemperatureBucket = "cold"
	BucketMild TemperatureBucket = "mild"
	BucketWarm TemperatureBucket = "warm"
	BucketHot  TemperatureBucket = "hot"
)

// Occasions lists the occasions with their own keyword table.
var Occasions = []string{"formal", "casual", "business", "sporty", "date"}

var styleKeywords = map[string][]string{
	"formal":   {"dress-shirt", "blazer", "slacks", "dress-shoes", "suit"},
	"casual":   {"t-shirt", "jeans", "sneakers", "hoodie", "jacket"},
	"business": {"button-up", "slacks", "blazer", "loafers", "dress"},
	"sporty":   {"athletic", "joggers", "sneakers", "tank", "shorts"},
	"date":     {"dress", "blouse", "nice-top", "heels", "dress-shoes"},
}

var preferredSeasons = map[TemperatureBucket][]Season{
	BucketCold: {SeasonFall, SeasonWinter, SeasonAllSeason},
	BucketMild: {SeasonSpring, SeasonFall, SeasonAllSeason},
	BucketWarm: {SeasonSpring, SeasonSummer, SeasonAllSeason},
	BucketHot:  {SeasonSummer, SeasonAllSeason},
}

var neutralColors = map[string]struct{}{
	"black": {},
	"white": {},
	"gray":  {},
	"beige": {},
	"navy":  {},
	"brown": {},
}

var complementaryPairs = [][2]string{
	{"blue", "orange"},
	{"red", "green"},
	{"yellow", "purple"},
}

// BucketFor maps a Fahrenheit temperature to its bucket.
func BucketFor(temp float64) TemperatureBucket {
	switch {
	case temp < 50:
		return BucketCold
	case temp < 70:
		return BucketMild
	case temp < 85:
		return BucketWarm
	default:
		return BucketHot
	}
}

// KeywordsFor returns the keyword table for an occasion, falling back to casual.
// The returned slice is a copy.
func KeywordsFor(occasion string) []string {
	keywords, ok := styleKeywords[normalizeOccasion(occasion)]
	if !ok {
		keywords = styleKeywords[defaultOccasion]
	}
	return append([]string(nil), keywords...)
}

// IsKnownOccasion reports whether the occasion has a dedicated keyword table.
func IsKnownOccasion(occasion string) bool {
	_, ok := styleKeywords[normalizeOccasion(occasion)]
	return ok
}
