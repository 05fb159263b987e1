package places

import (
	"strings"

	"github.com/jengzang/food-itinerary-go/internal/models"
)

// Normalization defaults
const (
	DefaultPriceLevel  = 2
	DefaultAvgMealMins = 75
	DefaultName        = "Nearby restaurant"
	DefaultArea        = "Nearby"
)

// Price tags
const (
	PriceTagCheap   = "₹"
	PriceTagMid     = "₹₹"
	PriceTagPremium = "₹₹₹"
)

// Cuisine labels
const (
	CuisineBar        = "Bar / Pub"
	CuisineCafe       = "Cafe"
	CuisineBakery     = "Bakery / Desserts"
	CuisinePizza      = "Pizza"
	CuisineChinese    = "Chinese"
	CuisineSeafood    = "Seafood"
	CuisineFastFood   = "Fast food"
	CuisineStreetFood = "Street food"
	CuisineIndian     = "Indian"
	CuisineRestaurant = "Restaurant"
)

type cuisineRule struct {
	keywords []string
	label    string
}

// cuisineRules is evaluated top to bottom; the first rule with a keyword
// contained in any tag wins.
var cuisineRules = []cuisineRule{
	{keywords: []string{"bar", "night_club"}, label: CuisineBar},
	{keywords: []string{"cafe"}, label: CuisineCafe},
	{keywords: []string{"bakery", "dessert"}, label: CuisineBakery},
	{keywords: []string{"pizza"}, label: CuisinePizza},
	{keywords: []string{"chinese"}, label: CuisineChinese},
	{keywords: []string{"seafood"}, label: CuisineSeafood},
	{keywords: []string{"fast_food"}, label: CuisineFastFood},
	{keywords: []string{"meal_takeaway", "street"}, label: CuisineStreetFood},
	{keywords: []string{"indian", "south_indian", "north_indian"}, label: CuisineIndian},
}

// Cuisines lists every label CuisineFromTypes can produce
func Cuisines() []string {
	labels := make([]string, 0, len(cuisineRules)+1)
	for _, r := range cuisineRules {
		labels = append(labels, r.label)
	}
	return append(labels, CuisineRestaurant)
}

// CuisineFromTypes derives a single cuisine label from raw category tags
func CuisineFromTypes(types []string) string {
	lowered := make([]string, len(types))
	for i, t := range types {
		lowered[i] = strings.ToLower(t)
	}

	for _, rule := range cuisineRules {
		for _, kw := range rule.keywords {
			for _, t := range lowered {
				if strings.Contains(t, kw) {
					return rule.label
				}
			}
		}
	}
	return CuisineRestaurant
}

// PriceTag maps a price level to its symbolic tier; nil is treated as mid
func PriceTag(level *int) string {
	if level == nil {
		return PriceTagMid
	}
	switch {
	case *level == 0 || *level == 1:
		return PriceTagCheap
	case *level >= 3:
		return PriceTagPremium
	default:
		return PriceTagMid
	}
}

// FoodBudget maps a price level to the binary budget tier; nil is comfortable
func FoodBudget(level *int) models.BudgetTier {
	if level != nil && (*level == 0 || *level == 1) {
		return models.BudgetCheap
	}
	return models.BudgetComfortable
}

// Normalize maps a raw search result into a Place
func Normalize(raw RawPlace) models.Place {
	level := raw.PriceLevel
	if level == nil {
		d := DefaultPriceLevel
		level = &d
	}

	p := models.Place{
		ID:               firstNonEmpty(raw.PlaceID, raw.ID, raw.Name),
		PlaceID:          firstNonEmpty(raw.PlaceID, raw.ID),
		Name:             firstNonEmpty(raw.Name, DefaultName),
		Area:             firstNonEmpty(raw.Area, raw.Vicinity, DefaultArea),
		Rating:           raw.Rating,
		UserRatingsTotal: raw.UserRatingsTotal,
		PriceLevel:       raw.PriceLevel,
		PriceTag:         PriceTag(level),
		FoodBudget:       FoodBudget(level),
		Cuisine:          CuisineFromTypes(raw.Types),
		Types:            append([]string{}, raw.Types...),
		BusinessStatus:   raw.BusinessStatus,
		AvgMealMins:      DefaultAvgMealMins,
		BestFor:          models.AllOutings(),
	}
	if raw.Coords != nil {
		c := *raw.Coords
		p.Coords = &c
	}
	if raw.OpeningHours != nil && raw.OpeningHours.OpenNow != nil {
		open := *raw.OpeningHours.OpenNow
		p.OpenNow = &open
	}
	return p
}

// NormalizeAll normalizes a batch, keeping order
func NormalizeAll(raws []RawPlace) []models.Place {
	out := make([]models.Place, len(raws))
	for i, r := range raws {
		out[i] = Normalize(r)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
