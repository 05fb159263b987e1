package models

import "math"

// OutingKey selects default timing and scoring bias
type OutingKey string

// OutingKey constants
const (
	OutingBreakfast OutingKey = "breakfast"
	OutingLunch     OutingKey = "lunch"
	OutingSnack     OutingKey = "snack"
	OutingDinner    OutingKey = "dinner"
)

// OutingTemplate pairs an outing with its display label and default start time
type OutingTemplate struct {
	Key          OutingKey `json:"key"`
	Label        string    `json:"label"`
	DefaultStart string    `json:"default_start"` // HH:MM
}

// OutingTemplates lists the supported outings in display order
var OutingTemplates = []OutingTemplate{
	{Key: OutingBreakfast, Label: "Breakfast", DefaultStart: "09:30"},
	{Key: OutingLunch, Label: "Lunch", DefaultStart: "13:00"},
	{Key: OutingSnack, Label: "Evening Snacks", DefaultStart: "17:30"},
	{Key: OutingDinner, Label: "Dinner", DefaultStart: "20:00"},
}

// AllOutings returns a fresh slice with every outing key
func AllOutings() []OutingKey {
	keys := make([]OutingKey, len(OutingTemplates))
	for i, t := range OutingTemplates {
		keys[i] = t.Key
	}
	return keys
}

// TemplateFor returns the template for key
func TemplateFor(key OutingKey) (OutingTemplate, bool) {
	for _, t := range OutingTemplates {
		if t.Key == key {
			return t, true
		}
	}
	return OutingTemplate{}, false
}

// TravelStyle is the user's travel preference
type TravelStyle string

// TravelStyle constants
const (
	StyleComfortable TravelStyle = "comfortable"
	StyleCheap       TravelStyle = "cheap"
)

// TravelMode is the concrete way of getting to a place
type TravelMode string

// TravelMode constants
const (
	ModeCab   TravelMode = "cab"
	ModeLocal TravelMode = "local"
)

// Preference bounds
const (
	MaxBufferMins = 30
	MaxHours      = 10.0
	MinRadiusKm   = 1.0
	MaxRadiusKm   = 20.0
)

// Preferences is the snapshot of user choices consumed by scoring.
// It is passed by value; Clone detaches the slices and the home pointer.
type Preferences struct {
	Home        *Coordinate `json:"home,omitempty"`
	HomeLabel   string      `json:"home_label,omitempty"`
	Outing      OutingKey   `json:"outing"`
	StartTime   string      `json:"start_time"` // HH:MM
	BufferMins  int         `json:"buffer_mins"`
	MaxHours    float64     `json:"max_hours"` // 0 means unlimited
	TravelStyle TravelStyle `json:"travel_style"`
	Cuisines    []string    `json:"cuisines,omitempty"` // empty means no filter
	OpenNow     bool        `json:"open_now"`
	RadiusKm    float64     `json:"radius_km"`
}

// DefaultPreferences mirrors the initial state of a fresh session
func DefaultPreferences() Preferences {
	return Preferences{
		Outing:      OutingDinner,
		StartTime:   "20:00",
		BufferMins:  12,
		MaxHours:    3,
		TravelStyle: StyleComfortable,
		RadiusKm:    5,
	}
}

// Clone returns a deep copy
func (p Preferences) Clone() Preferences {
	out := p
	if p.Home != nil {
		h := *p.Home
		out.Home = &h
	}
	if p.Cuisines != nil {
		out.Cuisines = append([]string(nil), p.Cuisines...)
	}
	return out
}

// Normalized returns a deep copy with every field pulled into its documented range
func (p Preferences) Normalized() Preferences {
	out := p.Clone()
	if _, ok := TemplateFor(out.Outing); !ok {
		out.Outing = OutingDinner
	}
	if out.TravelStyle != StyleCheap {
		out.TravelStyle = StyleComfortable
	}
	if out.BufferMins < 0 {
		out.BufferMins = 0
	}
	if out.BufferMins > MaxBufferMins {
		out.BufferMins = MaxBufferMins
	}
	if math.IsNaN(out.MaxHours) {
		out.MaxHours = DefaultPreferences().MaxHours
	}
	if out.MaxHours < 0 {
		out.MaxHours = 0
	}
	if out.MaxHours > MaxHours {
		out.MaxHours = MaxHours
	}
	if math.IsNaN(out.RadiusKm) {
		out.RadiusKm = DefaultPreferences().RadiusKm
	}
	if out.RadiusKm < MinRadiusKm {
		out.RadiusKm = MinRadiusKm
	}
	if out.RadiusKm > MaxRadiusKm {
		out.RadiusKm = MaxRadiusKm
	}
	return out
}

// HasCuisine reports whether cuisine is selected
func (p Preferences) HasCuisine(cuisine string) bool {
	for _, c := range p.Cuisines {
		if c == cuisine {
			return true
		}
	}
	return false
}
