package models

// TravelStats is a one-way travel estimate
type TravelStats struct {
	OneWayMinutes float64 `json:"one_way_minutes"`
	OneWayCost    float64 `json:"one_way_cost"`
}

// TimelineStep is one waypoint of an itinerary
type TimelineStep struct {
	Time  string `json:"time"` // HH:MM, hours may exceed 23
	Label string `json:"label"`
}

// Itinerary is a timed outing to a single place
type Itinerary struct {
	Place           Place          `json:"place"`
	Mode            TravelMode     `json:"mode"`
	OneWayMins      float64        `json:"one_way_mins"`
	TotalOutMins    float64        `json:"total_out_mins"`
	TravelCostTotal float64        `json:"travel_cost_total"`
	Timeline        []TimelineStep `json:"timeline"`
}

// LimitProgress describes how an itinerary fits into the time limit
type LimitProgress struct {
	HasLimit     bool `json:"has_limit"`
	LimitMinutes int  `json:"limit_minutes"`
	Within       bool `json:"within"`
	ProgressPct  int  `json:"progress_pct"`
}

// PoolSummary summarises the ranked candidates of one tier
type PoolSummary struct {
	Count        int     `json:"count"`
	MedianOneWay float64 `json:"median_one_way_mins"`
	P90OneWay    float64 `json:"p90_one_way_mins"`
	MeanRating   float64 `json:"mean_rating"`
}

// TierPlan is the outcome for one budget tier
type TierPlan struct {
	Tier      BudgetTier     `json:"tier"`
	Label     string         `json:"label"`
	Itinerary *Itinerary     `json:"itinerary,omitempty"` // nil when no candidate qualifies
	Progress  *LimitProgress `json:"progress,omitempty"`
	Ranked    []Place        `json:"ranked"`
	Summary   PoolSummary    `json:"summary"`

	// Set only when Itinerary is set
	ShareText     string `json:"share_text,omitempty"`
	SearchURL     string `json:"search_url,omitempty"`
	DirectionsURL string `json:"directions_url,omitempty"`
	CostLabel     string `json:"cost_label,omitempty"` // round-trip travel cost, e.g. ₹310
}

// Plan holds both tiers
type Plan struct {
	Upscale TierPlan `json:"upscale"`
	Cheap   TierPlan `json:"cheap"`
}
