package models

// Resolved is the zero-defaulted view of one entity-year for a metric.
type Resolved struct {
	Bilateral float64 `json:"bilateral"`
	Domestic  float64 `json:"domestic"`
	Total     float64 `json:"total"`
	FoodMiles float64 `json:"foodMiles"`
}

// SeriesPoint is one year of a chart series. Values are scaled by the
// caller's divisor and rounded, so charts receive plain integers.
type SeriesPoint struct {
	Year          int   `json:"year"`
	Domestic      int64 `json:"domestic"`
	International int64 `json:"international"`
}

// RankEntry is one row of a descending ranking.
type RankEntry struct {
	EntityID string  `json:"entityId"`
	Value    float64 `json:"value"`
}

// RankPosition locates one entity inside a ranking. Position 0 means the
// entity has no data for the year, which is distinct from ranked last.
type RankPosition struct {
	Position int `json:"position"` // 1-based, 0 = absent
	Total    int `json:"total"`    // Entities with any data that year
}

// MapEntry is one country's choropleth cell: raw value, palette bucket and
// plot coordinates. Bucket -1 marks the no-data sentinel (value == 0).
type MapEntry struct {
	EntityID string  `json:"entityId"`
	Name     string  `json:"name,omitempty"`
	Value    float64 `json:"value"`
	Bucket   int     `json:"bucket"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// PartnerEntry is one row of a top-trade-partners list.
type PartnerEntry struct {
	ISO3      string  `json:"iso3"`
	Name      string  `json:"name,omitempty"`
	TTW       float64 `json:"ttw"`
	WTW       float64 `json:"wtw"`
	FoodMiles float64 `json:"food_miles"`
	Mode      string  `json:"dominant_mode"`
}

// FlowView is a BilateralFlow enriched with rendering geometry: endpoint
// coordinates and great-circle corridor length.
type FlowView struct {
	BilateralFlow
	FromLat    float64 `json:"from_lat"`
	FromLng    float64 `json:"from_lng"`
	ToLat      float64 `json:"to_lat"`
	ToLng      float64 `json:"to_lng"`
	DistanceKm float64 `json:"distance_km"`
}
