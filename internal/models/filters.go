package models

// SeriesFilter represents query parameters for time series requests
type SeriesFilter struct {
	StartYear int     `form:"start"`   // First year, default 2010
	EndYear   int     `form:"end"`     // Last year, default 2023
	Metric    string  `form:"metric"`  // wtw, ttw, wtt, food_miles, value, cost
	Divisor   float64 `form:"divisor"` // Unit scaling, e.g. 1000 for kt
}

// RankingFilter represents query parameters for ranking requests
type RankingFilter struct {
	Year   string `form:"year"`
	Metric string `form:"metric"`
	Limit  int    `form:"limit"` // Max entries, 0 = all
}

// FlowFilter represents query parameters for bilateral flow requests
type FlowFilter struct {
	Year         string  `form:"year"`
	Mode         string  `form:"mode"`      // all, land, maritime, air
	MinEmissions float64 `form:"minTtw"`    // Minimum TTW tCO2
	Commodity    string  `form:"commodity"` // Optional commodity scope
}

// PartnerFilter represents query parameters for trade partner requests
type PartnerFilter struct {
	Year      string `form:"year"`
	Direction string `form:"direction"` // imports or exports
	Limit     int    `form:"limit"`
}

// MapFilter represents query parameters for choropleth map requests
type MapFilter struct {
	Year    string `form:"year"`
	Metric  string `form:"metric"`
	Buckets int    `form:"buckets"` // Palette size, default 9
}
