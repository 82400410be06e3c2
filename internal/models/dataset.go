package models

// RouteMetric holds the transport footprint of one route type (bilateral or
// domestic) for one entity-year. Emissions are tCO2, food miles are
// tonne-km, value is traded USD, cost is transport USD.
type RouteMetric struct {
	WTW       float64 `json:"wtw"`
	TTW       float64 `json:"ttw"`
	WTT       float64 `json:"wtt"`
	FoodMiles float64 `json:"food_miles"`
	Value     float64 `json:"value"`
	Cost      float64 `json:"cost,omitempty"`
}

// YearRecord is one entity-year. A nil route pointer means no trade of that
// type happened that year; it is not the same as a zero-valued metric.
type YearRecord struct {
	Bilateral *RouteMetric `json:"bilateral,omitempty"`
	Domestic  *RouteMetric `json:"domestic,omitempty"`
}

// EntityDataset maps entity ID -> year (string key, e.g. "2023") -> record.
// The same shape is used for consumer countries (ISO3 keys), producer
// countries (ISO3 keys) and commodities (name keys).
type EntityDataset map[string]map[string]YearRecord

// Metric selects which RouteMetric field a query aggregates.
type Metric string

const (
	MetricWTW       Metric = "wtw"
	MetricTTW       Metric = "ttw"
	MetricWTT       Metric = "wtt"
	MetricFoodMiles Metric = "food_miles"
	MetricValue     Metric = "value"
	MetricCost      Metric = "cost"
)

// ParseMetric maps a query-string value to a Metric, defaulting to TTW,
// the headline emissions metric.
func ParseMetric(s string) Metric {
	switch Metric(s) {
	case MetricWTW, MetricTTW, MetricWTT, MetricFoodMiles, MetricValue, MetricCost:
		return Metric(s)
	default:
		return MetricTTW
	}
}

// Of returns the selected field of a route metric. A nil route yields 0,
// the uniform missing-means-zero rule.
func (m Metric) Of(rm *RouteMetric) float64 {
	if rm == nil {
		return 0
	}
	switch m {
	case MetricWTW:
		return rm.WTW
	case MetricWTT:
		return rm.WTT
	case MetricFoodMiles:
		return rm.FoodMiles
	case MetricValue:
		return rm.Value
	case MetricCost:
		return rm.Cost
	default:
		return rm.TTW
	}
}
