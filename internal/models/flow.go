package models

// Transport mode tags as emitted by the preprocessing pipeline. "all" is the
// cross-mode aggregate bucket.
const (
	ModeAll      = "all"
	ModeLand     = "land"
	ModeMaritime = "maritime"
	ModeAir      = "air"
)

// BilateralFlow is one directed trade corridor's aggregate transport
// footprint for a year (optionally scoped to a single commodity).
type BilateralFlow struct {
	From         string  `json:"from"` // ISO3 producer
	To           string  `json:"to"`   // ISO3 consumer
	WTW          float64 `json:"wtw"`
	TTW          float64 `json:"ttw"`
	WTT          float64 `json:"wtt"`
	FoodMiles    float64 `json:"food_miles"`
	Cost         float64 `json:"cost"`
	NCommodities int     `json:"n_commodities"`
	DominantMode string  `json:"dominant_mode"`
}

// FlowBuckets maps year -> mode -> flows (bilateral_top_flows.json).
// Bucket order is as supplied upstream; the query layer must not assume
// pre-sorting.
type FlowBuckets map[string]map[string][]BilateralFlow

// CommodityFlows maps commodity -> year -> flows (bilateral_by_commodity.json).
// Commodity-scoped buckets are not mode-bucketed; each flow carries its
// dominant mode instead.
type CommodityFlows map[string]map[string][]BilateralFlow
