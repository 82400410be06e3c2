package models

// TransportModeFactor is the average per-tonne emission intensity and route
// length for one commodity carried by one mode. Routes is a sample count,
// not an aggregatable metric.
type TransportModeFactor struct {
	WTW      float64 `json:"wtw"`      // kgCO2 per tonne
	TTW      float64 `json:"ttw"`      // kgCO2 per tonne
	Distance float64 `json:"distance"` // km
	Routes   int     `json:"routes"`
}

// TransportFactors maps commodity -> mode -> factor (transport_factors.json).
type TransportFactors map[string]map[string]TransportModeFactor
