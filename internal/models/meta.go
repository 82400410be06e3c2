package models

// CountryMeta is static reference data for one country.
type CountryMeta struct {
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Region string  `json:"region"`
}

// CountryMetadata maps ISO3 -> metadata (country_metadata.json).
type CountryMetadata map[string]CountryMeta

// CountryOption is one entry of the country dropdown.
type CountryOption struct {
	ISO3 string `json:"iso3"`
	Name string `json:"name"`
}

// DropdownLists backs the selector widgets (dropdown_lists.json).
type DropdownLists struct {
	Commodities      []string        `json:"commodities"`
	Countries        []CountryOption `json:"countries"`
	Years            []int           `json:"years"`
	PreliminaryYears []int           `json:"preliminary_years"`
}

// GlobalTimeseries holds the world-total series as parallel arrays, one
// element per year (global_timeseries.json).
type GlobalTimeseries struct {
	Years               []int     `json:"years"`
	TradeVolumeMt       []float64 `json:"trade_volume_mt"`
	WTWEmissionsMtCO2   []float64 `json:"wtw_emissions_mtco2"`
	TTWEmissionsMtCO2   []float64 `json:"ttw_emissions_mtco2"`
	WTTEmissionsMtCO2   []float64 `json:"wtt_emissions_mtco2"`
	FoodMilesBillionTkm []float64 `json:"food_miles_billion_tkm"`
	PreliminaryYears    []int     `json:"preliminary_years"`
}

// ModeEmissions is one mode's slice of the global total for a year.
type ModeEmissions struct {
	Mode      string  `json:"mode"`
	WTW       float64 `json:"wtw"`
	TTW       float64 `json:"ttw"`
	WTT       float64 `json:"wtt"`
	FoodMiles float64 `json:"food_miles"`
	Value     float64 `json:"value"`
}

// GlobalByMode maps year -> per-mode breakdown (global_by_mode.json).
type GlobalByMode map[string][]ModeEmissions
