package query

import (
	"sort"

	"github.com/kbajaj/emissions-backend-go/internal/models"
)

// Trade partner directions.
const (
	DirectionImports = "imports" // Partners shipping to the country
	DirectionExports = "exports" // Partners supplied by the country
)

// TopPartners extracts a country's top-n trade partners by TTW from a year's
// flow bucket (callers pass the "all"-mode bucket). Direction "imports"
// selects flows into iso3 and reports the origin; anything else selects
// flows out of iso3 and reports the destination. The sort is stable, so
// equal-emission partners keep bucket order.
func TopPartners(flows []models.BilateralFlow, iso3, direction string, n int) []models.PartnerEntry {
	partners := make([]models.PartnerEntry, 0)
	for _, flow := range flows {
		var partner string
		switch {
		case direction == DirectionImports && flow.To == iso3:
			partner = flow.From
		case direction != DirectionImports && flow.From == iso3:
			partner = flow.To
		default:
			continue
		}
		partners = append(partners, models.PartnerEntry{
			ISO3:      partner,
			TTW:       flow.TTW,
			WTW:       flow.WTW,
			FoodMiles: flow.FoodMiles,
			Mode:      flow.DominantMode,
		})
	}

	sort.SliceStable(partners, func(i, j int) bool {
		return partners[i].TTW > partners[j].TTW
	})

	if n > 0 && len(partners) > n {
		partners = partners[:n]
	}
	return partners
}
