package query

import (
	"sort"

	"github.com/kbajaj/emissions-backend-go/internal/models"
)

// MaxFlows caps every flow result to bound rendering cost.
const MaxFlows = 100

// FilterFlows selects bilateral flows by year, mode, TTW threshold and
// optional commodity scope, capped at MaxFlows entries.
//
// Source selection: a selected commodity takes the commodity-scoped bucket
// for (commodity, year); otherwise the mode bucket for (year, mode) is used
// and kept in its supplied order. Commodity-scoped data is not mode-bucketed,
// so a simultaneous mode filter becomes a post-filter on DominantMode; on
// that path survivors are stably re-sorted by TTW descending before the cap,
// so a later high-emission flow is never dropped in favor of an earlier
// small one. Unknown year, mode or commodity yields an empty slice, never an
// error.
func FilterFlows(buckets models.FlowBuckets, commodityFlows models.CommodityFlows, f models.FlowFilter) []models.BilateralFlow {
	var source []models.BilateralFlow
	modePostFilter := false

	if f.Commodity != "" {
		source = commodityFlows[f.Commodity][f.Year]
		modePostFilter = f.Mode != "" && f.Mode != models.ModeAll
	} else {
		source = buckets[f.Year][f.Mode]
	}

	result := make([]models.BilateralFlow, 0, len(source))
	for _, flow := range source {
		if modePostFilter && flow.DominantMode != f.Mode {
			continue
		}
		if flow.TTW < f.MinEmissions {
			continue
		}
		result = append(result, flow)
	}

	if modePostFilter {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TTW > result[j].TTW
		})
	}

	if len(result) > MaxFlows {
		result = result[:MaxFlows]
	}
	return result
}
