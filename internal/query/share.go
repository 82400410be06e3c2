package query

import "github.com/kbajaj/emissions-backend-go/internal/models"

// InternationalShare returns the bilateral percentage of total TTW emissions
// across every entity in the dataset for one year, in [0, 100]. A zero
// denominator (e.g. a future year with no data yet) returns 0, never NaN;
// it is an expected steady state, not an error.
func InternationalShare(ds models.EntityDataset, year string) float64 {
	var bilateralSum, domesticSum float64
	for _, years := range ds {
		rec, ok := years[year]
		if !ok {
			continue
		}
		bilateralSum += models.MetricTTW.Of(rec.Bilateral)
		domesticSum += models.MetricTTW.Of(rec.Domestic)
	}

	total := bilateralSum + domesticSum
	if total == 0 {
		return 0
	}
	return 100 * bilateralSum / total
}
