// Package query implements the aggregation core: pure, total functions over
// already-loaded datasets. The datasets are sparse (not every entity trades
// internationally every year), so every function here resolves missing
// entities, years and route types to zero instead of erroring. That
// zero-default rule lives in Resolve and nowhere else; every other component
// goes through it.
package query

import "github.com/kbajaj/emissions-backend-go/internal/models"

// Resolve extracts the bilateral and domestic values of one metric for one
// entity-year. Missing entity, missing year, or missing route type each
// contribute 0. Total is always Bilateral + Domestic.
func Resolve(ds models.EntityDataset, entityID, year string, metric models.Metric) models.Resolved {
	rec, ok := lookup(ds, entityID, year)
	if !ok {
		return models.Resolved{}
	}

	bilateral := metric.Of(rec.Bilateral)
	domestic := metric.Of(rec.Domestic)

	return models.Resolved{
		Bilateral: bilateral,
		Domestic:  domestic,
		Total:     bilateral + domestic,
		FoodMiles: models.MetricFoodMiles.Of(rec.Bilateral) + models.MetricFoodMiles.Of(rec.Domestic),
	}
}

// HasData reports whether the entity has any record (either route type) for
// the year.
func HasData(ds models.EntityDataset, entityID, year string) bool {
	rec, ok := lookup(ds, entityID, year)
	return ok && (rec.Bilateral != nil || rec.Domestic != nil)
}

func lookup(ds models.EntityDataset, entityID, year string) (models.YearRecord, bool) {
	years, ok := ds[entityID]
	if !ok {
		return models.YearRecord{}, false
	}
	rec, ok := years[year]
	return rec, ok
}
