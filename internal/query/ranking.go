package query

import (
	"sort"

	"github.com/kbajaj/emissions-backend-go/internal/models"
)

// Rank totals the metric for every entity with data for the year and returns
// a descending list. Entities are first collected in lexicographic ID order
// and then stably sorted, so equal-valued entities keep the same relative
// order on every call (Go map iteration order is randomized and cannot serve
// as the tie-break).
func Rank(ds models.EntityDataset, year string, metric models.Metric) []models.RankEntry {
	ids := make([]string, 0, len(ds))
	for id := range ds {
		if HasData(ds, id, year) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	entries := make([]models.RankEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, models.RankEntry{
			EntityID: id,
			Value:    Resolve(ds, id, year, metric).Total,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	return entries
}

// RankOf locates one entity in the full descending ranking. Position is
// 1-based; 0 means the entity is absent or has no data for the year, which
// callers must distinguish from "ranked last". Total counts the entities
// with any data that year.
func RankOf(ds models.EntityDataset, year, entityID string, metric models.Metric) models.RankPosition {
	ranking := Rank(ds, year, metric)
	pos := 0
	for i, e := range ranking {
		if e.EntityID == entityID {
			pos = i + 1
			break
		}
	}
	return models.RankPosition{Position: pos, Total: len(ranking)}
}
