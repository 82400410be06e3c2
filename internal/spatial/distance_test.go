package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbajaj/emissions-backend-go/internal/models"
	"github.com/kbajaj/emissions-backend-go/internal/spatial"
)

func TestHaversineDistance(t *testing.T) {
	// Paris to Berlin is roughly 878 km.
	d := spatial.HaversineDistance(48.8566, 2.3522, 52.5200, 13.4050)
	assert.InDelta(t, 878000, d, 10000)

	assert.Equal(t, 0.0, spatial.HaversineDistance(10, 20, 10, 20))
}

func TestCorridorDistanceKm(t *testing.T) {
	meta := models.CountryMetadata{
		"FRA": {Name: "France", Lat: 46.23, Lng: 2.21},
		"DEU": {Name: "Germany", Lat: 51.17, Lng: 10.45},
	}

	d := spatial.CorridorDistanceKm(meta, "FRA", "DEU")
	assert.InDelta(t, 800, d, 100)

	// Unknown endpoints render without a length rather than erroring.
	assert.Equal(t, 0.0, spatial.CorridorDistanceKm(meta, "FRA", "XXX"))
	assert.Equal(t, 0.0, spatial.CorridorDistanceKm(meta, "XXX", "DEU"))
}
