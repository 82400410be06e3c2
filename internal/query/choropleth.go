package query

import (
	"math"

	"github.com/kbajaj/emissions-backend-go/internal/stats"
)

// Bucket maps a raw emission value into a palette index in [0, paletteSize).
// Values are log(v+1)-compressed first because a handful of entities dominate
// total emissions by orders of magnitude; the log value is then mapped
// linearly against the log-transformed observed [min, max], clamped to [0,1]
// and floored onto the palette.
//
// A degenerate domain (max == min) returns the fixed mid-palette index for
// any value. Bucket is only meaningful for value > 0; zero is a "no data"
// sentinel that callers color separately.
func Bucket(value, minObserved, maxObserved float64, paletteSize int) int {
	if paletteSize <= 1 {
		return 0
	}
	if maxObserved == minObserved {
		return (paletteSize - 1) / 2
	}

	lo := math.Log(minObserved + 1)
	hi := math.Log(maxObserved + 1)
	ratio := stats.Clamp((math.Log(value+1)-lo)/(hi-lo), 0, 1)
	return int(math.Floor(ratio * float64(paletteSize-1)))
}

// BucketColor selects the palette entry for a value. An empty palette returns
// the empty string.
func BucketColor(value, minObserved, maxObserved float64, palette []string) string {
	if len(palette) == 0 {
		return ""
	}
	return palette[Bucket(value, minObserved, maxObserved, len(palette))]
}
