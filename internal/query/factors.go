package query

import (
	"sort"
	"strings"

	"github.com/kbajaj/emissions-backend-go/internal/models"
)

// ResolveFactors finds the per-mode transport factors for a commodity.
// Commodity names are not perfectly aligned across datasets ("Wheat" vs
// "Wheat and products"), so resolution is two-stage: an exact key match
// always wins; otherwise the fallback is the first key, in lexicographic
// order, whose normalized first token equals the query's normalized first
// token. No match returns ok == false, never an error.
func ResolveFactors(factors models.TransportFactors, commodity string) (map[string]models.TransportModeFactor, bool) {
	if modes, ok := factors[commodity]; ok {
		return modes, true
	}

	want := firstToken(commodity)
	if want == "" {
		return nil, false
	}

	keys := make([]string, 0, len(factors))
	for k := range factors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if firstToken(k) == want {
			return factors[k], true
		}
	}
	return nil, false
}

// firstToken lowercases, trims and returns the first whitespace-separated
// word of a commodity name.
func firstToken(s string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
