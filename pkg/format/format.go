// Package format holds the pure display helpers shared by every front
// surface: currency and date rendering plus the collection fold used for
// running totals. None of these touch the network or mutate their inputs.
package format

import (
	"fmt"
	"strings"
	"time"

	"chinook-browser/internal/core/model"
)

// Currency renders an amount as a dollar string with a fixed two decimals.
// There is no locale or currency-code handling; the upstream catalog prices
// everything in USD. Multi-currency support would land here if it ever
// becomes a requirement.
func Currency(v model.Money) string {
	return fmt.Sprintf("$%.2f", float64(v))
}

// dateLayouts covers the timestamp shapes the API is known to emit.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date renders an ISO-8601-ish timestamp for human display. Inputs that
// parse under none of the known layouts come back unchanged. The output is
// display-only: never sort, compare, or persist on it.
func Date(iso string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return iso
}

// Sum folds selector over xs. Fields missing from the wire decode to their
// zero value, so absent amounts contribute nothing without special casing.
func Sum[T any](xs []T, selector func(T) float64) float64 {
	var total float64
	for _, x := range xs {
		total += selector(x)
	}
	return total
}

// CityLine joins a city and state the way an address block displays them:
// "City, ST" when both are present, whichever one exists otherwise.
func CityLine(city, state *string) string {
	parts := make([]string, 0, 2)
	if city != nil && *city != "" {
		parts = append(parts, *city)
	}
	if state != nil && *state != "" {
		parts = append(parts, *state)
	}
	return strings.Join(parts, ", ")
}
