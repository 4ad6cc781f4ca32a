// Package recipeschema extracts schema.org Recipe structured data from web
// pages and normalizes it into the importable recipe shape.
package recipeschema

import (
	"regexp"
	"strconv"
)

var durationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseMinutes converts an ISO-8601 style duration such as "PT1H30M" to
// whole minutes. Seconds are ignored; durations are cosmetic metadata, so
// malformed or zero durations report not ok instead of an error.
func ParseMinutes(s string) (int, bool) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	total := hours*60 + minutes
	if total == 0 {
		return 0, false
	}
	return total, true
}
