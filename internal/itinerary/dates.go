package itinerary

import (
	"strings"
	"time"
)

// EnsureDates guarantees every expected date appears in the body,
// appending a templated day block for each missing one. A date counts
// as present in either its full "YYYY-MM-DD (DayN)" form or its bare
// short form. Running it twice is a no-op once all dates are present.
func EnsureDates(body, location string, start time.Time, days int) string {
	if days <= 0 {
		return body
	}

	full, short := ExpectedDates(start, days)

	out := strings.TrimRight(body, "\n")
	for i := range full {
		if strings.Contains(out, full[i]) || strings.Contains(out, short[i]) {
			continue
		}
		block := strings.Join(dayBlockLines(location, full[i]), "\n")
		if out != "" {
			out += "\n\n"
		}
		out += block
	}
	return out
}
