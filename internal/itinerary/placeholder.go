package itinerary

import (
	"context"
	"strings"

	"justgo/internal/oracle"
)

// categoryFor maps a placeholder line to the search category used to
// find a real place for it. Meal slots become restaurants, rest slots
// cafes, everything else attractions.
func categoryFor(l Line) string {
	switch {
	case l.Meal != "":
		return "맛집"
	case strings.Contains(l.Core, "카페"), strings.Contains(l.Core, "휴식"):
		return "카페"
	}
	return "관광지"
}

// ResolvePlaceholders swaps generic category words for real places
// found through local search. A line that already carries an address
// names a real place even when a category word appears in it, so only
// address-less placeholder lines are resolved. Resolution is best
// effort: a failed or empty lookup leaves the placeholder as written,
// and a place already used in this section is not used again.
func ResolvePlaceholders(ctx context.Context, places oracle.PlaceOracle, lines []Line, city string, taken map[string]bool) {
	if places == nil || city == "" {
		return
	}

	for i := range lines {
		l := &lines[i]
		if l.Kind != KindActivity || !l.IsPlaceholder() || l.Address != "" {
			continue
		}

		found, err := places.SearchPlace(ctx, city+" "+categoryFor(*l))
		if err != nil || found == nil || found.Name == "" {
			continue
		}
		key := strings.ToLower(normalizeSpaces(found.Name))
		if taken[key] {
			continue
		}

		l.Core = normalizeSpaces(found.Name)
		if found.Address != "" {
			l.Address = found.Address
		}
		taken[key] = true
	}
}

// FillAddresses looks up street addresses for activity lines missing
// one, typically after an edit swapped in a new place name.
func FillAddresses(ctx context.Context, places oracle.PlaceOracle, lines []Line, city string) {
	if places == nil || city == "" {
		return
	}

	for i := range lines {
		l := &lines[i]
		if l.Kind != KindActivity || l.Address != "" || l.IsPlaceholder() {
			continue
		}
		found, err := places.SearchPlace(ctx, city+" "+l.Core)
		if err != nil || found == nil || found.Address == "" {
			continue
		}
		l.Address = found.Address
	}
}

// takenKeys collects the dedup keys of all non-placeholder activity
// lines, the pool of names substitutions must avoid.
func takenKeys(lines []Line) map[string]bool {
	taken := make(map[string]bool)
	for _, l := range lines {
		if l.Kind != KindActivity || l.IsPlaceholder() {
			continue
		}
		if k := l.DedupKey(); k != "" {
			taken[k] = true
		}
	}
	return taken
}
