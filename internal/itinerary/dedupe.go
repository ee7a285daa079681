package itinerary

import (
	"context"

	"justgo/internal/oracle"
)

// SubstituteRepeats rewrites every repeat of an already-seen place with
// a fresh candidate from the pools, re-resolving the address for the
// substitute. With sectionWide set the seen set spans the whole
// section, so a place visited on day one cannot reappear on day three;
// otherwise it resets at each date header. When the matching pool runs
// dry the repeat is left in place; exact collapse handles it later if
// the time slot also matches.
func SubstituteRepeats(ctx context.Context, places oracle.PlaceOracle, lines []Line, city string, pools *Pools, sectionWide bool) {
	seen := make(map[string]bool)
	for i := range lines {
		l := &lines[i]
		if l.Kind == KindDateHeader && !sectionWide {
			seen = make(map[string]bool)
			continue
		}
		if l.Kind != KindActivity {
			continue
		}
		key := l.DedupKey()
		if key == "" {
			continue
		}
		if !seen[key] {
			seen[key] = true
			continue
		}

		cand := pools.Next(l.Meal, seen)
		if cand == "" {
			continue
		}

		l.Core = normalizeSpaces(cand)
		l.Address = ""
		if places != nil && city != "" {
			if found, err := places.SearchPlace(ctx, city+" "+cand); err == nil && found != nil {
				l.Address = found.Address
			}
		}
		seen[l.DedupKey()] = true
	}
}

// CollapseExact removes lines that repeat both the time span and the
// place within one day block. The seen set resets at each date header,
// so the same slot on different days is untouched.
func CollapseExact(lines []Line) []Line {
	out := lines[:0]
	seen := make(map[string]bool)
	for _, l := range lines {
		switch l.Kind {
		case KindDateHeader:
			seen = make(map[string]bool)
		case KindActivity:
			key := l.Span.String() + "|" + l.DedupKey()
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		out = append(out, l)
	}
	return out
}
