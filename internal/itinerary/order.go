package itinerary

import "sort"

// OrderSlots sorts the activity lines of each contiguous activity run
// by start time and pushes a span that overlaps its predecessor back
// to start where the predecessor ends, keeping its duration. Date
// headers and prose lines stay where they are, so ordering never
// crosses a day boundary.
func OrderSlots(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	block := make([]Line, 0, 8)

	flush := func() {
		sort.SliceStable(block, func(i, j int) bool {
			return block[i].Span.Start < block[j].Span.Start
		})
		for i := 1; i < len(block); i++ {
			prev := block[i-1].Span
			if block[i].Span.Overlaps(prev) {
				d := block[i].Span.Duration()
				block[i].Span = Span{Start: prev.End, End: prev.End + d}
			}
		}
		out = append(out, block...)
		block = block[:0]
	}

	for _, l := range lines {
		if l.Kind == KindActivity {
			block = append(block, l)
			continue
		}
		flush()
		out = append(out, l)
	}
	flush()
	return out
}
