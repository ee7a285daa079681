package itinerary

import (
	"fmt"
	"strings"
	"time"
)

// Request is the plan-generation context threaded through the
// pipeline. Days == 0 means the date range is unknown (chat edits on
// bodies whose range was never supplied) and the date enforcer is
// skipped.
type Request struct {
	Location       string
	Days           int
	Style          string
	Companions     []string
	Budget         int
	SelectedPlaces []string
	TravelDate     string // YYYY-MM-DD
	Count          int
}

func (r Request) StartDate() (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(r.TravelDate))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// slot is one row of the canonical daily layout. The five spans are
// fixed across the whole pipeline; Label is empty for attraction slots.
type slot struct {
	Span  Span
	Label string
}

func canonicalSlots() []slot {
	return []slot{
		{Span{8 * 60, 9*60 + 30}, MealBreakfast},
		{Span{9*60 + 30, 12 * 60}, ""},
		{Span{12 * 60, 13*60 + 30}, MealLunch},
		{Span{14 * 60, 18 * 60}, ""},
		{Span{19 * 60, 20*60 + 30}, MealDinner},
	}
}

// ExpectedDates returns the full "YYYY-MM-DD (DayN)" labels and the
// bare short forms for the request's date range.
func ExpectedDates(start time.Time, days int) (full, short []string) {
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		s := d.Format("2006-01-02")
		short = append(short, s)
		full = append(full, fmt.Sprintf("%s (Day%d)", s, i+1))
	}
	return full, short
}

// dayBlockLines builds the templated day block appended for a missing
// date: the header plus the five canonical slots with generic,
// city-tagged activity names. The generic names are placeholders by
// construction and get resolved to real places downstream.
func dayBlockLines(location, fullDate string) []string {
	slots := canonicalSlots()
	placeholderNames := []string{
		location + " 카페",
		location + " 주요명소",
		location + " 맛집",
		location + " 체험/산책",
		location + " 식당",
	}
	fallbacks := []int{10000, 0, 14000, 0, 18000}

	lines := []string{fullDate}
	for i, s := range slots {
		label := ""
		if s.Label != "" {
			label = s.Label + ": "
		}
		lines = append(lines, fmt.Sprintf("%s %s%s (약 %s원)",
			s.Span.String(), label, placeholderNames[i], FormatWon(fallbacks[i])))
	}
	return lines
}

// BuildSampleItinerary synthesizes a complete section body used
// whenever the oracle produced nothing usable.
func BuildSampleItinerary(location, travelDate string, days int, title string) string {
	start, err := time.Parse("2006-01-02", strings.TrimSpace(travelDate))
	if err != nil {
		start = time.Now()
	}

	full, _ := ExpectedDates(start, days)
	lines := []string{title, ""}
	for _, fd := range full {
		lines = append(lines, dayBlockLines(location, fd)...)
		lines = append(lines, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func SampleTitle(location string, days, index int) string {
	return fmt.Sprintf("일정추천 %d: %s %d일 코스", index, location, days)
}
