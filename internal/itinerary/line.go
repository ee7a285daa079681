// Package itinerary normalizes free-form LLM itinerary text into a
// structurally valid, deduplicated, cost-consistent document. Every
// stage consumes the typed Line records produced here instead of
// re-matching the raw text.
package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type LineKind int

const (
	KindOther LineKind = iota
	KindDateHeader
	KindActivity
)

var (
	dateHeaderRe = regexp.MustCompile(`^\s*(\d{4}-\d{2}-\d{2})\s*\(([^)]*)\)`)
	activityRe   = regexp.MustCompile(`^\s*(\d{2}):(\d{2})\s*~\s*(\d{2}):(\d{2})\s+(.+?)\s*$`)

	// Road-address shaped parenthesized group: some token must end in
	// a Korean administrative/road suffix with more content after it
	// ("강릉시 경강로 2092"), so a trailing syllable in a prose note
	// ("야외 전시") does not qualify.
	addressRe = regexp.MustCompile(`\(([^()]*[로길구시도동읍면]\s+[^()]+)\)`)

	costRe = regexp.MustCompile(`(?:약\s*)?(\d{1,3}(?:,\d{3})+|\d+)\s*원`)

	mealPrefixRe = regexp.MustCompile(`^(아침|점심|저녁|브런치|런치|디너)\s*[:：]?\s*`)

	// Generic category words that stand in for a real place name.
	placeholderRe = regexp.MustCompile(`(주요명소|명소|관광지|관광|체험|산책|카페|휴식|식당|맛집|점심|저녁|아침)`)

	totalCostRe = regexp.MustCompile(`총\s*예상\s*비용[^\n]*원[^\n]*`)
)

const (
	MealBreakfast = "아침"
	MealLunch     = "점심"
	MealDinner    = "저녁"
)

// Span is a half-open [start, end) interval in minutes since midnight.
type Span struct {
	Start int
	End   int
}

func (s Span) Duration() int {
	d := s.End - s.Start
	if d <= 0 {
		return 90
	}
	return d
}

func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%02d:%02d ~ %02d:%02d", s.Start/60, s.Start%60, s.End/60, s.End%60)
}

// Line is one classified body line. Activity lines are decomposed once
// here and re-rendered by Render after the pipeline mutates them.
type Line struct {
	Kind LineKind
	Raw  string

	// date header fields
	Date string // YYYY-MM-DD

	// activity fields
	Span         Span
	Meal         string // 아침/점심/저녁, empty when neither labeled nor inferable
	MealExplicit bool   // label was written in the text
	Core         string // place name, meal label stripped, whitespace normalized
	Address      string
	Cost         int // -1 when absent
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// inferMeal applies the time-of-day heuristic for unlabeled lines. The
// windows deliberately exclude the canonical attraction slots starting
// at 09:30 and 14:00.
func inferMeal(startMin int) string {
	switch {
	case startMin >= 7*60 && startMin < 9*60+30:
		return MealBreakfast
	case startMin >= 11*60+30 && startMin < 14*60:
		return MealLunch
	case startMin >= 18*60 && startMin < 21*60+30:
		return MealDinner
	}
	return ""
}

func ParseLine(raw string) Line {
	if m := dateHeaderRe.FindStringSubmatch(raw); m != nil {
		return Line{Kind: KindDateHeader, Raw: raw, Date: m[1]}
	}

	m := activityRe.FindStringSubmatch(raw)
	if m == nil {
		return Line{Kind: KindOther, Raw: raw}
	}

	sh, _ := strconv.Atoi(m[1])
	sm, _ := strconv.Atoi(m[2])
	eh, _ := strconv.Atoi(m[3])
	em, _ := strconv.Atoi(m[4])
	rest := m[5]

	l := Line{
		Kind: KindActivity,
		Raw:  raw,
		Span: Span{Start: sh*60 + sm, End: eh*60 + em},
		Cost: -1,
	}

	// Core is everything before the first parenthesis, meal label off.
	core := rest
	if i := strings.Index(core, "("); i >= 0 {
		core = core[:i]
	}
	if mm := mealPrefixRe.FindStringSubmatch(core); mm != nil {
		switch mm[1] {
		case "브런치":
			l.Meal = MealBreakfast
		case "런치":
			l.Meal = MealLunch
		case "디너":
			l.Meal = MealDinner
		default:
			l.Meal = mm[1]
		}
		l.MealExplicit = true
		core = core[len(mm[0]):]
	}
	l.Core = normalizeSpaces(core)

	if l.Meal == "" {
		l.Meal = inferMeal(l.Span.Start)
	}

	if am := addressRe.FindStringSubmatch(rest); am != nil {
		l.Address = strings.TrimSpace(am[1])
	}
	if cm := costRe.FindStringSubmatch(rest); cm != nil {
		if v, err := strconv.Atoi(strings.ReplaceAll(cm[1], ",", "")); err == nil {
			l.Cost = v
		}
	}

	return l
}

func ParseLines(body string) []Line {
	raw := strings.Split(body, "\n")
	lines := make([]Line, 0, len(raw))
	for _, r := range raw {
		lines = append(lines, ParseLine(r))
	}
	return lines
}

// DedupKey is the identity used by the duplicate resolver:
// meal-label-stripped, whitespace-normalized, lowercased core.
func (l Line) DedupKey() string {
	return strings.ToLower(normalizeSpaces(l.Core))
}

// IsPlaceholder reports whether the core is a generic category word
// rather than a real proper noun.
func (l Line) IsPlaceholder() bool {
	if l.Kind != KindActivity {
		return false
	}
	return placeholderRe.MatchString(l.Core)
}

// Render rebuilds the textual form of a line from its fields. Other
// and date-header lines pass through verbatim.
func (l Line) Render() string {
	if l.Kind != KindActivity {
		return l.Raw
	}

	var b strings.Builder
	b.WriteString(l.Span.String())
	b.WriteString(" ")
	if l.MealExplicit && l.Meal != "" {
		b.WriteString(l.Meal)
		b.WriteString(": ")
	}
	b.WriteString(l.Core)
	if l.Address != "" {
		b.WriteString(" (")
		b.WriteString(l.Address)
		b.WriteString(")")
	}
	if l.Cost >= 0 {
		b.WriteString(" (약 ")
		b.WriteString(FormatWon(l.Cost))
		b.WriteString("원)")
	}
	return b.String()
}

func RenderLines(lines []Line) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Render())
	}
	return strings.Join(out, "\n")
}

// FormatWon inserts thousands separators, e.g. 12000 -> "12,000".
func FormatWon(v int) string {
	s := strconv.Itoa(v)
	if v < 0 {
		return s
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
