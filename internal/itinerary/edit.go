package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Rule-based edits answer the cheap, unambiguous chat requests without
// a model round trip. Anything these rules cannot parse falls through
// to the oracle.

var (
	swapPatternsEN = []*regexp.Regexp{
		regexp.MustCompile(`(?i)replace\s+(.+?)\s+with\s+(.+?)(?:[.!?]|$)`),
		regexp.MustCompile(`(?i)swap\s+(.+?)\s+for\s+(.+?)(?:[.!?]|$)`),
		regexp.MustCompile(`(?i)(.+?)\s+instead\s+of\s+(.+?)(?:[.!?]|$)`),
	}

	swapPatternsKR = []*regexp.Regexp{
		regexp.MustCompile(`(.+?)\s*대신(?:에)?\s*(.+?)(?:으로|로)?\s*(?:가|해|바꿔|교체|변경)`),
		regexp.MustCompile(`(.+?)[을를]\s*(.+?)[으로]?로\s*(?:바꿔|교체|변경)`),
	}

	hourRe = regexp.MustCompile(`(\d{1,2})\s*시`)

	lightDinnerRe = regexp.MustCompile(`저녁.*(가볍게|간단히|간단하게)|(가볍게|간단히|간단하게).*저녁`)

	shiftDinnerRe = regexp.MustCompile(`저녁.*(당겨|앞당겨|미뤄|늦춰|옮겨|시로)`)
)

// swapTarget parses "A를 B로 바꿔" style messages into from/to names.
// The EN shapes put the new place first for "instead of" only.
func swapTarget(message string) (from, to string, ok bool) {
	for _, re := range swapPatternsKR {
		if m := re.FindStringSubmatch(message); m != nil {
			return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
		}
	}
	for i, re := range swapPatternsEN {
		if m := re.FindStringSubmatch(message); m != nil {
			if i == 2 { // "B instead of A"
				return strings.TrimSpace(m[2]), strings.TrimSpace(m[1]), true
			}
			return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
		}
	}
	return "", "", false
}

// ShiftSpan moves a span to a new start hour, keeping the duration.
func ShiftSpan(s Span, startHour int) Span {
	d := s.Duration()
	start := startHour * 60
	return Span{Start: start, End: start + d}
}

// ApplyRules tries the rule set against one itinerary body. It returns
// the user-facing reply and the rewritten body; applied reports
// whether any rule matched, and a false value means the caller should
// consult the oracle instead.
func ApplyRules(body, message string) (reply, updated string, applied bool) {
	lines := ParseLines(body)

	if from, to, ok := swapTarget(message); ok && from != "" && to != "" {
		changed := false
		for i := range lines {
			l := &lines[i]
			if l.Kind != KindActivity {
				continue
			}
			if strings.Contains(l.Core, from) {
				l.Core = normalizeSpaces(to)
				l.Address = ""
				l.Cost = -1
				changed = true
			}
		}
		if changed {
			return fmt.Sprintf("%s 일정을 %s(으)로 바꿨어요.", from, to),
				RenderLines(lines), true
		}
		// No line names that place. Loose messages like "저녁을
		// 20시로 바꿔줘" also parse as swaps, so try the other rules
		// before giving the oracle a turn.
	}

	if lightDinnerRe.MatchString(message) {
		changed := false
		for i := range lines {
			l := &lines[i]
			if l.Kind == KindActivity && l.Meal == MealDinner {
				l.Core = "가벼운 간단식"
				l.Address = ""
				l.Cost = 8000
				changed = true
			}
		}
		if changed {
			return "저녁을 가벼운 메뉴로 바꿨어요.", RenderLines(lines), true
		}
	}

	if shiftDinnerRe.MatchString(message) {
		if hm := hourRe.FindStringSubmatch(message); hm != nil {
			hour, err := strconv.Atoi(hm[1])
			if err == nil && hour >= 0 && hour <= 23 {
				changed := false
				for i := range lines {
					l := &lines[i]
					if l.Kind == KindActivity && l.Meal == MealDinner {
						l.Span = ShiftSpan(l.Span, hour)
						changed = true
					}
				}
				if changed {
					return fmt.Sprintf("저녁 일정을 %d시로 옮겼어요.", hour),
						RenderLines(lines), true
				}
			}
		}
	}

	return "", body, false
}
