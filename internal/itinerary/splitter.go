package itinerary

import (
	"fmt"
	"regexp"
	"strings"
)

// Section is one candidate itinerary. Body is rewritten in place by
// every pipeline stage until the response is serialized.
type Section struct {
	Title string
	Body  string
}

var (
	codeFenceOpenRe  = regexp.MustCompile("^```[a-zA-Z]*\n")
	codeFenceCloseRe = regexp.MustCompile("\n```$")

	// Heading matchers in decreasing strictness: explicit label,
	// markdown heading, bold wrapper.
	sectionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(일정추천\s*\d+\s*[:：]\s*[^\n]+)`),
		regexp.MustCompile(`(?m)^#+\s*(일정추천\s*\d+\s*[:：]?\s*[^\n]+)`),
		regexp.MustCompile(`(?m)^\*\*\s*(일정추천\s*\d+\s*[:：]?\s*[^\n]+?)\s*\*\*`),
	}

	hrSplitRe = regexp.MustCompile(`\n\s*---\s*\n`)
)

// NormalizeText strips carriage returns and a wrapping code fence;
// the oracle sometimes fences the whole document.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSpace(text)
	text = codeFenceOpenRe.ReplaceAllString(text, "")
	text = codeFenceCloseRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func extractSections(text string) []Section {
	for _, pat := range sectionPatterns {
		matches := pat.FindAllStringSubmatchIndex(text, -1)
		if len(matches) == 0 {
			continue
		}
		sections := make([]Section, 0, len(matches))
		for i, m := range matches {
			title := strings.TrimSpace(text[m[2]:m[3]])
			start := m[1]
			end := len(text)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}
			sections = append(sections, Section{
				Title: title,
				Body:  strings.TrimSpace(text[start:end]),
			})
		}
		return sections
	}

	// Fallback: horizontal-rule separated chunks.
	chunks := hrSplitRe.Split(text, -1)
	if len(chunks) >= 2 {
		sections := make([]Section, 0, len(chunks))
		for i, ch := range chunks {
			ch = strings.TrimSpace(ch)
			if ch == "" {
				continue
			}
			sections = append(sections, Section{
				Title: fmt.Sprintf("일정추천 %d", i+1),
				Body:  ch,
			})
		}
		return sections
	}

	return nil
}

// SplitSections breaks the oracle's raw document into exactly
// req.Count sections, synthesizing sample itineraries for any
// shortfall and truncating any excess. It never fails: an empty or
// unusable document yields req.Count synthesized sections.
func SplitSections(raw string, req Request) []Section {
	text := NormalizeText(raw)

	var sections []Section
	if text != "" {
		sections = extractSections(text)
	}

	count := req.Count
	if count <= 0 {
		count = 3
	}

	if len(sections) > count {
		sections = sections[:count]
	}
	for len(sections) < count {
		idx := len(sections) + 1
		title := SampleTitle(req.Location, req.Days, idx)
		sections = append(sections, Section{
			Title: title,
			Body:  BuildSampleItinerary(req.Location, req.TravelDate, req.Days, title),
		})
	}
	return sections
}
