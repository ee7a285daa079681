package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() Request {
	return Request{
		Location:   "강릉",
		Days:       2,
		Budget:     300000,
		TravelDate: "2025-08-13",
		Count:      3,
	}
}

func TestSplitSectionsExplicitHeaders(t *testing.T) {
	raw := strings.Join([]string{
		"일정추천 1: 강릉 2일 코스",
		"2025-08-13 (Day1)",
		"08:00 ~ 09:30 아침: 초당할머니순두부 (강릉시 초당순두부길 77) (약 10,000원)",
		"",
		"일정추천 2: 강릉 2일 코스",
		"본문 2",
		"",
		"일정추천 3: 강릉 2일 코스",
		"본문 3",
	}, "\n")

	sections := SplitSections(raw, testRequest())
	require.Len(t, sections, 3)
	assert.Equal(t, "일정추천 1: 강릉 2일 코스", sections[0].Title)
	assert.Contains(t, sections[0].Body, "초당할머니순두부")
	assert.Contains(t, sections[2].Body, "본문 3")
}

func TestSplitSectionsMarkdownHeaders(t *testing.T) {
	raw := "## 일정추천 1: 강릉 2일 코스\n내용1\n## 일정추천 2: 강릉 2일 코스\n내용2\n## 일정추천 3: 강릉 2일 코스\n내용3"
	sections := SplitSections(raw, testRequest())
	require.Len(t, sections, 3)
	assert.Contains(t, sections[1].Body, "내용2")
}

func TestSplitSectionsHorizontalRuleFallback(t *testing.T) {
	raw := "첫 일정 본문\n\n---\n\n둘째 일정 본문\n\n---\n\n셋째 일정 본문"
	sections := SplitSections(raw, testRequest())
	require.Len(t, sections, 3)
	assert.Equal(t, "일정추천 1", sections[0].Title)
	assert.Contains(t, sections[2].Body, "셋째 일정 본문")
}

func TestSplitSectionsSynthesizesShortfall(t *testing.T) {
	raw := "일정추천 1: 강릉 2일 코스\n2025-08-13 (Day1)\n08:00 ~ 09:30 아침: 어딘가 (약 10,000원)"
	sections := SplitSections(raw, testRequest())
	require.Len(t, sections, 3)

	// synthesized sections carry the full canonical day layout
	assert.Contains(t, sections[1].Body, "2025-08-13 (Day1)")
	assert.Contains(t, sections[1].Body, "2025-08-14 (Day2)")
	assert.Contains(t, sections[2].Body, "08:00 ~ 09:30")
	assert.Contains(t, sections[2].Body, "19:00 ~ 20:30")
}

func TestSplitSectionsEmptyInput(t *testing.T) {
	sections := SplitSections("", testRequest())
	require.Len(t, sections, 3)
	for i, sec := range sections {
		assert.NotEmpty(t, sec.Title, i)
		assert.Contains(t, sec.Body, "2025-08-13")
	}
}

func TestSplitSectionsTruncatesExcess(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		b.WriteString("일정추천 ")
		b.WriteString(string(rune('0' + i)))
		b.WriteString(": 강릉 2일 코스\n본문\n")
	}
	sections := SplitSections(b.String(), testRequest())
	assert.Len(t, sections, 3)
}

func TestNormalizeTextStripsFenceAndCR(t *testing.T) {
	raw := "```text\n일정추천 1: 코스\r\n본문\n```"
	out := NormalizeText(raw)
	assert.Equal(t, "일정추천 1: 코스\n본문", out)
}
