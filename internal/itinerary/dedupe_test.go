package itinerary

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justgo/internal/oracle"
)

func TestSubstituteRepeatsAcrossDays(t *testing.T) {
	fake := newFakePlaces()
	fake.add("강릉 경포대", oracle.Place{Name: "경포대", Address: "강릉시 경포로 365"})

	body := strings.Join([]string{
		"2025-08-13 (Day1)",
		"09:30 ~ 12:00 오죽헌 (약 3,000원)",
		"2025-08-14 (Day2)",
		"09:30 ~ 12:00 오죽헌 (약 3,000원)",
	}, "\n")
	lines := ParseLines(body)
	pools := &Pools{attractions: []string{"경포대"}}

	SubstituteRepeats(context.Background(), fake, lines, "강릉", pools, true)

	assert.Equal(t, "오죽헌", lines[1].Core)
	assert.Equal(t, "경포대", lines[3].Core)
	assert.Equal(t, "강릉시 경포로 365", lines[3].Address)
}

func TestSubstituteRepeatsUsesRestaurantPoolForMeals(t *testing.T) {
	body := strings.Join([]string{
		"12:00 ~ 13:30 점심: 맛나식당 (약 12,000원)",
		"19:00 ~ 20:30 저녁: 맛나식당 (약 15,000원)",
	}, "\n")
	lines := ParseLines(body)
	pools := &Pools{
		attractions: []string{"경포대"},
		restaurants: []string{"서지초가뜰"},
	}

	SubstituteRepeats(context.Background(), newFakePlaces(), lines, "강릉", pools, true)
	assert.Equal(t, "서지초가뜰", lines[1].Core)
	assert.Equal(t, []string{"경포대"}, pools.attractions)
}

func TestSubstituteRepeatsLeavesLineWhenPoolDry(t *testing.T) {
	body := "09:30 ~ 12:00 오죽헌\n14:00 ~ 18:00 오죽헌"
	lines := ParseLines(body)

	SubstituteRepeats(context.Background(), newFakePlaces(), lines, "강릉", &Pools{}, true)
	assert.Equal(t, "오죽헌", lines[1].Core)
}

func TestSubstituteRepeatsPerDayScope(t *testing.T) {
	body := strings.Join([]string{
		"2025-08-13 (Day1)",
		"09:30 ~ 12:00 오죽헌",
		"2025-08-14 (Day2)",
		"09:30 ~ 12:00 오죽헌",
	}, "\n")
	lines := ParseLines(body)
	pools := &Pools{attractions: []string{"경포대"}}

	SubstituteRepeats(context.Background(), newFakePlaces(), lines, "강릉", pools, false)

	// day-scoped: the repeat on another day is allowed
	assert.Equal(t, "오죽헌", lines[3].Core)
	assert.Len(t, pools.attractions, 1)
}

func TestCollapseExactWithinDay(t *testing.T) {
	body := strings.Join([]string{
		"2025-08-13 (Day1)",
		"09:30 ~ 12:00 오죽헌 (약 3,000원)",
		"09:30 ~ 12:00 오죽헌 (약 3,000원)",
		"14:00 ~ 18:00 오죽헌 (약 3,000원)",
	}, "\n")
	lines := CollapseExact(ParseLines(body))
	require.Len(t, lines, 3)

	// different span, same place: kept for the substituter to handle
	assert.Equal(t, "오죽헌", lines[2].Core)
}

func TestCollapseExactResetsAtDateHeader(t *testing.T) {
	body := strings.Join([]string{
		"2025-08-13 (Day1)",
		"09:30 ~ 12:00 오죽헌",
		"2025-08-14 (Day2)",
		"09:30 ~ 12:00 오죽헌",
	}, "\n")
	lines := CollapseExact(ParseLines(body))
	assert.Len(t, lines, 4)
}
