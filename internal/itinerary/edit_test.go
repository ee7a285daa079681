package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const editBody = `일정추천 1: 강릉 2일 코스
2025-08-13 (Day1)
08:00 ~ 09:30 아침: 초당할머니순두부 (강릉시 초당순두부길 77) (약 10,000원)
09:30 ~ 12:00 오죽헌 (강릉시 율곡로3139번길 24) (약 3,000원)
12:00 ~ 13:30 점심: 교동짬뽕 본점 (강릉시 경강로 2092) (약 12,000원)
14:00 ~ 18:00 경포대 (강릉시 경포로 365) (약 0원)
19:00 ~ 20:30 저녁: 엄지네포장마차 (강릉시 경강로2255번길 21) (약 25,000원)`

func TestApplyRulesSwapKorean(t *testing.T) {
	reply, updated, ok := ApplyRules(editBody, "오죽헌 대신 선교장으로 바꿔줘")
	require.True(t, ok)
	assert.Contains(t, reply, "오죽헌")
	assert.Contains(t, updated, "선교장")
	assert.NotContains(t, updated, "오죽헌")
	// the stale address and cost are dropped for re-resolution
	assert.Contains(t, updated, "09:30 ~ 12:00 선교장\n")
	// untouched lines keep their addresses
	assert.Contains(t, updated, "경포로 365")
}

func TestApplyRulesSwapKoreanObjectForm(t *testing.T) {
	_, updated, ok := ApplyRules(editBody, "경포대를 주문진 방파제로 변경해줘")
	require.True(t, ok)
	assert.Contains(t, updated, "주문진 방파제")
	assert.NotContains(t, updated, "14:00 ~ 18:00 경포대")
}

func TestApplyRulesSwapEnglish(t *testing.T) {
	_, updated, ok := ApplyRules(editBody, "replace 오죽헌 with 선교장")
	require.True(t, ok)
	assert.Contains(t, updated, "선교장")
}

func TestApplyRulesSwapMissingPlaceFallsThrough(t *testing.T) {
	// the named place is not in the body and no other rule fits, so
	// the request goes to the oracle
	_, updated, ok := ApplyRules(editBody, "설악산 대신 선교장으로 바꿔줘")
	assert.False(t, ok)
	assert.Equal(t, editBody, updated)
}

func TestApplyRulesSwapShapedShiftStillShifts(t *testing.T) {
	// "저녁을 20시로 바꿔줘" parses as a swap of 저녁 for 20시, which
	// replaces nothing; the time-shift rule must still get its turn
	_, updated, ok := ApplyRules(editBody, "저녁을 20시로 바꿔줘")
	require.True(t, ok)
	assert.Contains(t, updated, "20:00 ~ 21:30 저녁: 엄지네포장마차")
	assert.NotContains(t, updated, "19:00 ~ 20:30")
}

func TestApplyRulesLightenDinner(t *testing.T) {
	reply, updated, ok := ApplyRules(editBody, "저녁을 좀 가볍게 먹고 싶어")
	require.True(t, ok)
	assert.Contains(t, reply, "가벼운")
	assert.Contains(t, updated, "가벼운 간단식")
	assert.Contains(t, updated, "약 8,000원")
	assert.NotContains(t, updated, "엄지네포장마차")
}

func TestApplyRulesShiftDinner(t *testing.T) {
	_, updated, ok := ApplyRules(editBody, "저녁을 18시로 당겨줘")
	require.True(t, ok)
	assert.Contains(t, updated, "18:00 ~ 19:30 저녁: 엄지네포장마차")
	assert.NotContains(t, updated, "19:00 ~ 20:30")
}

func TestApplyRulesNoMatchFallsThrough(t *testing.T) {
	_, updated, ok := ApplyRules(editBody, "전체적으로 더 여유로운 일정으로 다시 짜줘")
	assert.False(t, ok)
	assert.Equal(t, editBody, updated)
}

func TestShiftSpanKeepsDuration(t *testing.T) {
	s := ShiftSpan(Span{Start: 19 * 60, End: 20*60 + 30}, 18)
	assert.Equal(t, "18:00 ~ 19:30", s.String())
}

func TestApplyRulesRendersAllLines(t *testing.T) {
	_, updated, ok := ApplyRules(editBody, "replace 오죽헌 with 선교장")
	require.True(t, ok)
	assert.Equal(t, len(strings.Split(editBody, "\n")), len(strings.Split(updated, "\n")))
}
