package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"justgo/internal/models/request_models"
)

func TestBuildPlanPromptListsAllDates(t *testing.T) {
	prompt := BuildPlanPrompt(request_models.ScheduleRequest{
		Location:   "강릉",
		Days:       3,
		Style:      "맛집 탐방",
		Companions: []string{"연인"},
		Budget:     300000,
		TravelDate: "2025-08-13",
		Count:      3,
	})

	assert.Contains(t, prompt, "2025-08-13")
	assert.Contains(t, prompt, "2025-08-14")
	assert.Contains(t, prompt, "2025-08-15")
	assert.Contains(t, prompt, "3개의 서로 다른 일정안")
	assert.Contains(t, prompt, "300,000원")
	assert.Contains(t, prompt, "일정추천 1: 강릉 3일 코스")
	assert.Contains(t, prompt, "08:00 ~ 09:30 아침:")
	assert.Contains(t, prompt, "19:00 ~ 20:30 저녁:")
}

func TestBuildPlanPromptDefaults(t *testing.T) {
	prompt := BuildPlanPrompt(request_models.ScheduleRequest{
		Location: "부산",
		Days:     2,
	})
	assert.Contains(t, prompt, "자유 여행")
	assert.Contains(t, prompt, "없음")
	assert.Contains(t, prompt, "3개의 서로 다른 일정안")
}

func TestBuildPlanPromptSelectedPlaces(t *testing.T) {
	prompt := BuildPlanPrompt(request_models.ScheduleRequest{
		Location:       "강릉",
		Days:           1,
		SelectedPlaces: []string{"오죽헌", "테라로사"},
		TravelDate:     "2025-08-13",
	})
	assert.Contains(t, prompt, "- 오죽헌")
	assert.Contains(t, prompt, "- 테라로사")
}

func TestBuildRecommendPrompt(t *testing.T) {
	prompt := BuildRecommendPrompt(request_models.RecommendRequest{
		Destination: "강릉",
		Dates:       []string{"2025-08-13", "2025-08-14"},
		Styles:      []string{"맛집 탐방"},
		Companions:  []string{"친구"},
		Budget:      200000,
	})
	assert.Contains(t, prompt, "강릉")
	assert.Contains(t, prompt, "2일")
	assert.Contains(t, prompt, "관광지 추천:")
	assert.Contains(t, prompt, "맛집 추천:")
}

func TestBuildChatUserPrompt(t *testing.T) {
	prompt := BuildChatUserPrompt(request_models.ChatRequest{
		Message:        "저녁을 가볍게",
		ItineraryIndex: 1,
		ItineraryText:  "일정 본문",
		Context:        &request_models.ChatContext{Budget: 300000},
	})
	assert.Contains(t, prompt, "[선택 인덱스] 1")
	assert.Contains(t, prompt, "일정 본문")
	assert.Contains(t, prompt, "저녁을 가볍게")
	assert.Contains(t, prompt, "300,000")

	empty := BuildChatUserPrompt(request_models.ChatRequest{Message: "m"})
	assert.Contains(t, empty, "(없음)")
	assert.Contains(t, empty, "알 수 없음")
}
