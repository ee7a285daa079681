package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"justgo/internal/models/request_models"
	"justgo/internal/oracle"
	mem "justgo/pkg/memcache"
	"justgo/pkg/utils"
)

const recommendReply = `관광지 추천:
1. 오죽헌 - 율곡 이이의 생가
2. 경포대 - 경포호가 내려다보이는 누각

맛집 추천:
1. 교동짬뽕 본점 - 짬뽕
2. 테라로사 커피공장 - 커피와 베이커리`

func newRecommendService(texts *fakeText, places *fakePlaces) (RecommendServiceInterface, *mem.Selections) {
	selections := mem.NewSelections()
	return NewRecommendService(texts, places, selections, zap.NewNop().Sugar()), selections
}

func TestExtractPlaces(t *testing.T) {
	sightseeing, restaurants := ExtractPlaces(recommendReply)
	require.Len(t, sightseeing, 2)
	require.Len(t, restaurants, 2)
	assert.Contains(t, sightseeing[0], "오죽헌")
	assert.Contains(t, restaurants[1], "테라로사")
}

func TestExtractPlacesIgnoresStrayLines(t *testing.T) {
	text := "서론 설명\n\n관광지 추천:\n1. 오죽헌 - 생가\n불릿 아님\n\n맛집 추천:\n1. 식당 - 메뉴"
	sightseeing, restaurants := ExtractPlaces(text)
	assert.Len(t, sightseeing, 1)
	assert.Len(t, restaurants, 1)
}

func TestPlaceName(t *testing.T) {
	assert.Equal(t, "교동짬뽕 본점", placeName("1. 교동짬뽕 본점 - 짬뽕"))
	assert.Equal(t, "오죽헌", placeName("12. 오죽헌"))
	assert.Equal(t, "", placeName("3. "))
}

func TestWantCategory(t *testing.T) {
	assert.True(t, wantCategory("아무식당", "음식점>한식", []string{"한식"}))
	assert.True(t, wantCategory("강릉 스시집", "", []string{"일식"}))
	assert.False(t, wantCategory("강릉 스시집", "음식점>일식", []string{"중식"}))
	assert.True(t, wantCategory("어디든", "무엇이든", nil))
	// unknown filter words fall back to substring match
	assert.True(t, wantCategory("비건 레스토랑", "", []string{"비건"}))
}

func TestAttractionsEnrichesPlaces(t *testing.T) {
	places := newFakePlaces()
	places.byQuery["오죽헌"] = oracle.Place{
		Name: "오죽헌", Address: "강릉시 율곡로3139번길 24", Lat: 37.77, Lng: 128.92,
	}
	places.blogs["오죽헌"] = 4321
	places.images["오죽헌"] = "https://blog.naver.com/x/ojukheon.jpg"

	svc, _ := newRecommendService(&fakeText{available: true, reply: recommendReply}, places)
	resp, err := svc.Attractions(context.Background(), request_models.RecommendRequest{Destination: "강릉"})
	require.NoError(t, err)
	require.Len(t, resp.Places, 2)

	first := resp.Places[0]
	assert.Equal(t, "오죽헌", first.Name)
	assert.Equal(t, "관광지", first.Category)
	assert.Equal(t, "강릉시 율곡로3139번길 24", first.Address)
	assert.Equal(t, 4321, first.ReviewCount)
	assert.Equal(t, "https://blog.naver.com/x/ojukheon.jpg", first.ImageURL)
	assert.Contains(t, first.NaverURL, "map.naver.com")

	// the second place had no search hit but still carries its link
	assert.Equal(t, "경포대", resp.Places[1].Name)
	assert.Contains(t, resp.Places[1].NaverURL, "map.naver.com")
}

func TestRestaurantsAppliesFoodFilter(t *testing.T) {
	places := newFakePlaces()
	places.byQuery["교동짬뽕 본점"] = oracle.Place{Name: "교동짬뽕 본점", Category: "음식점>중식"}
	places.byQuery["테라로사 커피공장"] = oracle.Place{Name: "테라로사 커피공장", Category: "카페,디저트"}

	svc, _ := newRecommendService(&fakeText{available: true, reply: recommendReply}, places)
	resp, err := svc.Restaurants(context.Background(), request_models.RecommendRequest{
		Destination:    "강릉",
		FoodCategories: []string{"중식"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Places, 1)
	assert.Equal(t, "교동짬뽕 본점", resp.Places[0].Name)
	assert.Equal(t, "음식점", resp.Places[0].Category)
}

func TestPlacesCombinesBothGroups(t *testing.T) {
	svc, _ := newRecommendService(&fakeText{available: true, reply: recommendReply}, newFakePlaces())
	resp, err := svc.Places(context.Background(), request_models.RecommendRequest{Destination: "강릉"})
	require.NoError(t, err)
	require.Len(t, resp.Places, 4)

	var categories []string
	for _, p := range resp.Places {
		categories = append(categories, p.Category)
	}
	assert.Equal(t, []string{"관광지", "관광지", "음식점", "음식점"}, categories)
}

func TestRecommendFallbackWithoutOracle(t *testing.T) {
	svc, _ := newRecommendService(&fakeText{}, newFakePlaces())
	resp, err := svc.Attractions(context.Background(), request_models.RecommendRequest{Destination: "강릉"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Places)
	assert.True(t, strings.HasPrefix(resp.Places[0].Name, "강릉"))
}

func TestRecommendRequiresDestination(t *testing.T) {
	svc, _ := newRecommendService(&fakeText{}, newFakePlaces())
	_, err := svc.Attractions(context.Background(), request_models.RecommendRequest{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSaveSelection(t *testing.T) {
	svc, selections := newRecommendService(&fakeText{}, newFakePlaces())

	err := svc.SaveSelection(request_models.SelectionRequest{
		Destination: "강릉",
		Category:    mem.CategoryAttraction,
		Places:      []string{"오죽헌"},
	})
	require.NoError(t, err)

	attr, _, _ := selections.Lookup("강릉")
	assert.Equal(t, []string{"오죽헌"}, attr)
}

func TestSaveSelectionValidates(t *testing.T) {
	svc, _ := newRecommendService(&fakeText{}, newFakePlaces())

	err := svc.SaveSelection(request_models.SelectionRequest{
		Destination: "강릉", Category: "nonsense", Places: []string{"x"},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	err = svc.SaveSelection(request_models.SelectionRequest{
		Category: mem.CategoryAttraction, Places: []string{"x"},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
