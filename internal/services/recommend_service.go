package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"justgo/internal/models/request_models"
	"justgo/internal/models/response_models"
	"justgo/internal/oracle"
	mem "justgo/pkg/memcache"
	"justgo/pkg/utils"
)

const (
	categoryAttraction = "관광지"
	categoryRestaurant = "음식점"
)

// foodBroad maps the six filterable cuisine buckets to keywords
// matched against a place's name and Naver category string.
var foodBroad = map[string][]string{
	"한식":    {"한식", "백반", "한정식", "국밥", "비빔밥", "갈비", "불고기", "냉면", "순대", "곱창", "족발", "막창", "삼겹", "한우", "곰탕", "칼국수", "전골"},
	"양식":    {"양식", "스테이크", "파스타", "피자", "브런치", "버거", "샐러드", "그릴", "비스트로", "수제버거", "리조또", "스페인", "이탈리안"},
	"중식":    {"중식", "짜장", "자장", "짬뽕", "탕수육", "중화", "딤섬", "마라", "훠궈", "양꼬치", "마라탕", "마라상궈"},
	"일식":    {"일식", "스시", "초밥", "오마카세", "라멘", "우동", "돈카츠", "텐동", "야키니쿠", "사시미", "이자카야"},
	"카페":    {"카페", "디저트", "커피", "베이커리", "케이크", "빵집", "브런치카페", "티룸", "dessert", "coffee", "bakery"},
	"패스트푸드": {"분식", "떡볶이", "김밥", "라볶이", "튀김", "순대", "치킨", "피자", "버거", "핫도그", "샌드위치", "kfc", "맥도날드", "롯데리아"},
}

var numberedLineRe = regexp.MustCompile(`^\d+\.\s*`)

type RecommendServiceInterface interface {
	Attractions(ctx context.Context, req request_models.RecommendRequest) (*response_models.RecommendResponse, error)
	Restaurants(ctx context.Context, req request_models.RecommendRequest) (*response_models.RecommendResponse, error)

	// Places returns attractions and restaurants together for the
	// legacy single-call frontend.
	Places(ctx context.Context, req request_models.RecommendRequest) (*response_models.RecommendResponse, error)

	// SaveSelection pins places for a destination; CreatePlan seeds
	// its substitution pools from them.
	SaveSelection(req request_models.SelectionRequest) error
}

type RecommendService struct {
	texts      oracle.TextOracle
	places     oracle.PlaceOracle
	selections mem.SelectionStore
	log        *zap.SugaredLogger
}

func NewRecommendService(
	texts oracle.TextOracle,
	places oracle.PlaceOracle,
	selections mem.SelectionStore,
	log *zap.SugaredLogger,
) RecommendServiceInterface {
	return &RecommendService{texts: texts, places: places, selections: selections, log: log}
}

// ExtractPlaces splits a recommendation reply into the numbered lines
// under the attraction and restaurant headers.
func ExtractPlaces(text string) (sightseeing, restaurants []string) {
	current := ""
	for _, line := range strings.Split(text, "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		if strings.Contains(s, "관광지") && !numberedLineRe.MatchString(s) {
			current = "sight"
			continue
		}
		if strings.Contains(s, "맛집") && !numberedLineRe.MatchString(s) {
			current = "rest"
			continue
		}
		if !numberedLineRe.MatchString(s) {
			continue
		}
		switch current {
		case "sight":
			sightseeing = append(sightseeing, s)
		case "rest":
			restaurants = append(restaurants, s)
		}
	}
	return sightseeing, restaurants
}

// placeName strips the list number and the trailing description from
// one extracted line: "1. 교동짬뽕 본점 - 짬뽕" -> "교동짬뽕 본점".
func placeName(raw string) string {
	s := numberedLineRe.ReplaceAllString(strings.TrimSpace(raw), "")
	if i := strings.Index(s, "-"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func guessBroadCategory(name, category string) string {
	s := strings.ToLower(name + " " + category)
	for broad, kws := range foodBroad {
		for _, kw := range kws {
			if strings.Contains(s, strings.ToLower(kw)) {
				return broad
			}
		}
	}
	return ""
}

// wantCategory reports whether a restaurant passes the requested
// cuisine filter. No filter means everything passes; unknown filter
// words fall back to substring matching.
func wantCategory(name, category string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	broad := guessBroadCategory(name, category)
	if broad != "" && lo.Contains(wanted, broad) {
		return true
	}
	s := strings.ToLower(name + " " + category)
	for _, w := range wanted {
		if kws, ok := foodBroad[w]; ok {
			for _, kw := range kws {
				if strings.Contains(s, strings.ToLower(kw)) {
					return true
				}
			}
		} else if strings.Contains(s, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// fallbackRecommendation keeps the endpoint shape alive when no model
// key is configured.
func fallbackRecommendation(city string) string {
	if city == "" {
		city = "여행지"
	}
	return fmt.Sprintf(`관광지 추천:
1. %s 랜드마크 A - 전망이 좋은 장소
2. %s 박물관 B - 대표 전시 관람
3. %s 공원 C - 산책 코스

맛집 추천:
1. %s 맛집 D - 현지식
2. %s 카페 E - 디저트
3. %s 식당 F - 가성비`, city, city, city, city, city, city)
}

func (s *RecommendService) recommendText(ctx context.Context, req request_models.RecommendRequest) string {
	if !s.texts.Available() {
		return fallbackRecommendation(req.Destination)
	}
	prompt := BuildRecommendPrompt(req)
	if q := strings.TrimSpace(req.Query); q != "" {
		prompt += "\n\n[추가 요청]\n" + q
	}
	out, err := s.texts.Complete(ctx, SystemRecommend, prompt)
	if err != nil || strings.TrimSpace(out) == "" {
		s.log.Warnw("recommendation generation failed", "destination", req.Destination, "error", err)
		return fallbackRecommendation(req.Destination)
	}
	return out
}

// enrich resolves one extracted name through local search into a full
// response place. The lookup is optional; a bare name still makes it
// into the response with its map link. The second return is the raw
// Naver category string, used by the cuisine filter.
func (s *RecommendService) enrich(ctx context.Context, name, destination, category string, preferFood bool) (response_models.Place, string) {
	out := response_models.Place{
		Name:     name,
		Category: category,
		NaverURL: oracle.NaverMapLink(name),
	}

	info, err := s.places.SearchPlace(ctx, name)
	if err != nil && !errors.Is(err, utils.ErrPlaceNotFound) {
		s.log.Debugw("place lookup failed", "name", name, "error", err)
	}
	naverCategory := ""
	if info != nil {
		out.Address = info.Address
		out.Telephone = info.Telephone
		out.Description = info.Description
		out.Rating = info.Rating
		out.ReviewCount = info.ReviewCount
		out.Lat = info.Lat
		out.Lng = info.Lng
		naverCategory = info.Category
	}
	if out.ReviewCount == 0 {
		if total, err := s.places.BlogTotal(ctx, name); err == nil {
			out.ReviewCount = total
		}
	}

	iq := name + " " + destination
	if !preferFood {
		iq += " 관광지"
	}
	if out.Address != "" {
		if first := strings.Fields(out.Address); len(first) > 0 {
			iq += " " + first[0]
		}
	}
	if img, err := s.places.SearchImage(ctx, iq, preferFood, true); err == nil {
		out.ImageURL = img
	}
	return out, naverCategory
}

func (s *RecommendService) attractionPlaces(ctx context.Context, req request_models.RecommendRequest, sightseeing []string) []response_models.Place {
	places := make([]response_models.Place, 0, len(sightseeing))
	for _, raw := range sightseeing {
		name := placeName(raw)
		if name == "" {
			continue
		}
		p, _ := s.enrich(ctx, name, req.Destination, categoryAttraction, false)
		places = append(places, p)
	}
	return places
}

func (s *RecommendService) restaurantPlaces(ctx context.Context, req request_models.RecommendRequest, restaurants []string) []response_models.Place {
	wanted := lo.Uniq(req.FoodCategories)
	places := make([]response_models.Place, 0, len(restaurants))
	for _, raw := range restaurants {
		name := placeName(raw)
		if name == "" {
			continue
		}
		p, naverCategory := s.enrich(ctx, name, req.Destination, categoryRestaurant, true)
		if !wantCategory(name, naverCategory, wanted) {
			continue
		}
		places = append(places, p)
	}
	return places
}

func (s *RecommendService) Attractions(ctx context.Context, req request_models.RecommendRequest) (*response_models.RecommendResponse, error) {
	if req.Destination == "" {
		return nil, utils.ErrInvalidInput
	}
	sightseeing, _ := ExtractPlaces(s.recommendText(ctx, req))
	return &response_models.RecommendResponse{
		Places: s.attractionPlaces(ctx, req, sightseeing),
	}, nil
}

func (s *RecommendService) Restaurants(ctx context.Context, req request_models.RecommendRequest) (*response_models.RecommendResponse, error) {
	if req.Destination == "" {
		return nil, utils.ErrInvalidInput
	}
	_, restaurants := ExtractPlaces(s.recommendText(ctx, req))
	return &response_models.RecommendResponse{
		Places: s.restaurantPlaces(ctx, req, restaurants),
	}, nil
}

func (s *RecommendService) Places(ctx context.Context, req request_models.RecommendRequest) (*response_models.RecommendResponse, error) {
	if req.Destination == "" {
		return nil, utils.ErrInvalidInput
	}
	sightseeing, restaurants := ExtractPlaces(s.recommendText(ctx, req))
	resp := &response_models.RecommendResponse{
		Places: s.attractionPlaces(ctx, req, sightseeing),
	}
	resp.Places = append(resp.Places, s.restaurantPlaces(ctx, req, restaurants)...)
	return resp, nil
}

func (s *RecommendService) SaveSelection(req request_models.SelectionRequest) error {
	switch req.Category {
	case mem.CategoryAttraction, mem.CategoryRestaurant, mem.CategoryMixed:
	default:
		return utils.ErrInvalidInput
	}
	if req.Destination == "" || len(req.Places) == 0 {
		return utils.ErrInvalidInput
	}
	s.selections.Save(req.Destination, req.Category, req.Places)
	return nil
}
