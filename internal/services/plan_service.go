package services

import (
	"context"

	"go.uber.org/zap"

	"justgo/internal/itinerary"
	"justgo/internal/models/request_models"
	"justgo/internal/models/response_models"
	"justgo/internal/oracle"
	mem "justgo/pkg/memcache"
	"justgo/pkg/utils"
)

type PlanServiceInterface interface {
	// CreatePlan generates, repairs and returns Count itinerary
	// candidates. It degrades instead of failing: an unavailable or
	// timed-out oracle yields templated itineraries.
	CreatePlan(ctx context.Context, req request_models.ScheduleRequest) (*response_models.ScheduleResponse, error)

	ListSchedules(ctx context.Context) []response_models.Schedule
}

type PlanService struct {
	texts      oracle.TextOracle
	places     oracle.PlaceOracle
	normalizer *itinerary.Normalizer
	selections mem.SelectionStore
	log        *zap.SugaredLogger
}

func NewPlanService(
	texts oracle.TextOracle,
	places oracle.PlaceOracle,
	normalizer *itinerary.Normalizer,
	selections mem.SelectionStore,
	log *zap.SugaredLogger,
) PlanServiceInterface {
	return &PlanService{
		texts:      texts,
		places:     places,
		normalizer: normalizer,
		selections: selections,
		log:        log,
	}
}

func (s *PlanService) CreatePlan(ctx context.Context, req request_models.ScheduleRequest) (*response_models.ScheduleResponse, error) {
	if req.Location == "" || req.Days <= 0 {
		return nil, utils.ErrInvalidInput
	}
	if req.Count <= 0 {
		req.Count = 3
	}

	raw := s.generate(ctx, req)

	itReq := itinerary.Request{
		Location:       req.Location,
		Days:           req.Days,
		Style:          req.Style,
		Companions:     req.Companions,
		Budget:         req.Budget,
		SelectedPlaces: req.SelectedPlaces,
		TravelDate:     req.TravelDate,
		Count:          req.Count,
	}
	sections := itinerary.SplitSections(raw, itReq)

	seedAttr, seedRest, mixed := s.selections.Lookup(req.Location)
	seedAttr = append(append([]string{}, req.SelectedPlaces...), append(seedAttr, mixed...)...)
	seedRest = append(seedRest, mixed...)

	resp := &response_models.ScheduleResponse{}
	for i, sec := range sections {
		fixed := s.normalizer.Normalize(ctx, sec, itReq, seedAttr, seedRest)
		resp.Schedules = append(resp.Schedules, response_models.ScheduleItem{
			Title:  fixed.Title,
			Detail: fixed.Body,
		})
		if i == 0 {
			resp.BasePoint = s.basePoint(ctx, req.Location, fixed.Body)
		}
	}
	return resp, nil
}

// generate runs the oracle under the caller's deadline. Any failure
// collapses to an empty document, which the splitter turns into
// templated sections.
func (s *PlanService) generate(ctx context.Context, req request_models.ScheduleRequest) string {
	if !s.texts.Available() {
		s.log.Infow("text oracle not configured, using templates", "location", req.Location)
		return ""
	}
	raw, err := s.texts.Complete(ctx, SystemStrict, BuildPlanPrompt(req))
	if err != nil {
		s.log.Warnw("plan generation failed", "location", req.Location, "error", err)
		return ""
	}
	return raw
}

// basePoint resolves the first activity of the first section to map
// coordinates for the frontend's initial viewport.
func (s *PlanService) basePoint(ctx context.Context, location, body string) *response_models.BasePoint {
	for _, l := range itinerary.ParseLines(body) {
		if l.Kind != itinerary.KindActivity || l.Core == "" {
			continue
		}
		p, err := s.places.SearchPlace(ctx, location+" "+l.Core)
		if err != nil || p == nil || (p.Lat == 0 && p.Lng == 0) {
			return nil
		}
		return &response_models.BasePoint{Name: p.Name, Lat: p.Lat, Lng: p.Lng}
	}
	return nil
}

// ListSchedules is the demo trip listing used by the frontend shell.
func (s *PlanService) ListSchedules(_ context.Context) []response_models.Schedule {
	return []response_models.Schedule{
		{ID: 1, Title: "제주도 여행", Dates: "2025.08.10 ~ 08.12"},
		{ID: 2, Title: "부산 가족여행", Dates: "2025.08.15 ~ 08.17"},
		{ID: 3, Title: "서울 데이트 코스", Dates: "2025.09.01"},
	}
}
