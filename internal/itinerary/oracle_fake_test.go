package itinerary

import (
	"context"
	"strings"
	"sync"

	"justgo/internal/oracle"
	"justgo/pkg/utils"
)

// fakePlaces is an in-memory PlaceOracle. Lookups match stored keys by
// exact query first, then by substring, mirroring how the real search
// matches "<city> <name>" style queries.
type fakePlaces struct {
	mu      sync.Mutex
	byQuery map[string]oracle.Place
	ranked  map[string][]oracle.Place
	images  map[string]string
	blogs   map[string]int
	calls   []string
}

func newFakePlaces() *fakePlaces {
	return &fakePlaces{
		byQuery: make(map[string]oracle.Place),
		ranked:  make(map[string][]oracle.Place),
		images:  make(map[string]string),
		blogs:   make(map[string]int),
	}
}

func (f *fakePlaces) add(key string, p oracle.Place) {
	f.byQuery[key] = p
}

func (f *fakePlaces) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakePlaces) SearchPlace(_ context.Context, query string) (*oracle.Place, error) {
	f.record("search:" + query)
	if p, ok := f.byQuery[query]; ok {
		return &p, nil
	}
	for key, p := range f.byQuery {
		if strings.Contains(query, key) {
			p := p
			return &p, nil
		}
	}
	return nil, utils.ErrPlaceNotFound
}

func (f *fakePlaces) SearchAndRank(_ context.Context, query string, limit int, _ string) ([]oracle.Place, error) {
	f.record("rank:" + query)
	out, ok := f.ranked[query]
	if !ok {
		return nil, utils.ErrPlaceNotFound
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePlaces) SearchImage(_ context.Context, query string, _, _ bool) (string, error) {
	if img, ok := f.images[query]; ok {
		return img, nil
	}
	return "", utils.ErrPlaceNotFound
}

func (f *fakePlaces) BlogTotal(_ context.Context, query string) (int, error) {
	return f.blogs[query], nil
}
