package services

import (
	"context"
	"strings"

	"justgo/internal/oracle"
	"justgo/pkg/utils"
)

// fakeText is a canned TextOracle. With available unset it behaves
// like a server started without an API key.
type fakeText struct {
	available bool
	reply     string
	jsonReply string
	err       error

	lastSystem string
	lastUser   string
}

func (f *fakeText) Complete(_ context.Context, system, user string) (string, error) {
	f.lastSystem, f.lastUser = system, user
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeText) CompleteJSON(_ context.Context, system, user string) (string, error) {
	f.lastSystem, f.lastUser = system, user
	if f.err != nil {
		return "", f.err
	}
	return f.jsonReply, nil
}

func (f *fakeText) Available() bool { return f.available }

type fakePlaces struct {
	byQuery map[string]oracle.Place
	images  map[string]string
	blogs   map[string]int
}

func newFakePlaces() *fakePlaces {
	return &fakePlaces{
		byQuery: make(map[string]oracle.Place),
		images:  make(map[string]string),
		blogs:   make(map[string]int),
	}
}

func (f *fakePlaces) SearchPlace(_ context.Context, query string) (*oracle.Place, error) {
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

func (f *fakePlaces) SearchAndRank(_ context.Context, _ string, _ int, _ string) ([]oracle.Place, error) {
	return nil, utils.ErrPlaceNotFound
}

func (f *fakePlaces) SearchImage(_ context.Context, query string, _, _ bool) (string, error) {
	if img, ok := f.images[query]; ok {
		return img, nil
	}
	for key, img := range f.images {
		if strings.Contains(query, key) {
			return img, nil
		}
	}
	return "", utils.ErrPlaceNotFound
}

func (f *fakePlaces) BlogTotal(_ context.Context, query string) (int, error) {
	if total, ok := f.blogs[query]; ok {
		return total, nil
	}
	return 0, utils.ErrPlaceNotFound
}
