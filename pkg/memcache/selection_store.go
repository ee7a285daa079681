// pkg/memcache/selection_store.go
package mem

import (
	"strings"
	"sync"
)

// Place categories a user can pin before generating a plan.
const (
	CategoryAttraction = "attraction"
	CategoryRestaurant = "restaurant"
	CategoryMixed      = "mixed"
)

type SelectionStore interface {
	// Save appends the given place names to the destination's bucket
	// for the given category, deduplicating case-insensitively.
	Save(destination, category string, places []string)

	// Lookup returns the saved selections for a destination. The key
	// match is relaxed: an exact normalized match wins, otherwise a
	// bucket whose key is a prefix or suffix of the requested key (or
	// vice versa) is used, so "부산" still finds "부산광역시".
	Lookup(destination string) (attractions, restaurants, mixed []string)
}

type bucket struct {
	attractions []string
	restaurants []string
	mixed       []string
}

// Selections lives for the process lifetime; nothing expires.
type Selections struct {
	mu   sync.RWMutex
	data map[string]*bucket
}

func NewSelections() *Selections {
	return &Selections{
		data: make(map[string]*bucket),
	}
}

func normalizeKey(destination string) string {
	return strings.ToLower(strings.Join(strings.Fields(destination), ""))
}

func (s *Selections) Save(destination, category string, places []string) {
	key := normalizeKey(destination)
	if key == "" || len(places) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.data[key]
	if !ok {
		b = &bucket{}
		s.data[key] = b
	}

	switch category {
	case CategoryAttraction:
		b.attractions = appendUnique(b.attractions, places)
	case CategoryRestaurant:
		b.restaurants = appendUnique(b.restaurants, places)
	default:
		b.mixed = appendUnique(b.mixed, places)
	}
}

func (s *Selections) Lookup(destination string) (attractions, restaurants, mixed []string) {
	key := normalizeKey(destination)
	if key == "" {
		return nil, nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.data[key]
	if !ok {
		for k, cand := range s.data {
			if strings.HasPrefix(k, key) || strings.HasPrefix(key, k) ||
				strings.HasSuffix(k, key) || strings.HasSuffix(key, k) {
				b = cand
				break
			}
		}
	}
	if b == nil {
		return nil, nil, nil
	}

	return cloneList(b.attractions), cloneList(b.restaurants), cloneList(b.mixed)
}

func appendUnique(dst []string, adds []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, v := range dst {
		seen[strings.ToLower(strings.TrimSpace(v))] = true
	}
	for _, v := range adds {
		v = strings.TrimSpace(v)
		k := strings.ToLower(v)
		if v == "" || seen[k] {
			continue
		}
		seen[k] = true
		dst = append(dst, v)
	}
	return dst
}

func cloneList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
