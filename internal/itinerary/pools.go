package itinerary

import (
	"context"
	"hash/fnv"
	"math/rand"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"justgo/internal/oracle"
)

// Pools holds the ephemeral candidate names used to fill duplicate or
// placeholder slots. Candidates are consumed front to back; the order
// is a deterministic function of the request so identical inputs
// produce identical substitutions.
type Pools struct {
	attractions []string
	restaurants []string
}

// poolSeed hashes the request vector plus the body length, mirroring
// the stable-feeling variety of the original: same inputs, same order.
func poolSeed(req Request, bodyLen int) int64 {
	h := fnv.New64a()
	h.Write([]byte(req.Location))
	h.Write([]byte(req.Style))
	h.Write([]byte(strings.Join(req.Companions, ",")))
	h.Write([]byte(strconv.Itoa(req.Budget)))
	h.Write([]byte(strconv.Itoa(bodyLen)))
	return int64(h.Sum64())
}

func shuffled(names []string, seed int64) []string {
	out := make([]string, len(names))
	copy(out, names)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// BuildPools assembles candidate pools for one section. Seeds come
// first (user-selected places for this destination), then oracle
// candidates fetched per category. Oracle failure just leaves the
// seeds; an empty pool is an accepted state.
func BuildPools(ctx context.Context, places oracle.PlaceOracle, req Request, bodyLen int, seedAttractions, seedRestaurants []string) *Pools {
	p := &Pools{
		attractions: lo.Uniq(seedAttractions),
		restaurants: lo.Uniq(seedRestaurants),
	}
	if places != nil && req.Location != "" {
		if found, err := places.SearchAndRank(ctx, req.Location+" 관광지", 20, "review_desc"); err == nil {
			for _, pl := range found {
				p.attractions = append(p.attractions, pl.Name)
			}
		}
		if found, err := places.SearchAndRank(ctx, req.Location+" 맛집", 20, "review_desc"); err == nil {
			for _, pl := range found {
				p.restaurants = append(p.restaurants, pl.Name)
			}
		}
	}

	seed := poolSeed(req, bodyLen)
	p.attractions = shuffled(lo.Uniq(p.attractions), seed)
	p.restaurants = shuffled(lo.Uniq(p.restaurants), seed+1)
	return p
}

// Next pops the first candidate of the given meal type whose dedup key
// is not already taken. Returns "" when the pool is exhausted.
func (p *Pools) Next(meal string, taken map[string]bool) string {
	pool := &p.attractions
	if meal != "" {
		pool = &p.restaurants
	}
	for len(*pool) > 0 {
		cand := (*pool)[0]
		*pool = (*pool)[1:]
		key := strings.ToLower(normalizeSpaces(cand))
		if key != "" && !taken[key] {
			return cand
		}
	}
	return ""
}
