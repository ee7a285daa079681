package itinerary

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"justgo/internal/oracle"
)

// Policy collects the tunable constants of the repair pipeline.
type Policy struct {
	// BudgetTolerancePct is how far past the stated budget the total
	// may run before the closing sentence flags it.
	BudgetTolerancePct int

	// DedupeSectionWide makes the repeat substituter treat the whole
	// section as one scope instead of resetting per day.
	DedupeSectionWide bool

	// Static cost fallbacks in won.
	CostCafe      int
	CostMuseum    int
	CostThemePark int
	CostBreakfast int
	CostLunch     int
	CostDinner    int
}

func DefaultPolicy() Policy {
	return Policy{
		BudgetTolerancePct: 15,
		DedupeSectionWide:  true,
		CostCafe:           7000,
		CostMuseum:         5000,
		CostThemePark:      25000,
		CostBreakfast:      10000,
		CostLunch:          14000,
		CostDinner:         18000,
	}
}

// Normalizer runs the repair stages over one section at a time. Place
// lookups flow through the shared price cache so repeated names across
// sections of one response cost one search.
type Normalizer struct {
	places oracle.PlaceOracle
	policy Policy
	prices *gocache.Cache
	log    *zap.SugaredLogger
}

func NewNormalizer(places oracle.PlaceOracle, log *zap.SugaredLogger) *Normalizer {
	return &Normalizer{
		places: places,
		policy: DefaultPolicy(),
		prices: gocache.New(30*time.Minute, 10*time.Minute),
		log:    log,
	}
}

func (n *Normalizer) WithPolicy(p Policy) *Normalizer {
	n.policy = p
	return n
}

// Normalize repairs one section body: enforce the date skeleton,
// resolve placeholder names, substitute and collapse duplicates, then
// recompute costs and the closing total. Every stage is best effort;
// the worst case is the body rendered back unchanged.
func (n *Normalizer) Normalize(ctx context.Context, sec Section, req Request, seedAttractions, seedRestaurants []string) Section {
	body := sec.Body

	if start, ok := req.StartDate(); ok && req.Days > 0 {
		body = EnsureDates(body, req.Location, start, req.Days)
	}

	lines := ParseLines(body)
	pools := BuildPools(ctx, n.places, req, len(body), seedAttractions, seedRestaurants)

	ResolvePlaceholders(ctx, n.places, lines, req.Location, takenKeys(lines))
	SubstituteRepeats(ctx, n.places, lines, req.Location, pools, n.policy.DedupeSectionWide)
	lines = CollapseExact(lines)
	lines = OrderSlots(lines)
	FillAddresses(ctx, n.places, lines, req.Location)

	lines = StripTotals(lines)
	total := FillCosts(ctx, n.places, n.prices, lines, req.Location, n.policy)

	lines = append(lines,
		Line{Kind: KindOther, Raw: ""},
		Line{Kind: KindOther, Raw: TotalStatement(total, req.Budget, n.policy.BudgetTolerancePct)},
	)

	n.log.Debugw("section normalized", "title", sec.Title, "lines", len(lines), "total", total)

	sec.Body = RenderLines(lines)
	return sec
}
