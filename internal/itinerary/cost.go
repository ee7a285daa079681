package itinerary

import (
	"context"
	"fmt"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"justgo/internal/oracle"
)

// tierCosts maps Naver price-tier glyphs to representative amounts.
var tierCosts = map[string]int{
	"₩":   8000,
	"₩₩":  15000,
	"₩₩₩": 30000,
}

// fallbackCost is the static last-resort estimate by activity type.
func fallbackCost(l Line, policy Policy) int {
	switch {
	case strings.Contains(l.Core, "카페"):
		return policy.CostCafe
	case strings.Contains(l.Core, "박물관"), strings.Contains(l.Core, "미술관"):
		return policy.CostMuseum
	case strings.Contains(l.Core, "테마"), strings.Contains(l.Core, "파크"):
		return policy.CostThemePark
	}
	switch l.Meal {
	case MealBreakfast:
		return policy.CostBreakfast
	case MealLunch:
		return policy.CostLunch
	case MealDinner:
		return policy.CostDinner
	}
	return 0
}

// oracleCost extracts a price estimate from a place record, in order
// of reliability: explicit amount, tier bracket, money mentioned in
// the description.
func oracleCost(p *oracle.Place) (int, bool) {
	if p == nil {
		return 0, false
	}
	if p.Price > 0 {
		return p.Price, true
	}
	if v, ok := tierCosts[p.PriceTier]; ok {
		return v, true
	}
	if m := costRe.FindStringSubmatch(p.Description); m != nil {
		var v int
		if _, err := fmt.Sscanf(strings.ReplaceAll(m[1], ",", ""), "%d", &v); err == nil && v > 0 {
			return v, true
		}
	}
	return 0, false
}

// FillCosts gives every activity line a cost. Lines that already carry
// one keep it; the rest resolve through the per-city price cache, a
// place lookup, then the static fallback. Returns the section total.
func FillCosts(ctx context.Context, places oracle.PlaceOracle, prices *gocache.Cache, lines []Line, city string, policy Policy) int {
	total := 0
	for i := range lines {
		l := &lines[i]
		if l.Kind != KindActivity {
			continue
		}
		if l.Cost < 0 {
			l.Cost = resolveCost(ctx, places, prices, *l, city, policy)
		}
		total += l.Cost
	}
	return total
}

func resolveCost(ctx context.Context, places oracle.PlaceOracle, prices *gocache.Cache, l Line, city string, policy Policy) int {
	key := strings.ToLower(city) + "|" + l.DedupKey()
	if prices != nil {
		if v, ok := prices.Get(key); ok {
			if c, ok := v.(int); ok {
				return c
			}
		}
	}

	if places != nil && city != "" && !l.IsPlaceholder() {
		if found, err := places.SearchPlace(ctx, city+" "+l.Core); err == nil {
			if c, ok := oracleCost(found); ok {
				if prices != nil {
					prices.SetDefault(key, c)
				}
				return c
			}
		}
	}

	return fallbackCost(l, policy)
}

// StripTotals drops every existing total-cost statement; the pipeline
// appends a single recomputed one afterwards.
func StripTotals(lines []Line) []Line {
	out := lines[:0]
	for _, l := range lines {
		if l.Kind == KindOther && totalCostRe.MatchString(l.Raw) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// TotalStatement renders the closing budget sentence. Budget <= 0
// leaves the comparison clause off since there is nothing to compare
// against.
func TotalStatement(total, budget int, tolerancePct int) string {
	if budget <= 0 {
		return fmt.Sprintf("총 예상 비용은 약 %s원입니다.", FormatWon(total))
	}
	limit := budget + budget*tolerancePct/100
	if total > limit {
		return fmt.Sprintf("총 예상 비용은 약 %s원으로, 입력 예산인 %s원을 다소 초과했어요.",
			FormatWon(total), FormatWon(budget))
	}
	return fmt.Sprintf("총 예상 비용은 약 %s원으로, 입력 예산인 %s원 내에서 잘 계획되었어요.",
		FormatWon(total), FormatWon(budget))
}
