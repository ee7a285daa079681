package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"justgo/pkg/utils"
)

const (
	naverLocalURL = "https://openapi.naver.com/v1/search/local.json"
	naverImageURL = "https://openapi.naver.com/v1/search/image"
	naverBlogURL  = "https://openapi.naver.com/v1/search/blog.json"

	naverTimeout = 8 * time.Second

	// After a 429 all lookups report not-found for this window
	// instead of hammering the API with retries.
	rateLimitCooldown = 60 * time.Second
)

var (
	htmlTagRe   = regexp.MustCompile(`<[^>]+>`)
	wonInTextRe = regexp.MustCompile(`(?:약\s*)?(\d{1,3}(?:,\d{3})+|\d+)\s*원`)
	tierRe      = regexp.MustCompile(`₩{1,4}`)
)

// Image hosts considered safe to surface directly on the frontend.
var trustedImageHosts = []string{
	"blog.naver.com", "post.naver.com", "naver.net",
	"mp-seoul-image-production-s3.mangoplate.com", "img.siksinhot.com",
	"staticflickr.com", "pinimg.com",
}

var foodImageRe = regexp.MustCompile(`(?i)(food|dish|menu|meal|plate|burger|pizza|sushi|ramen|pasta|bbq|korean)`)

// NaverClient talks to the Naver open APIs. Responses are cached with a
// TTL; both the cache and the cooldown timestamp are best-effort shared
// state, staleness is acceptable.
type NaverClient struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	baseURL      string // test override; empty in production

	cache *gocache.Cache

	mu            sync.Mutex
	cooldownUntil time.Time
}

func NewNaverClient(clientID, clientSecret string) *NaverClient {
	return &NaverClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: naverTimeout},
		cache:        gocache.New(time.Hour, 10*time.Minute),
	}
}

func (n *NaverClient) available() bool {
	return n.clientID != "" && n.clientSecret != ""
}

func (n *NaverClient) coolingDown() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return time.Now().Before(n.cooldownUntil)
}

func (n *NaverClient) enterCooldown() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cooldownUntil = time.Now().Add(rateLimitCooldown)
}

func stripTags(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

func NaverMapLink(name string) string {
	return "https://map.naver.com/v5/search/" + url.PathEscape(name)
}

type localItem struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Telephone   string `json:"telephone"`
	Address     string `json:"address"`
	RoadAddress string `json:"roadAddress"`
	MapX        string `json:"mapx"`
	MapY        string `json:"mapy"`
}

type localResponse struct {
	Total int         `json:"total"`
	Items []localItem `json:"items"`
}

func (n *NaverClient) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	if !n.available() {
		return utils.ErrOracleUnavailable
	}
	if n.coolingDown() {
		return utils.ErrRateLimited
	}

	base := n.baseURL
	if base == "" {
		base = endpoint
	} else {
		// tests point every endpoint at one server
		base = base + pathOf(endpoint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Naver-Client-Id", n.clientID)
	req.Header.Set("X-Naver-Client-Secret", n.clientSecret)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		n.enterCooldown()
		return utils.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("naver: status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func pathOf(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	return u.Path
}

func mapLocalItem(it localItem) Place {
	name := stripTags(it.Title)
	addr := strings.TrimSpace(it.RoadAddress)
	if addr == "" {
		addr = strings.TrimSpace(it.Address)
	}

	p := Place{
		Name:        name,
		Address:     addr,
		Category:    strings.TrimSpace(it.Category),
		Telephone:   strings.TrimSpace(it.Telephone),
		Description: stripTags(it.Description),
	}
	if name != "" {
		p.MapLink = NaverMapLink(name)
	}

	// mapx/mapy come back as WGS84 coordinates scaled by 1e7
	if x, err := strconv.ParseFloat(it.MapX, 64); err == nil && x != 0 {
		p.Lng = x / 1e7
	}
	if y, err := strconv.ParseFloat(it.MapY, 64); err == nil && y != 0 {
		p.Lat = y / 1e7
	}

	// Price signals sometimes hide inside the description blob.
	if m := wonInTextRe.FindStringSubmatch(p.Description); m != nil {
		if v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
			p.Price = v
		}
	}
	if tier := tierRe.FindString(p.Description); tier != "" {
		p.PriceTier = tier
	}

	return p
}

func (n *NaverClient) searchLocal(ctx context.Context, query string, display int) (*localResponse, error) {
	if display < 1 {
		display = 1
	}
	if display > 30 {
		display = 30
	}

	cacheKey := fmt.Sprintf("local::%s::%d", query, display)
	if v, ok := n.cache.Get(cacheKey); ok {
		return v.(*localResponse), nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(display))
	params.Set("start", "1")

	var data localResponse
	if err := n.get(ctx, naverLocalURL, params, &data); err != nil {
		return nil, err
	}

	n.cache.SetDefault(cacheKey, &data)
	return &data, nil
}

func (n *NaverClient) SearchPlace(ctx context.Context, query string) (*Place, error) {
	data, err := n.searchLocal(ctx, query, 1)
	if err != nil {
		if errors.Is(err, utils.ErrRateLimited) || errors.Is(err, utils.ErrOracleUnavailable) {
			return nil, utils.ErrPlaceNotFound
		}
		return nil, err
	}
	if len(data.Items) == 0 {
		return nil, utils.ErrPlaceNotFound
	}

	p := mapLocalItem(data.Items[0])
	if p.Name == "" {
		return nil, utils.ErrPlaceNotFound
	}
	return &p, nil
}

func (n *NaverClient) BlogTotal(ctx context.Context, query string) (int, error) {
	cacheKey := "blog_total::" + query
	if v, ok := n.cache.Get(cacheKey); ok {
		return v.(int), nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", "1")
	params.Set("start", "1")
	params.Set("sort", "sim")

	var data struct {
		Total int `json:"total"`
	}
	if err := n.get(ctx, naverBlogURL, params, &data); err != nil {
		return 0, err
	}

	n.cache.SetDefault(cacheKey, data.Total)
	return data.Total, nil
}

func imageHostOK(link string, preferFood bool) bool {
	if link == "" {
		return false
	}
	for _, h := range trustedImageHosts {
		if strings.Contains(link, h) {
			return true
		}
	}
	return preferFood && foodImageRe.MatchString(link)
}

func (n *NaverClient) SearchImage(ctx context.Context, query string, preferFood, strict bool) (string, error) {
	cacheKey := fmt.Sprintf("img::%s::food=%t::strict=%t", query, preferFood, strict)
	if v, ok := n.cache.Get(cacheKey); ok {
		return v.(string), nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", "15")
	params.Set("sort", "sim")
	params.Set("filter", "all")

	var data struct {
		Items []struct {
			Link      string `json:"link"`
			Thumbnail string `json:"thumbnail"`
		} `json:"items"`
	}
	if err := n.get(ctx, naverImageURL, params, &data); err != nil {
		return "", err
	}

	for _, it := range data.Items {
		link := it.Link
		if link == "" {
			link = it.Thumbnail
		}
		if imageHostOK(link, preferFood) {
			n.cache.SetDefault(cacheKey, link)
			return link, nil
		}
	}
	if !strict && len(data.Items) > 0 {
		link := data.Items[0].Link
		if link == "" {
			link = data.Items[0].Thumbnail
		}
		n.cache.SetDefault(cacheKey, link)
		return link, nil
	}
	return "", utils.ErrPlaceNotFound
}

func scoreTokenMatch(name, category string, toks []string) float64 {
	var score float64
	for _, t := range toks {
		if t == "" {
			continue
		}
		if strings.Contains(name, t) {
			score += 1.2
		}
		if strings.Contains(category, t) {
			score += 0.7
		}
	}
	return score
}

// SearchAndRank fetches multiple candidates and orders them using the
// blog-search total as a review-count proxy (Local API has no ratings).
func (n *NaverClient) SearchAndRank(ctx context.Context, query string, limit int, sortKey string) ([]Place, error) {
	if limit < 1 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	data, err := n.searchLocal(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	places := lo.Map(data.Items, func(it localItem, _ int) Place { return mapLocalItem(it) })
	places = lo.UniqBy(places, func(p Place) string {
		return strings.ToLower(strings.Join(strings.Fields(p.Name), " "))
	})

	toks := lo.Filter(strings.Fields(query), func(t string, _ int) bool { return len([]rune(t)) >= 2 })
	scores := make([]float64, len(places))
	for i := range places {
		p := &places[i]

		score := scoreTokenMatch(p.Name, p.Category, toks)
		if p.Address != "" {
			score += 0.3
		}
		scores[i] = score

		blogQuery := p.Name
		if p.Address != "" {
			blogQuery += " " + strings.Fields(p.Address)[0]
		}
		// Blog total stands in for a review count; the Local API has
		// neither ratings nor review counts.
		if total, err := n.BlogTotal(ctx, blogQuery); err == nil {
			p.ReviewCount = total
		}
	}

	idx := make([]int, len(places))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		i, j := idx[a], idx[b]
		if sortKey == "rating_desc" && places[i].Rating != places[j].Rating {
			return places[i].Rating > places[j].Rating
		}
		if places[i].ReviewCount != places[j].ReviewCount {
			return places[i].ReviewCount > places[j].ReviewCount
		}
		return scores[i] > scores[j]
	})

	out := make([]Place, 0, limit)
	for _, i := range idx {
		out = append(out, places[i])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
