package oracle

import (
	"context"
	"fmt"
	"strings"

	"justgo/internal/config"
)

// TextOracle is the LLM completion dependency. Responses are free-form
// prose unless CompleteJSON is used, which constrains the model to a
// single JSON object.
type TextOracle interface {
	Complete(ctx context.Context, system, user string) (string, error)
	CompleteJSON(ctx context.Context, system, user string) (string, error)

	// Available reports whether credentials were configured. Callers
	// degrade to templated output when this is false.
	Available() bool
}

// Place is the normalized record both search backends map into.
type Place struct {
	Name        string
	Address     string
	Category    string
	Telephone   string
	Description string
	MapLink     string
	ImageURL    string
	Lat         float64
	Lng         float64

	// Price signals, any of which may be absent.
	Price     int    // explicit amount in won
	PriceTier string // e.g. "₩₩"

	Rating      float64
	ReviewCount int
}

// PlaceOracle is the local-search dependency. SearchPlace returns the
// single best match or ErrPlaceNotFound; during a rate-limit cooldown
// every lookup reports not-found rather than retrying.
type PlaceOracle interface {
	SearchPlace(ctx context.Context, query string) (*Place, error)
	SearchAndRank(ctx context.Context, query string, limit int, sort string) ([]Place, error)
	SearchImage(ctx context.Context, query string, preferFood, strict bool) (string, error)
	BlogTotal(ctx context.Context, query string) (int, error)
}

// NewTextOracle picks the provider the same way the rest of the config
// is resolved: explicit LLM_PROVIDER, defaulting to OpenAI.
func NewTextOracle(cfg *config.Config) (TextOracle, error) {
	switch strings.ToLower(cfg.LLMProvider) {
	case "", "openai":
		return NewOpenAIOracle(cfg.OpenAIAPIKey), nil
	case "gemini":
		return NewGeminiOracle(cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.LLMProvider)
	}
}
