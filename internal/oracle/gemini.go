package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"justgo/pkg/utils"
)

type GeminiOracle struct {
	client *genai.Client
	model  string
}

func NewGeminiOracle(apiKey, model string) (*GeminiOracle, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if apiKey == "" {
		return &GeminiOracle{model: model}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiOracle{client: client, model: model}, nil
}

func (g *GeminiOracle) Available() bool {
	return g.client != nil
}

func (g *GeminiOracle) Complete(ctx context.Context, system, user string) (string, error) {
	return g.generate(ctx, system, user, "")
}

func (g *GeminiOracle) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	return g.generate(ctx, system, user, "application/json")
}

func (g *GeminiOracle) generate(ctx context.Context, system, user, mime string) (string, error) {
	if g.client == nil {
		return "", utils.ErrOracleUnavailable
	}

	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(0.25)
	m.SetTopP(0.5)
	m.SetTopK(20)
	if mime != "" {
		m.ResponseMIMEType = mime
	}
	if system != "" {
		m.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}

	resp, err := m.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", utils.ErrOracleTimeout
		}
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", utils.ErrUnexpectedBehaviorOfAI
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (g *GeminiOracle) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
