package services

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"justgo/internal/itinerary"
	"justgo/internal/models/request_models"
	"justgo/internal/models/response_models"
	"justgo/internal/oracle"
	"justgo/pkg/utils"
)

type ChatServiceInterface interface {
	// Edit applies a natural-language change to one itinerary. The
	// rule engine answers cheap requests directly; everything else
	// goes through the model with the rule result as fallback. The
	// returned itinerary is re-normalized either way.
	Edit(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error)
}

type ChatService struct {
	texts      oracle.TextOracle
	normalizer *itinerary.Normalizer
	log        *zap.SugaredLogger
}

func NewChatService(texts oracle.TextOracle, normalizer *itinerary.Normalizer, log *zap.SugaredLogger) ChatServiceInterface {
	return &ChatService{texts: texts, normalizer: normalizer, log: log}
}

type editPayload struct {
	Reply            string `json:"reply"`
	UpdatedItinerary string `json:"updated_itinerary"`
}

func (s *ChatService) Edit(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, utils.ErrInvalidInput
	}
	original := req.ItineraryText

	reply, updated, ruled := itinerary.ApplyRules(original, req.Message)

	if !ruled && s.texts.Available() {
		out, err := s.texts.CompleteJSON(ctx, SystemEdit, BuildChatUserPrompt(req))
		if err != nil {
			s.log.Warnw("chat edit model call failed", "error", err)
		} else {
			var payload editPayload
			if jsonErr := json.Unmarshal([]byte(strings.TrimSpace(out)), &payload); jsonErr != nil {
				s.log.Warnw("chat edit returned non-json", "error", jsonErr)
			} else {
				if r := strings.TrimSpace(payload.Reply); r != "" {
					reply = r
				}
				if u := strings.TrimSpace(payload.UpdatedItinerary); u != "" {
					updated = u
				}
			}
		}
	}
	if reply == "" {
		reply = "요청을 반영했습니다."
	}

	resp := &response_models.ChatResponse{Reply: reply}
	if updated != original && strings.TrimSpace(updated) != "" {
		resp.UpdatedItinerary = s.renormalize(ctx, updated, req.Context)
	}
	return resp, nil
}

// renormalize reruns the repair pipeline over an edited body. Days
// stays zero unless the context carries it, which skips the date
// enforcement for bodies whose range is unknown.
func (s *ChatService) renormalize(ctx context.Context, body string, c *request_models.ChatContext) string {
	req := itinerary.Request{}
	if c != nil {
		req.Location = c.Location
		req.Days = c.Days
		req.Budget = c.Budget
		req.TravelDate = c.TravelDate
	}
	sec := s.normalizer.Normalize(ctx, itinerary.Section{Body: body}, req, nil, nil)
	return sec.Body
}
