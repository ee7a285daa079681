package oracle

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"justgo/pkg/utils"
)

type OpenAIOracle struct {
	client *openai.Client
	model  string
}

func NewOpenAIOracle(apiKey string) *OpenAIOracle {
	o := &OpenAIOracle{model: openai.GPT4oMini}
	if apiKey != "" {
		o.client = openai.NewClient(apiKey)
	}
	return o
}

func (o *OpenAIOracle) Available() bool {
	return o.client != nil
}

func (o *OpenAIOracle) Complete(ctx context.Context, system, user string) (string, error) {
	return o.complete(ctx, system, user, nil)
}

func (o *OpenAIOracle) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	return o.complete(ctx, system, user, &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONObject,
	})
}

func (o *OpenAIOracle) complete(ctx context.Context, system, user string, format *openai.ChatCompletionResponseFormat) (string, error) {
	if o.client == nil {
		return "", utils.ErrOracleUnavailable
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.25,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: format,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", utils.ErrOracleTimeout
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", utils.ErrUnexpectedBehaviorOfAI
	}
	return resp.Choices[0].Message.Content, nil
}
