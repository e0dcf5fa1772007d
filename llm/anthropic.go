package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements Provider over the official Anthropic SDK.
type AnthropicProvider struct {
	client *anthropic.Client
}

// NewAnthropicProvider creates an AnthropicProvider with the given API key.
func NewAnthropicProvider(apiKey string, opts ...option.RequestOption) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, NewProviderError(ErrorTypeAuthentication, "anthropic API key is required", nil)
	}
	clientOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := anthropic.NewClient(clientOpts...)
	return &AnthropicProvider{client: &client}, nil
}

func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Chat sends the system instruction and full conversation history and
// returns the assistant reply text.
func (p *AnthropicProvider) Chat(ctx context.Context, req ChatRequest) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(req.Model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages:    make([]anthropic.MessageParam, 0, len(req.Messages)),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleAssistant:
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", NewProviderError(ErrorTypeAPI,
				fmt.Sprintf("anthropic API returned status %d", apiErr.StatusCode), err)
		}
		return "", NewProviderError(ErrorTypeRequest, "anthropic request failed", err)
	}
	if message == nil || len(message.Content) == 0 {
		return "", NewProviderError(ErrorTypeResponse, "anthropic returned empty content", nil)
	}

	if block := message.Content[0]; block.Type == "text" {
		return block.Text, nil
	}
	return "", NewProviderError(ErrorTypeResponse, "anthropic returned a non-text block", nil)
}
