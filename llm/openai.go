package llm

import (
	"context"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider implements Provider over the official openai-go SDK
// (chat completions).
type OpenAIProvider struct {
	client openai.Client
}

// NewOpenAIProvider creates an OpenAIProvider with the given API key.
func NewOpenAIProvider(apiKey string, opts ...option.RequestOption) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, NewProviderError(ErrorTypeAuthentication, "openai API key is required", nil)
	}
	clientOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAIProvider{client: openai.NewClient(clientOpts...)}, nil
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Chat sends the system instruction and full conversation history and
// returns the assistant reply text.
func (p *OpenAIProvider) Chat(ctx context.Context, req ChatRequest) (string, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, openai.SystemMessage(req.System))
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleAssistant:
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(msg.Content))
		default:
			msgs = append(msgs, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: msgs,
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	params.Temperature = openai.Float(req.Temperature)

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", NewProviderError(ErrorTypeRequest, "openai request failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", NewProviderError(ErrorTypeResponse, "openai returned no choices", nil)
	}
	return resp.Choices[0].Message.Content, nil
}
