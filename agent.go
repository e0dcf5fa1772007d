package promptsmith

import (
	"context"

	"github.com/google/uuid"

	"github.com/alsokkary/promptsmith/config"
	"github.com/alsokkary/promptsmith/internal/logging"
	"github.com/alsokkary/promptsmith/llm"
)

// Agent is a sequential conversational wrapper over a chat-completion
// provider. Each Chat call appends the user turn, sends the entire
// history plus the configured system instruction, appends the assistant
// reply and returns it. The agent holds no state beyond the in-memory
// history: no persistence, no retries, no rate limiting.
type Agent struct {
	provider     llm.Provider
	conversation *llm.Conversation
	cfg          *config.Config
	logger       logging.Logger
	sessionID    string
}

// NewAgent builds an Agent from environment configuration adjusted by
// the given options. The provider is resolved from the default registry
// using the configured provider name and API key.
func NewAgent(opts ...config.Option) (*Agent, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	config.ApplyOptions(cfg, opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewAgentWithConfig(cfg)
}

// NewAgentWithConfig builds an Agent from an already-validated Config.
func NewAgentWithConfig(cfg *config.Config) (*Agent, error) {
	logger := logging.NewLogger(cfg.LogLevel)

	provider, err := llm.NewRegistry().Get(cfg.Provider, cfg.APIKeys[cfg.Provider])
	if err != nil {
		return nil, err
	}

	counter, err := llm.NewTokenCounter(cfg.Model)
	if err != nil {
		logger.Warn("Token counting disabled", "error", err)
		counter = nil
	}

	agent := &Agent{
		provider:     provider,
		conversation: llm.NewConversation(counter, logger),
		cfg:          cfg,
		logger:       logger,
		sessionID:    uuid.NewString(),
	}
	logger.Info("Agent initialized",
		"session_id", agent.sessionID, "provider", provider.Name(), "model", cfg.Model)
	return agent, nil
}

// newAgentWithProvider wires an explicit provider, for tests.
func newAgentWithProvider(provider llm.Provider, cfg *config.Config, logger logging.Logger) *Agent {
	return &Agent{
		provider:     provider,
		conversation: llm.NewConversation(nil, logger),
		cfg:          cfg,
		logger:       logger,
		sessionID:    uuid.NewString(),
	}
}

// Chat sends the user message together with the full conversation so far
// and returns the assistant's reply. Both turns are appended to the
// history.
func (a *Agent) Chat(ctx context.Context, message string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	a.conversation.Add(llm.RoleUser, message)

	reply, err := a.provider.Chat(ctx, llm.ChatRequest{
		Model:       a.cfg.Model,
		System:      a.cfg.SystemPrompt,
		Messages:    a.conversation.Messages(),
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}

	a.conversation.Add(llm.RoleAssistant, reply)
	a.logger.Debug("Chat turn complete",
		"session_id", a.sessionID,
		"turns", a.conversation.Len(),
		"total_tokens", a.conversation.TotalTokens())
	return reply, nil
}

// ProcessGitHubTask asks the agent to handle a GitHub-related task.
func (a *Agent) ProcessGitHubTask(ctx context.Context, task string) (string, error) {
	return a.Chat(ctx, "Process this GitHub task: "+task)
}

// Reset clears the conversation history. The session ID is kept.
func (a *Agent) Reset() {
	a.conversation.Reset()
}

// History returns a copy of the conversation turns so far.
func (a *Agent) History() []llm.Message {
	return a.conversation.Messages()
}

// SessionID returns the agent's session identifier.
func (a *Agent) SessionID() string {
	return a.sessionID
}
