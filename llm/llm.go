// Package llm provides the chat-completion provider abstraction used by
// the promptsmith agent. It covers exactly what a sequential
// request/response agent needs: a Provider interface, concrete Anthropic
// and OpenAI implementations over the official SDKs, and an in-memory
// conversation history with token accounting.
package llm

import (
	"context"
)

// Message roles as used by the chat-completion APIs.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a conversation.
type Message struct {
	Role    string // "user" or "assistant"
	Content string // message text
	Tokens  int    // token count of Content, for usage accounting
}

// ChatRequest carries one complete chat-completion call: the fixed system
// instruction plus the full ordered conversation so far.
type ChatRequest struct {
	Model       string
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Provider is a remote chat-completion endpoint. Chat sends the request
// and returns the assistant's reply text. Implementations perform a
// single blocking call; retries and rate limiting are deliberately out of
// scope.
type Provider interface {
	Name() string
	Chat(ctx context.Context, req ChatRequest) (string, error)
}
