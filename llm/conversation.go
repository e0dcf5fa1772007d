package llm

import (
	"sync"

	"github.com/alsokkary/promptsmith/internal/logging"
)

// Conversation holds the ordered turns of a chat session. It tracks a
// running token total per message for usage visibility but never drops
// turns: the full history is sent on every request.
type Conversation struct {
	mu          sync.Mutex
	messages    []Message
	totalTokens int
	counter     *TokenCounter
	logger      logging.Logger
}

// NewConversation creates an empty Conversation. The counter may be nil,
// in which case token totals stay at zero.
func NewConversation(counter *TokenCounter, logger logging.Logger) *Conversation {
	return &Conversation{
		messages: []Message{},
		counter:  counter,
		logger:   logger,
	}
}

// Add appends a turn to the history.
func (c *Conversation) Add(role, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tokens := 0
	if c.counter != nil {
		tokens = c.counter.Count(content)
	}
	c.messages = append(c.messages, Message{Role: role, Content: content, Tokens: tokens})
	c.totalTokens += tokens

	c.logger.Debug("Added message to conversation",
		"role", role, "tokens", tokens, "total_tokens", c.totalTokens)
}

// Messages returns a copy of the conversation history in order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of turns.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// TotalTokens returns the running token total across all turns.
func (c *Conversation) TotalTokens() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalTokens
}

// Reset clears the history.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = []Message{}
	c.totalTokens = 0
	c.logger.Debug("Conversation history cleared")
}
