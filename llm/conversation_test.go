package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsokkary/promptsmith/internal/logging"
)

func newTestConversation() *Conversation {
	return NewConversation(nil, logging.NewMockLogger(logging.LogLevelError))
}

func TestConversation(t *testing.T) {
	t.Run("preserves turn order", func(t *testing.T) {
		conv := newTestConversation()
		conv.Add(RoleUser, "hello")
		conv.Add(RoleAssistant, "hi there")
		conv.Add(RoleUser, "what's new?")

		messages := conv.Messages()
		require.Len(t, messages, 3)
		assert.Equal(t, RoleUser, messages[0].Role)
		assert.Equal(t, "hello", messages[0].Content)
		assert.Equal(t, RoleAssistant, messages[1].Role)
		assert.Equal(t, "what's new?", messages[2].Content)
	})

	t.Run("messages returns a copy", func(t *testing.T) {
		conv := newTestConversation()
		conv.Add(RoleUser, "original")

		snapshot := conv.Messages()
		snapshot[0].Content = "mutated"

		assert.Equal(t, "original", conv.Messages()[0].Content)
	})

	t.Run("reset clears history and token total", func(t *testing.T) {
		conv := newTestConversation()
		conv.Add(RoleUser, "hello")
		conv.Add(RoleAssistant, "hi")
		require.Equal(t, 2, conv.Len())

		conv.Reset()
		assert.Equal(t, 0, conv.Len())
		assert.Empty(t, conv.Messages())
		assert.Equal(t, 0, conv.TotalTokens())
	})

	t.Run("nil counter leaves token totals at zero", func(t *testing.T) {
		conv := newTestConversation()
		conv.Add(RoleUser, "some message")
		assert.Equal(t, 0, conv.TotalTokens())
	})
}

func TestTokenCounter(t *testing.T) {
	counter, err := NewTokenCounter("gpt-4o")
	if err != nil {
		t.Skipf("token encoding unavailable: %v", err)
	}

	assert.Greater(t, counter.Count("hello world"), 0)
	assert.Equal(t, 0, counter.Count(""))

	conv := NewConversation(counter, logging.NewMockLogger(logging.LogLevelError))
	conv.Add(RoleUser, "hello world")
	assert.Greater(t, conv.TotalTokens(), 0)
	assert.Equal(t, conv.Messages()[0].Tokens, conv.TotalTokens())
}
