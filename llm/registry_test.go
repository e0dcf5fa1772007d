package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct{ name string }

func (s *stubProvider) Name() string { return s.name }
func (s *stubProvider) Chat(ctx context.Context, req ChatRequest) (string, error) {
	return "stub reply", nil
}

func TestRegistry(t *testing.T) {
	t.Run("knows the built-in providers", func(t *testing.T) {
		registry := NewRegistry()
		assert.ElementsMatch(t, []string{"anthropic", "openai"}, registry.Providers())
	})

	t.Run("unknown provider is an error", func(t *testing.T) {
		_, err := NewRegistry().Get("not_a_provider", "key")
		require.Error(t, err)

		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, ErrorTypeProvider, provErr.Type)
	})

	t.Run("missing API key is an authentication error", func(t *testing.T) {
		_, err := NewRegistry().Get("anthropic", "")
		require.Error(t, err)

		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, ErrorTypeAuthentication, provErr.Type)
	})

	t.Run("custom providers can be registered", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register("stub", func(apiKey string) (Provider, error) {
			return &stubProvider{name: "stub"}, nil
		})

		provider, err := registry.Get("stub", "unused")
		require.NoError(t, err)
		assert.Equal(t, "stub", provider.Name())
	})

	t.Run("built-in factories construct providers", func(t *testing.T) {
		anthropic, err := NewRegistry().Get("anthropic", "test-key")
		require.NoError(t, err)
		assert.Equal(t, "anthropic", anthropic.Name())

		openai, err := NewRegistry().Get("openai", "test-key")
		require.NoError(t, err)
		assert.Equal(t, "openai", openai.Name())
	})
}
