package llm

import (
	"fmt"
	"sync"
)

// Factory builds a Provider from an API key.
type Factory func(apiKey string) (Provider, error)

// Registry maps provider names to factories. The default registry knows
// the anthropic and openai providers; additional providers can be
// registered before the agent is constructed.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a Registry with the built-in providers registered.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("anthropic", func(apiKey string) (Provider, error) {
		return NewAnthropicProvider(apiKey)
	})
	r.Register("openai", func(apiKey string) (Provider, error) {
		return NewOpenAIProvider(apiKey)
	})
	return r
}

// Register adds or replaces a provider factory.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get builds the named provider. Unknown names are an error, unlike
// unknown optimizer techniques.
func (r *Registry) Get(name, apiKey string) (Provider, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, NewProviderError(ErrorTypeProvider,
			fmt.Sprintf("unknown provider %q", name), nil)
	}
	return factory(apiKey)
}

// Providers returns the registered provider names.
func (r *Registry) Providers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
