// Package optimizer provides deterministic prompt rewriting and scoring.
//
// A PromptOptimizer holds two immutable registries: named techniques
// (pure string transformations) and named templates (strings with
// {placeholder} tokens). Prompts are optimized by running an ordered
// pipeline of techniques, each consuming the previous technique's output.
// Everything in this package is value-in/value-out; no operation touches
// shared state, performs I/O, or blocks.
package optimizer

import (
	"maps"

	"github.com/sourcegraph/conc/iter"

	"github.com/alsokkary/promptsmith/internal/logging"
)

// PromptOptimizer applies named optimization techniques and renders
// registered prompt templates. Both registries are fixed at construction;
// a PromptOptimizer is safe for concurrent use.
type PromptOptimizer struct {
	techniques map[string]Technique
	templates  map[string]string
	logger     logging.Logger
}

// Option configures a PromptOptimizer during construction.
type Option func(*PromptOptimizer)

// WithLogger sets the logger used for pipeline debug output.
func WithLogger(logger logging.Logger) Option {
	return func(po *PromptOptimizer) {
		po.logger = logger
	}
}

// WithTemplates registers additional templates alongside the built-in
// set. Entries sharing a name with a built-in template override it.
// Templates cannot be added after construction.
func WithTemplates(templates map[string]string) Option {
	return func(po *PromptOptimizer) {
		maps.Copy(po.templates, templates)
	}
}

// New creates a PromptOptimizer with the built-in technique and template
// registries.
func New(opts ...Option) *PromptOptimizer {
	po := &PromptOptimizer{
		techniques: builtinTechniques(),
		templates:  builtinTemplates(),
		logger:     logging.NewLogger(logging.LogLevelWarn),
	}
	for _, opt := range opts {
		opt(po)
	}
	return po
}

// Optimize applies the named techniques to the prompt in order, feeding
// each technique's output into the next. When no technique names are
// supplied the default pipeline (clarity, specificity, structure) runs.
// Unknown technique names are skipped silently; they are not an error.
func (po *PromptOptimizer) Optimize(prompt string, techniques ...string) string {
	if len(techniques) == 0 {
		techniques = DefaultTechniques
	}

	optimized := prompt
	for _, name := range techniques {
		transform, ok := po.techniques[name]
		if !ok {
			po.logger.Debug("Skipping unknown technique", "technique", name)
			continue
		}
		optimized = transform(optimized)
		po.logger.Debug("Applied technique", "technique", name, "length", len(optimized))
	}
	return optimized
}

// BatchOptimize applies the default pipeline to each prompt
// independently. Results come back in input order, one per prompt, each
// identical to a standalone Optimize call. Prompts share no state, so the
// batch fans out across goroutines.
func (po *PromptOptimizer) BatchOptimize(prompts []string) []string {
	if len(prompts) == 0 {
		return []string{}
	}
	return iter.Map(prompts, func(prompt *string) string {
		return po.Optimize(*prompt)
	})
}

// Techniques returns the names of the registered techniques.
func (po *PromptOptimizer) Techniques() []string {
	names := make([]string, 0, len(po.techniques))
	for name := range po.techniques {
		names = append(names, name)
	}
	return names
}
