// Package promptsmith is a small toolkit for working with LLM prompts:
// a deterministic prompt optimizer plus a minimal conversational agent.
//
// The optimizer subpackage is the core. It rewrites prompt text through
// named techniques, renders registered templates, scores prompt quality,
// and needs nothing beyond plain strings. The Agent in this package is a
// thin sequential wrapper over a remote chat-completion provider with an
// in-memory conversation history.
package promptsmith

import (
	"github.com/alsokkary/promptsmith/internal/logging"
	"github.com/alsokkary/promptsmith/llm"
	"github.com/alsokkary/promptsmith/optimizer"
)

// Re-exported types from the subpackages, forming the primary API
// surface.
type (
	// PromptOptimizer applies named text-transformation techniques and
	// renders prompt templates.
	PromptOptimizer = optimizer.PromptOptimizer

	// QualityAnalysis is the heuristic scoring record produced by
	// AnalyzeQuality.
	QualityAnalysis = optimizer.QualityAnalysis

	// OptimizerError is the typed error returned by template rendering.
	OptimizerError = optimizer.OptimizerError

	// Message is a single turn in an agent conversation.
	Message = llm.Message

	// Provider is a remote chat-completion endpoint.
	Provider = llm.Provider

	// LogLevel controls library log verbosity.
	LogLevel = logging.LogLevel
)

// Log level constants.
const (
	LogLevelDebug = logging.LogLevelDebug
	LogLevelInfo  = logging.LogLevelInfo
	LogLevelWarn  = logging.LogLevelWarn
	LogLevelError = logging.LogLevelError
)

// Re-exported constructors and operations.
var (
	// NewOptimizer creates a PromptOptimizer with the built-in
	// technique and template registries.
	NewOptimizer = optimizer.New

	// CreateAdvancedPrompt assembles a task, context, constraints and
	// examples into an optimized prompt.
	CreateAdvancedPrompt = optimizer.CreateAdvancedPrompt

	// DefaultTechniques is the pipeline applied when no technique names
	// are supplied.
	DefaultTechniques = optimizer.DefaultTechniques
)
