package optimizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	po := New()

	t.Run("substitutes all placeholders", func(t *testing.T) {
		result, err := po.RenderTemplate("github_task", map[string]string{
			"task":    "Fix the flaky test",
			"context": "CI fails every third run",
		})
		require.NoError(t, err)
		assert.Equal(t, "Help me with this GitHub task:\nFix the flaky test\nContext: CI fails every third run", result)
	})

	t.Run("unknown template name is an error", func(t *testing.T) {
		_, err := po.RenderTemplate("nonexistent_template", nil)
		require.Error(t, err)

		var optErr *OptimizerError
		require.ErrorAs(t, err, &optErr)
		assert.Equal(t, ErrorTypeTemplateNotFound, optErr.Type)
	})

	t.Run("missing substitution value is an error", func(t *testing.T) {
		_, err := po.RenderTemplate("code_review", map[string]string{
			"code": "func main() {}",
		})
		require.Error(t, err)

		var optErr *OptimizerError
		require.ErrorAs(t, err, &optErr)
		assert.Equal(t, ErrorTypeMissingValue, optErr.Type)
		assert.Contains(t, err.Error(), "focus_areas")
	})

	t.Run("extra supplied keys are ignored", func(t *testing.T) {
		result, err := po.RenderTemplate("github_task", map[string]string{
			"task":      "Close stale issues",
			"context":   "Monthly cleanup",
			"unrelated": "ignored",
		})
		require.NoError(t, err)
		assert.NotContains(t, result, "ignored")
	})
}

func TestGetOptimizedPrompt(t *testing.T) {
	po := New()

	t.Run("runs the default pipeline on the rendered template", func(t *testing.T) {
		values := map[string]string{
			"issue": "server crashes on startup",
			"error": "nil pointer dereference",
			"steps": "run main, wait 2s",
		}
		rendered, err := po.RenderTemplate("debugging", values)
		require.NoError(t, err)

		optimized, err := po.GetOptimizedPrompt("debugging", values)
		require.NoError(t, err)
		assert.Equal(t, po.Optimize(rendered), optimized)
	})

	t.Run("propagates template errors without optimizing", func(t *testing.T) {
		_, err := po.GetOptimizedPrompt("nonexistent_template", nil)
		var optErr *OptimizerError
		require.True(t, errors.As(err, &optErr))
		assert.Equal(t, ErrorTypeTemplateNotFound, optErr.Type)
	})
}

func TestWithTemplates(t *testing.T) {
	po := New(WithTemplates(map[string]string{
		"commit_message": "Write a commit message for:\n{diff}",
	}))

	t.Run("custom template renders", func(t *testing.T) {
		result, err := po.RenderTemplate("commit_message", map[string]string{"diff": "+1 -1"})
		require.NoError(t, err)
		assert.Equal(t, "Write a commit message for:\n+1 -1", result)
	})

	t.Run("built-in templates survive", func(t *testing.T) {
		assert.ElementsMatch(t,
			[]string{"code_review", "github_task", "optimization", "debugging", "commit_message"},
			po.Templates())
	})
}
