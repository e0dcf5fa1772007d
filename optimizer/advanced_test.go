package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAdvancedPrompt(t *testing.T) {
	result := CreateAdvancedPrompt(
		"Refactor the parser",
		"Legacy codebase, no test coverage",
		"Public API must not change",
		[]string{"Extract the lexer first", "Add table-driven tests"},
	)

	t.Run("ends in the structure wrapper", func(t *testing.T) {
		// structure runs last in the fixed pipeline, so the assembled
		// sections all live under the TASK heading.
		assert.True(t, strings.HasPrefix(result, "TASK: MAIN TASK:"), "got prefix %q", result[:30])
		assert.Contains(t, result, "REQUIREMENTS:")
		assert.Contains(t, result, "FORMAT:")
	})

	t.Run("embeds all four sections", func(t *testing.T) {
		assert.Contains(t, result, "MAIN TASK:\nRefactor the parser")
		assert.Contains(t, result, "CONTEXT:\nLegacy codebase, no test coverage")
		assert.Contains(t, result, "CONSTRAINTS:\nPublic API must not change")
		assert.Contains(t, result, "EXAMPLES:\n- Extract the lexer first\n- Add table-driven tests")
	})

	t.Run("includes the response guidelines", func(t *testing.T) {
		assert.Contains(t, result, "RESPONSE GUIDELINES:")
		assert.Contains(t, result, "1. Be direct and concise")
		assert.Contains(t, result, "5. Suggest best practices")
	})

	t.Run("examples keep input order", func(t *testing.T) {
		first := strings.Index(result, "Extract the lexer first")
		second := strings.Index(result, "Add table-driven tests")
		assert.Less(t, first, second)
	})

	t.Run("empty examples render an empty section", func(t *testing.T) {
		out := CreateAdvancedPrompt("task", "ctx", "none", nil)
		assert.Contains(t, out, "EXAMPLES:\n\n")
	})
}
