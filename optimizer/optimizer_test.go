package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alsokkary/promptsmith/internal/logging"
)

func TestOptimize(t *testing.T) {
	po := New()

	t.Run("deterministic", func(t *testing.T) {
		first := po.Optimize("summarize this article", "clarity", "examples")
		second := po.Optimize("summarize this article", "clarity", "examples")
		assert.Equal(t, first, second)
	})

	t.Run("unknown technique is a silent no-op", func(t *testing.T) {
		// Unrecognized names are skipped, never an error.
		result := po.Optimize("hello world", "not_a_real_technique")
		assert.Equal(t, "hello world", result)
	})

	t.Run("default pipeline is clarity specificity structure", func(t *testing.T) {
		withDefaults := po.Optimize("help me with my GitHub issue")
		explicit := po.Optimize("help me with my GitHub issue",
			TechniqueClarity, TechniqueSpecificity, TechniqueStructure)
		assert.Equal(t, explicit, withDefaults)
	})

	t.Run("structure wraps the pipeline value, not the raw input", func(t *testing.T) {
		result := po.Optimize("fix this bug", "clarity", "structure")

		expected := "TASK: fix this bug\n\n" +
			clarityDirectiveLine + "\n\n" +
			"REQUIREMENTS:\n" +
			"1. Provide clear, step-by-step guidance\n" +
			"2. Include code examples where applicable\n" +
			"3. Highlight important considerations\n" +
			"4. Suggest best practices\n\n" +
			"FORMAT:\n" +
			"- Use bullet points for lists\n" +
			"- Use code blocks for code\n" +
			"- Use bold for key terms"
		assert.Equal(t, expected, result)
	})

	t.Run("order changes the output", func(t *testing.T) {
		structureFirst := po.Optimize("fix this bug", "structure", "clarity")
		structureLast := po.Optimize("fix this bug", "clarity", "structure")
		assert.NotEqual(t, structureFirst, structureLast)
	})

	t.Run("logs skipped techniques", func(t *testing.T) {
		logger := logging.NewMockLogger(logging.LogLevelDebug)
		loggingPO := New(WithLogger(logger))
		loggingPO.Optimize("hello", "bogus")
		assert.NotEmpty(t, logger.Entries())
	})
}

func TestBatchOptimize(t *testing.T) {
	po := New()

	t.Run("preserves input order", func(t *testing.T) {
		prompts := []string{
			"fix this bug",
			"review my pull request",
			"explain this stack trace",
			"write release notes",
		}
		results := po.BatchOptimize(prompts)

		assert.Len(t, results, len(prompts))
		for i, prompt := range prompts {
			assert.Equal(t, po.Optimize(prompt), results[i],
				"batch result %d should match the individual call", i)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, po.BatchOptimize(nil))
	})
}

func TestTechniqueRegistry(t *testing.T) {
	po := New()
	assert.ElementsMatch(t,
		[]string{"clarity", "specificity", "context", "structure", "examples"},
		po.Techniques())
}
