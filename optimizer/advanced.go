package optimizer

import (
	"fmt"
	"strings"
)

// CreateAdvancedPrompt assembles a task, its context, constraints and
// example list into the advanced prompt skeleton, then runs the result
// through the clarity, specificity and structure techniques. Each example
// becomes its own "- " bullet, in input order.
func CreateAdvancedPrompt(task, context, constraints string, examples []string) string {
	bullets := make([]string, len(examples))
	for i, example := range examples {
		bullets[i] = "- " + example
	}

	assembled := fmt.Sprintf(advancedPromptTemplate, task, context, constraints, strings.Join(bullets, "\n"))

	return New().Optimize(assembled, TechniqueClarity, TechniqueSpecificity, TechniqueStructure)
}
