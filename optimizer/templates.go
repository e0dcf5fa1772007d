// File: optimizer/templates.go

package optimizer

import (
	"fmt"
	"regexp"
	"strings"
)

// Built-in template names.
const (
	TemplateCodeReview   = "code_review"
	TemplateGitHubTask   = "github_task"
	TemplateOptimization = "optimization"
	TemplateDebugging    = "debugging"
)

// builtinTemplates returns the template registry. Placeholders use the
// {name} form and are filled by RenderTemplate.
func builtinTemplates() map[string]string {
	return map[string]string{
		TemplateCodeReview:   "Review the following code for issues:\n{code}\nFocus on: {focus_areas}",
		TemplateGitHubTask:   "Help me with this GitHub task:\n{task}\nContext: {context}",
		TemplateOptimization: "Optimize this {type}:\n{content}\nCriteria: {criteria}",
		TemplateDebugging:    "Help me debug this issue:\n{issue}\nError: {error}\nSteps: {steps}",
	}
}

// placeholderPattern matches {name} substitution tokens. Names are
// word characters only, so prose in braces is left alone.
var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// RenderTemplate looks up the named template and substitutes every
// {placeholder} token with the corresponding value. A template name
// absent from the registry yields ErrorTypeTemplateNotFound; a
// placeholder with no supplied value yields ErrorTypeMissingValue.
// Supplied keys without a matching placeholder are ignored.
func (po *PromptOptimizer) RenderTemplate(name string, values map[string]string) (string, error) {
	template, ok := po.templates[name]
	if !ok {
		return "", NewOptimizerError(ErrorTypeTemplateNotFound,
			fmt.Sprintf("unknown prompt template %q", name), nil)
	}
	return substitute(template, values)
}

// GetOptimizedPrompt renders the named template and runs the result
// through the default optimization pipeline.
func (po *PromptOptimizer) GetOptimizedPrompt(name string, values map[string]string) (string, error) {
	rendered, err := po.RenderTemplate(name, values)
	if err != nil {
		return "", err
	}
	return po.Optimize(rendered), nil
}

// Templates returns the names of the registered templates.
func (po *PromptOptimizer) Templates() []string {
	names := make([]string, 0, len(po.templates))
	for name := range po.templates {
		names = append(names, name)
	}
	return names
}

// substitute fills every {name} token in the template from values. All
// missing keys are collected so the error names each one.
func substitute(template string, values map[string]string) (string, error) {
	var missing []string
	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		key := token[1 : len(token)-1]
		value, ok := values[key]
		if !ok {
			missing = append(missing, key)
			return token
		}
		return value
	})
	if len(missing) > 0 {
		return "", NewOptimizerError(ErrorTypeMissingValue,
			fmt.Sprintf("no substitution value for %s", strings.Join(missing, ", ")), nil)
	}
	return rendered, nil
}
