package optimizer

import (
	"fmt"
	"strings"
)

// Technique is a pure string-to-string prompt transformation. Every
// technique is deterministic and free of side effects: the same input
// always produces the same output.
type Technique func(prompt string) string

// Technique names recognized by the pipeline.
const (
	TechniqueClarity     = "clarity"
	TechniqueSpecificity = "specificity"
	TechniqueContext     = "context"
	TechniqueStructure   = "structure"
	TechniqueExamples    = "examples"
)

// DefaultTechniques is the pipeline applied when the caller supplies no
// technique names.
var DefaultTechniques = []string{TechniqueClarity, TechniqueSpecificity, TechniqueStructure}

// builtinTechniques returns the full technique registry. A fresh map is
// built per optimizer so the registry stays immutable for the lifetime of
// each instance.
func builtinTechniques() map[string]Technique {
	return map[string]Technique{
		TechniqueClarity:     enhanceClarity,
		TechniqueSpecificity: addSpecificity,
		TechniqueContext:     addContext,
		TechniqueStructure:   structurePrompt,
		TechniqueExamples:    addExamples,
	}
}

// enhanceClarity strips filler words and appends the clarity directives.
// Filler removal is case-sensitive substring replacement: "Please" stays,
// "okaydone" loses its "okay". The result is trimmed of surrounding
// whitespace.
func enhanceClarity(prompt string) string {
	enhanced := prompt
	for _, filler := range clarityFillers {
		enhanced = strings.ReplaceAll(enhanced, filler, "")
	}
	enhanced += "\n\n" + strings.Join(clarityDirectives, " ")
	return strings.TrimSpace(enhanced)
}

// addSpecificity appends the specificity suggestions as a bullet list.
func addSpecificity(prompt string) string {
	var sb strings.Builder
	sb.WriteString(prompt)
	sb.WriteString("\n")
	for _, item := range specificityAdditions {
		sb.WriteString("\n- ")
		sb.WriteString(item)
	}
	return sb.String()
}

// addContext appends the context skeleton. The placeholder tokens inside
// the block are intentionally left unfilled.
func addContext(prompt string) string {
	return prompt + contextBlock
}

// structurePrompt discards the prompt's shape and rebuilds it around a
// TASK heading. Unlike the other techniques this one is lossy: whatever
// the pipeline produced so far becomes the TASK body, so its position in
// the technique list determines what later techniques see.
func structurePrompt(prompt string) string {
	return strings.TrimSpace(fmt.Sprintf(structureTemplate, prompt))
}

// addExamples appends the placeholder EXAMPLES section.
func addExamples(prompt string) string {
	return prompt + "\n" + examplesSection
}
