// File: optimizer/quality.go

package optimizer

import (
	"encoding/json"
	"strings"

	"github.com/invopop/jsonschema"
)

// clarityKeywords each add 10 points to the clarity score when present
// anywhere in the lower-cased prompt.
var clarityKeywords = []string{"specific", "exact", "clear", "show", "provide"}

// formatMarkers signal list or section formatting for the structure score.
var formatMarkers = []string{":", "1.", "-", "*"}

// suggestionKeywords: a prompt mentioning none of these earns the
// "include examples" suggestion. Matching is case-sensitive on the raw
// prompt, unlike the clarity keywords.
var suggestionKeywords = []string{"example", "code", "specific"}

// Advisory strings appended by AnalyzeQuality, in check order.
const (
	suggestionMoreContext = "Add more context and details"
	suggestionSections    = "Use sections or bullet points for clarity"
	suggestionExamples    = "Include examples or specific cases"
)

// QualityAnalysis is the heuristic scoring record produced by
// AnalyzeQuality. Scores are coarse screening signals, not calibrated
// measurements; the specificity score in particular is just half the
// token count.
type QualityAnalysis struct {
	// Length is the whitespace-delimited token count of the prompt.
	Length int `json:"length" validate:"min=0"`
	// ClarityScore adds 10 points per clarity keyword present, capped
	// at 100. The cap cannot bind with the current five keywords (max
	// raw score 50); it guards against future keyword growth.
	ClarityScore float64 `json:"clarity_score" validate:"min=0,max=100"`
	// SpecificityScore is the token count divided by two.
	SpecificityScore float64 `json:"specificity_score" validate:"min=0"`
	// StructureScore is 50 for prompts with at least two newlines and a
	// formatting marker, 25 otherwise.
	StructureScore float64 `json:"structure_score" validate:"oneof=25 50"`
	// Suggestions lists advisory strings in fixed check order; empty
	// when no check fires.
	Suggestions []string `json:"suggestions"`
}

// AnalyzeQuality scores the prompt against the fixed heuristics and
// collects improvement suggestions. It is a pure function: no state is
// read or written, and identical prompts always produce identical
// analyses.
func (po *PromptOptimizer) AnalyzeQuality(prompt string) QualityAnalysis {
	return QualityAnalysis{
		Length:           len(strings.Fields(prompt)),
		ClarityScore:     calculateClarity(prompt),
		SpecificityScore: calculateSpecificity(prompt),
		StructureScore:   calculateStructure(prompt),
		Suggestions:      collectSuggestions(prompt),
	}
}

// QualitySchema returns the JSON schema of the QualityAnalysis record,
// for consumers that validate or document the analysis output.
func QualitySchema() ([]byte, error) {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(&QualityAnalysis{})
	return json.MarshalIndent(schema, "", "  ")
}

func calculateClarity(prompt string) float64 {
	lowered := strings.ToLower(prompt)
	score := 0.0
	for _, keyword := range clarityKeywords {
		if strings.Contains(lowered, keyword) {
			score += 10
		}
	}
	return min(score, 100)
}

func calculateSpecificity(prompt string) float64 {
	return float64(len(strings.Fields(prompt))) / 2
}

func calculateStructure(prompt string) float64 {
	hasSections := strings.Count(prompt, "\n") >= 2
	hasFormat := containsAny(prompt, formatMarkers)
	if hasSections && hasFormat {
		return 50
	}
	return 25
}

func collectSuggestions(prompt string) []string {
	suggestions := []string{}

	if len(strings.Fields(prompt)) < 10 {
		suggestions = append(suggestions, suggestionMoreContext)
	}
	if strings.Count(prompt, "\n") < 2 {
		suggestions = append(suggestions, suggestionSections)
	}
	if !containsAny(prompt, suggestionKeywords) {
		suggestions = append(suggestions, suggestionExamples)
	}

	return suggestions
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
