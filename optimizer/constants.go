// File: optimizer/constants.go

package optimizer

// Fixed text blocks appended or substituted by the optimization techniques.
// These are load-bearing: callers and tests pin the exact output of each
// technique, so any edit here is a behavior change.

// clarityFillers are removed from the prompt by the clarity technique.
// Removal is plain substring replacement, so a filler embedded in a longer
// word ("okaydone") is removed too. That matches the documented behavior.
var clarityFillers = []string{"please", "thanks", "okay"}

// clarityDirectives are appended by the clarity technique, joined by a
// single space.
var clarityDirectives = []string{
	"Be concise and direct.",
	"Provide specific examples.",
	"Focus on actionable insights.",
}

// specificityAdditions are appended by the specificity technique, one
// "- " bullet per line.
var specificityAdditions = []string{
	"Provide specific examples or code snippets.",
	"Include exact error messages or outputs.",
	"Specify the programming language if applicable.",
	"Mention version numbers of tools/libraries.",
}

// contextBlock is appended verbatim by the context technique. The
// {purpose}, {constraints} and {output} tokens are left unfilled: the
// technique adds a skeleton for the caller to complete, it does not
// accept substitution values.
const contextBlock = `
CONTEXT INFORMATION:
- Purpose: {purpose}
- Constraints: {constraints}
- Expected Output: {output}
`

// structureTemplate replaces the whole prompt; the prior content survives
// only as the TASK body. %s receives the then-current pipeline value.
const structureTemplate = `TASK: %s

REQUIREMENTS:
1. Provide clear, step-by-step guidance
2. Include code examples where applicable
3. Highlight important considerations
4. Suggest best practices

FORMAT:
- Use bullet points for lists
- Use code blocks for code
- Use bold for key terms`

// examplesSection is appended by the examples technique.
const examplesSection = `
EXAMPLES:
- Good: [Specific example of what's expected]
- Avoid: [Example of what to avoid]
`

// advancedPromptTemplate is the assembly skeleton used by
// CreateAdvancedPrompt. The four %s verbs receive task, context,
// constraints and the rendered example bullets, in that order.
const advancedPromptTemplate = `MAIN TASK:
%s

CONTEXT:
%s

CONSTRAINTS:
%s

EXAMPLES:
%s

RESPONSE GUIDELINES:
1. Be direct and concise
2. Provide step-by-step guidance
3. Include code examples where relevant
4. Highlight important considerations
5. Suggest best practices`
