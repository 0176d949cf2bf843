package enhance

import "strings"

// TextKind is the classification of a text prompt.
type TextKind string

const (
	KindInstruction TextKind = "instruction"
	KindQuestion    TextKind = "question"
	KindDescription TextKind = "description"
)

var (
	instructionPrefixes = []string{"write", "create", "generate"}
	questionPrefixes    = []string{"what", "how", "why"}
)

// ClassifyText returns the kind of text prompt; first match wins.
// Prefixes are raw string prefixes, so "writer" counts as an instruction.
func ClassifyText(raw string) TextKind {
	lowered := snapshot(raw)

	if hasAnyPrefix(lowered, instructionPrefixes) {
		return KindInstruction
	}
	if hasAnyPrefix(lowered, questionPrefixes) || strings.Contains(lowered, "?") {
		return KindQuestion
	}
	return KindDescription
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func enhanceText(raw string) string {
	return raw + "\n\n" + textTemplates[ClassifyText(raw)]
}

var textTemplates = map[TextKind]string{
	KindInstruction: structuredGuidance,
	KindQuestion:    analyticalFramework,
	KindDescription: descriptiveElements,
}

const structuredGuidance = `Please structure the response as follows:
1. Introduction
   - Context and background
   - Clear thesis or main argument
2. Main Body
   - Key points with supporting evidence
   - Relevant examples and case studies
   - Counter-arguments and their refutation
3. Conclusion
   - Summary of main points
   - Implications and significance
   - Call to action or future considerations

Style Guidelines:
- Use clear, concise language
- Support claims with evidence
- Maintain a professional tone
- Include relevant citations where appropriate`

const analyticalFramework = `Please provide a comprehensive analysis that includes:
- Definition of key terms and concepts
- Historical context and background
- Current state of understanding
- Different perspectives and approaches
- Real-world applications and examples
- Critical evaluation of evidence
- Practical implications
- Future directions and open questions

Consider multiple viewpoints and cite relevant research or expert opinions where applicable.`

const descriptiveElements = `Please provide a rich, detailed response that incorporates:
- Vivid descriptions and sensory details
- Relevant metaphors and analogies
- Supporting examples and illustrations
- Cultural or historical context
- Technical specifications where relevant
- Practical applications
- Impact and significance
- Related concepts and connections

Ensure the description is engaging, well-organized, and accessible to the target audience.`
