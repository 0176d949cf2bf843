// Package enhance rewrites a raw prompt into a template-augmented prompt.
// Enhance is pure: identical (text, category) input always yields identical output.
package enhance

import (
	"strings"

	"github.com/hpungsan/polish/internal/prompt"
)

// EmptyPromptMessage is returned for empty or whitespace-only input.
const EmptyPromptMessage = "Please provide a prompt to enhance."

// Enhance returns the enhanced form of raw for the given category.
// An unrecognized category returns raw unchanged.
func Enhance(raw string, category prompt.Category) string {
	if strings.TrimSpace(raw) == "" {
		return EmptyPromptMessage
	}

	switch category {
	case prompt.Text:
		return enhanceText(raw)
	case prompt.Image:
		return ImageRules.Apply(raw)
	case prompt.Video:
		return VideoRules.Apply(raw)
	default:
		return raw
	}
}

// snapshot is the immutable view every keyword check reads.
func snapshot(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
