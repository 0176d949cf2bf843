package ops

import (
	"context"
	"strings"
	"time"

	"github.com/hpungsan/polish/internal/config"
	"github.com/hpungsan/polish/internal/enhance"
	"github.com/hpungsan/polish/internal/errors"
	"github.com/hpungsan/polish/internal/prompt"
	"github.com/hpungsan/polish/internal/store"
)

// EnhanceInput contains parameters for the Enhance operation.
type EnhanceInput struct {
	Text     string // required, non-blank
	Category string // text|image|video, default: text
}

// EnhanceOutput is the record created by Enhance.
type EnhanceOutput struct {
	prompt.Record
}

// Enhance enhances the text, records it in history and returns the new record.
func Enhance(ctx context.Context, s *store.Store, cfg *config.Config, input EnhanceInput) (*EnhanceOutput, error) {
	if err := checkContext(ctx, "enhance"); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.NewInvalidRequest("text is required")
	}
	if cfg != nil && cfg.PromptMaxChars > 0 {
		if n := prompt.CountChars(input.Text); n > cfg.PromptMaxChars {
			return nil, errors.NewPromptTooLarge(cfg.PromptMaxChars, n)
		}
	}

	category, err := prompt.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	id, err := prompt.NewID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	record := prompt.Record{
		ID:           id,
		Category:     category,
		OriginalText: input.Text,
		EnhancedText: enhance.Enhance(input.Text, category),
		IsFavorite:   false,
		CreatedAt:    time.Now().UTC(),
	}
	s.Append(ctx, record)

	return &EnhanceOutput{Record: record}, nil
}

// PreviewInput contains parameters for the Preview operation.
type PreviewInput struct {
	Text     string
	Category string
}

// PreviewOutput is the enhancement result without persistence.
type PreviewOutput struct {
	Category     string   `json:"promptType"`
	OriginalText string   `json:"originalPrompt"`
	EnhancedText string   `json:"enhancedPrompt"`
	TextKind     string   `json:"text_kind,omitempty"` // text prompts only
	Clauses      []string `json:"clauses,omitempty"`   // image/video rules that fired
}

// Preview runs the enhancer without touching the store.
// Blank text yields the empty-prompt message; an unknown category passes the text through.
func Preview(ctx context.Context, input PreviewInput) (*PreviewOutput, error) {
	if err := checkContext(ctx, "preview"); err != nil {
		return nil, err
	}

	category := prompt.Category(prompt.Normalize(input.Category))
	if category == "" {
		category = prompt.Text
	}

	out := &PreviewOutput{
		Category:     string(category),
		OriginalText: input.Text,
		EnhancedText: enhance.Enhance(input.Text, category),
	}
	if strings.TrimSpace(input.Text) == "" {
		return out, nil
	}

	switch category {
	case prompt.Text:
		out.TextKind = string(enhance.ClassifyText(input.Text))
	case prompt.Image:
		out.Clauses = enhance.ImageRules.Steps(input.Text)
	case prompt.Video:
		out.Clauses = enhance.VideoRules.Steps(input.Text)
	}
	return out, nil
}
