package ops

import (
	"context"
	"strings"
	"testing"

	"github.com/hpungsan/polish/internal/config"
	"github.com/hpungsan/polish/internal/enhance"
	"github.com/hpungsan/polish/internal/errors"
	"github.com/hpungsan/polish/internal/prompt"
)

func TestEnhance_HappyPath(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	out, err := Enhance(ctx, s, config.DefaultConfig(), EnhanceInput{Text: "a cat", Category: "Image"})
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}

	if out.ID == "" {
		t.Error("ID should not be empty")
	}
	if out.Category != prompt.Image {
		t.Errorf("Category = %q, want image", out.Category)
	}
	if out.OriginalText != "a cat" {
		t.Errorf("OriginalText = %q, want %q", out.OriginalText, "a cat")
	}
	if out.EnhancedText != enhance.Enhance("a cat", prompt.Image) {
		t.Errorf("EnhancedText = %q", out.EnhancedText)
	}
	if out.IsFavorite {
		t.Error("new record should not be a favorite")
	}
	if out.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	history := s.ListHistory(ctx)
	if len(history) != 1 || history[0].ID != out.ID {
		t.Errorf("history = %+v, want the new record", history)
	}
}

func TestEnhance_DefaultsToText(t *testing.T) {
	out, err := Enhance(context.Background(), newTestStore(t), config.DefaultConfig(), EnhanceInput{Text: "Write a poem"})
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	if out.Category != prompt.Text {
		t.Errorf("Category = %q, want text", out.Category)
	}
	if !strings.HasPrefix(out.EnhancedText, "Write a poem\n\n") {
		t.Errorf("EnhancedText = %q, want instruction template appended", out.EnhancedText)
	}
}

func TestEnhance_BlankTextRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := Enhance(ctx, s, config.DefaultConfig(), EnhanceInput{Text: text, Category: "text"})
		if !errors.Is(err, errors.ErrInvalidRequest) {
			t.Errorf("Enhance(%q) error = %v, want ErrInvalidRequest", text, err)
		}
	}
	if n := len(s.ListHistory(ctx)); n != 0 {
		t.Errorf("history length = %d, want 0", n)
	}
}

func TestEnhance_UnknownCategory(t *testing.T) {
	_, err := Enhance(context.Background(), newTestStore(t), config.DefaultConfig(), EnhanceInput{Text: "a cat", Category: "audio"})
	if !errors.Is(err, errors.ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}
}

func TestEnhance_TooLarge(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.PromptMaxChars = 5

	_, err := Enhance(context.Background(), newTestStore(t), cfg, EnhanceInput{Text: "abcdef"})
	if !errors.Is(err, errors.ErrPromptTooLarge) {
		t.Errorf("error = %v, want ErrPromptTooLarge", err)
	}

	// runes, not bytes
	if _, err := Enhance(context.Background(), newTestStore(t), cfg, EnhanceInput{Text: "héllo"}); err != nil {
		t.Errorf("5-rune prompt rejected: %v", err)
	}
}

func TestEnhance_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Enhance(ctx, newTestStore(t), config.DefaultConfig(), EnhanceInput{Text: "a cat"})
	if !errors.Is(err, errors.ErrCancelled) {
		t.Errorf("error = %v, want ErrCancelled", err)
	}
}

func TestEnhance_UniqueIDs(t *testing.T) {
	s := newTestStore(t)
	ids := seed(t, s, "a", "b", "c")

	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestPreview_Image(t *testing.T) {
	out, err := Preview(context.Background(), PreviewInput{Text: "a cat, soft lighting", Category: "image"})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if out.EnhancedText != enhance.Enhance("a cat, soft lighting", prompt.Image) {
		t.Errorf("EnhancedText = %q", out.EnhancedText)
	}
	for _, c := range out.Clauses {
		if c == "lighting" {
			t.Error("lighting clause should not fire when the prompt mentions lighting")
		}
	}
	if len(out.Clauses) == 0 {
		t.Error("expected clauses for image preview")
	}
	if out.TextKind != "" {
		t.Errorf("TextKind = %q, want empty for image", out.TextKind)
	}
}

func TestPreview_TextKind(t *testing.T) {
	out, err := Preview(context.Background(), PreviewInput{Text: "How do magnets work"})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if out.Category != "text" {
		t.Errorf("Category = %q, want text", out.Category)
	}
	if out.TextKind != string(enhance.KindQuestion) {
		t.Errorf("TextKind = %q, want %q", out.TextKind, enhance.KindQuestion)
	}
}

func TestPreview_BlankAndUnknown(t *testing.T) {
	out, err := Preview(context.Background(), PreviewInput{Text: "  ", Category: "video"})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if out.EnhancedText != enhance.EmptyPromptMessage {
		t.Errorf("EnhancedText = %q, want empty-prompt message", out.EnhancedText)
	}
	if len(out.Clauses) != 0 {
		t.Errorf("Clauses = %v, want none", out.Clauses)
	}

	out, err = Preview(context.Background(), PreviewInput{Text: "a cat", Category: "audio"})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if out.EnhancedText != "a cat" {
		t.Errorf("EnhancedText = %q, want passthrough", out.EnhancedText)
	}
}
