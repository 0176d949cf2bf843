package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/polish/internal/config"
	"github.com/hpungsan/polish/internal/errors"
	"github.com/hpungsan/polish/internal/kv"
	"github.com/hpungsan/polish/internal/logging"
	"github.com/hpungsan/polish/internal/store"
)

func TestFetch_FromHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ids := seed(t, s, "a cat")

	out, err := Fetch(ctx, s, FetchInput{ID: ids[0]})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if out.ID != ids[0] || out.OriginalText != "a cat" {
		t.Errorf("Fetch = %+v", out)
	}
	if !out.InHistory || out.InFavorites {
		t.Errorf("InHistory=%v InFavorites=%v, want true/false", out.InHistory, out.InFavorites)
	}
}

func TestFetch_FavoriteInBoth(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ids := seed(t, s, "a cat")
	s.ToggleFavorite(ctx, ids[0])

	out, err := Fetch(ctx, s, FetchInput{ID: ids[0]})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !out.InHistory || !out.InFavorites || !out.IsFavorite {
		t.Errorf("Fetch = %+v, want favorite in both lists", out)
	}
}

func TestFetch_EvictedFavorite(t *testing.T) {
	ctx := context.Background()
	s := store.New(kv.NewMemory(), store.WithLogger(logging.Discard()), store.WithHistoryLimit(1))
	cfg := config.DefaultConfig()

	first, err := Enhance(ctx, s, cfg, EnhanceInput{Text: "a cat", Category: "image"})
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	s.ToggleFavorite(ctx, first.ID)
	if _, err := Enhance(ctx, s, cfg, EnhanceInput{Text: "a dog", Category: "image"}); err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}

	out, err := Fetch(ctx, s, FetchInput{ID: first.ID})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if out.InHistory || !out.InFavorites {
		t.Errorf("InHistory=%v InFavorites=%v, want false/true", out.InHistory, out.InFavorites)
	}
}

func TestFetch_NotFound(t *testing.T) {
	_, err := Fetch(context.Background(), newTestStore(t), FetchInput{ID: "01NOPE"})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestFetch_IDRequired(t *testing.T) {
	_, err := Fetch(context.Background(), newTestStore(t), FetchInput{ID: "  "})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("error = %v, want ErrInvalidRequest", err)
	}
}
