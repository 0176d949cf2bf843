package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/polish/internal/config"
	"github.com/hpungsan/polish/internal/kv"
	"github.com/hpungsan/polish/internal/logging"
	"github.com/hpungsan/polish/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(kv.NewMemory(), store.WithLogger(logging.Discard()))
}

// seed enhances each text as an image prompt and returns the ids, oldest first.
func seed(t *testing.T, s *store.Store, texts ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(texts))
	for _, text := range texts {
		out, err := Enhance(context.Background(), s, config.DefaultConfig(), EnhanceInput{Text: text, Category: "image"})
		if err != nil {
			t.Fatalf("Enhance(%q) failed: %v", text, err)
		}
		ids = append(ids, out.ID)
	}
	return ids
}
