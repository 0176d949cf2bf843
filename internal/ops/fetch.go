package ops

import (
	"context"
	"strings"

	"github.com/hpungsan/polish/internal/errors"
	"github.com/hpungsan/polish/internal/prompt"
	"github.com/hpungsan/polish/internal/store"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	ID string
}

// FetchOutput is a record plus where it currently lives.
type FetchOutput struct {
	prompt.Record
	InHistory   bool `json:"in_history"`
	InFavorites bool `json:"in_favorites"`
}

// Fetch looks up a record by id in history, then in favorites.
func Fetch(ctx context.Context, s *store.Store, input FetchInput) (*FetchOutput, error) {
	if err := checkContext(ctx, "fetch"); err != nil {
		return nil, err
	}
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	var out *FetchOutput
	for _, r := range s.ListHistory(ctx) {
		if r.ID == id {
			out = &FetchOutput{Record: r, InHistory: true}
			break
		}
	}
	for _, r := range s.ListFavorites(ctx) {
		if r.ID == id {
			if out == nil {
				out = &FetchOutput{Record: r}
			}
			out.InFavorites = true
			break
		}
	}

	if out == nil {
		return nil, errors.NewNotFound(id)
	}
	return out, nil
}
