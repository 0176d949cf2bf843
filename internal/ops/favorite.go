package ops

import (
	"context"
	"strings"

	"github.com/hpungsan/polish/internal/errors"
	"github.com/hpungsan/polish/internal/store"
)

// ToggleFavoriteInput contains parameters for the ToggleFavorite operation.
type ToggleFavoriteInput struct {
	ID string
}

// ToggleFavoriteOutput reports the new favorite state.
// Favorite is false when the id is not in history.
type ToggleFavoriteOutput struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

// ToggleFavorite flips the favorite flag of a history record.
func ToggleFavorite(ctx context.Context, s *store.Store, input ToggleFavoriteInput) (*ToggleFavoriteOutput, error) {
	if err := checkContext(ctx, "toggle_favorite"); err != nil {
		return nil, err
	}
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	return &ToggleFavoriteOutput{
		ID:       id,
		Favorite: s.ToggleFavorite(ctx, id),
	}, nil
}
