package ops

import (
	"context"

	"github.com/hpungsan/polish/internal/store"
)

// ListInput contains parameters for History and Favorites.
type ListInput struct {
	Category string // optional filter
	Limit    int    // default: 20, max: 100
	Offset   int
}

// History lists history records newest first.
func History(ctx context.Context, s *store.Store, input ListInput) (*ListOutput, error) {
	if err := checkContext(ctx, "history"); err != nil {
		return nil, err
	}
	category, err := parseFilter(input.Category)
	if err != nil {
		return nil, err
	}
	return paginate(s.ListHistory(ctx), category, input.Limit, input.Offset)
}

// Favorites lists favorite records, most recently favorited first.
func Favorites(ctx context.Context, s *store.Store, input ListInput) (*ListOutput, error) {
	if err := checkContext(ctx, "favorites"); err != nil {
		return nil, err
	}
	category, err := parseFilter(input.Category)
	if err != nil {
		return nil, err
	}
	return paginate(s.ListFavorites(ctx), category, input.Limit, input.Offset)
}
