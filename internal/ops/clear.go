package ops

import (
	"context"
	"fmt"

	"github.com/hpungsan/polish/internal/store"
)

// ClearHistoryOutput contains the result of the ClearHistory operation.
type ClearHistoryOutput struct {
	Cleared int    `json:"cleared"`
	Message string `json:"message"`
}

// ClearHistory removes every history record. Favorites are kept.
func ClearHistory(ctx context.Context, s *store.Store) (*ClearHistoryOutput, error) {
	if err := checkContext(ctx, "clear_history"); err != nil {
		return nil, err
	}

	n := len(s.ListHistory(ctx))
	s.ClearHistory(ctx)

	return &ClearHistoryOutput{
		Cleared: n,
		Message: fmt.Sprintf("Cleared %d prompt(s) from history; favorites kept.", n),
	}, nil
}
