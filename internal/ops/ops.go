package ops

import (
	"context"
	"strings"

	"github.com/hpungsan/polish/internal/errors"
	"github.com/hpungsan/polish/internal/prompt"
)

// List limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Pagination contains pagination metadata for list operations.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// ListOutput is the result of History and Favorites.
type ListOutput struct {
	Items      []prompt.Record `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

// parseFilter validates an optional category filter.
// An empty string means no filter.
func parseFilter(category string) (prompt.Category, error) {
	if strings.TrimSpace(category) == "" {
		return "", nil
	}
	return prompt.ParseCategory(category)
}

// paginate filters records by category and applies limit/offset.
func paginate(records []prompt.Record, category prompt.Category, limit, offset int) (*ListOutput, error) {
	if limit < 0 {
		return nil, errors.NewInvalidRequest("limit must not be negative")
	}
	if offset < 0 {
		return nil, errors.NewInvalidRequest("offset must not be negative")
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	filtered := make([]prompt.Record, 0, len(records))
	for _, r := range records {
		if category == "" || r.Category == category {
			filtered = append(filtered, r)
		}
	}

	total := len(filtered)
	start := min(offset, total)
	end := min(start+limit, total)

	return &ListOutput{
		Items: filtered[start:end],
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: end < total,
			Total:   total,
		},
	}, nil
}

// checkContext converts a done context into a CANCELLED error.
func checkContext(ctx context.Context, op string) error {
	if ctx.Err() != nil {
		return errors.NewCancelled(op)
	}
	return nil
}
