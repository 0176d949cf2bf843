// Package store persists prompt history and favorites through a kv.Backend.
//
// Storage failures never reach callers: an unreadable or unparseable
// collection reads as empty, and a failed write still returns the computed
// result. Each swallowed failure is logged and reported to the failure hook.
package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hpungsan/polish/internal/kv"
	"github.com/hpungsan/polish/internal/logging"
	"github.com/hpungsan/polish/internal/prompt"
)

// Persisted keys.
const (
	HistoryKey   = "promptPolish_history"
	FavoritesKey = "promptPolish_favorites"
)

// DefaultHistoryLimit is the number of records history keeps.
const DefaultHistoryLimit = 20

// FailureKind classifies a swallowed storage failure.
type FailureKind string

const (
	FailureRead  FailureKind = "read"  // backend Get failed
	FailureParse FailureKind = "parse" // stored value is not a record array
	FailureWrite FailureKind = "write" // backend Set or Delete failed
)

// Failure describes one swallowed storage failure.
type Failure struct {
	Op   string
	Key  string
	Kind FailureKind
	Err  error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFailureHook registers fn to receive every swallowed failure.
func WithFailureHook(fn func(Failure)) Option {
	return func(s *Store) {
		s.onFailure = fn
	}
}

// WithHistoryLimit overrides DefaultHistoryLimit. Non-positive values are ignored.
func WithHistoryLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// Store holds the history (bounded, newest first) and favorites (unbounded) lists.
// It assumes a single writer; concurrent writers may lose updates.
type Store struct {
	backend   kv.Backend
	limit     int
	logger    *slog.Logger
	onFailure func(Failure)
}

// New creates a Store over backend.
func New(backend kv.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		limit:   DefaultHistoryLimit,
		logger:  logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HistoryLimit returns the configured history bound.
func (s *Store) HistoryLimit() int {
	return s.limit
}

// ListHistory returns history newest first.
func (s *Store) ListHistory(ctx context.Context) []prompt.Record {
	return s.load(ctx, "list_history", HistoryKey)
}

// ListFavorites returns favorites, most recently favorited first.
func (s *Store) ListFavorites(ctx context.Context) []prompt.Record {
	return s.load(ctx, "list_favorites", FavoritesKey)
}

// Append prepends r to history and drops records beyond the limit.
// Dropped records are not removed from favorites.
func (s *Store) Append(ctx context.Context, r prompt.Record) {
	history := s.load(ctx, "append", HistoryKey)

	updated := make([]prompt.Record, 0, len(history)+1)
	updated = append(updated, r)
	updated = append(updated, history...)
	if len(updated) > s.limit {
		updated = updated[:s.limit]
	}

	s.save(ctx, "append", HistoryKey, updated)
}

// ToggleFavorite flips the favorite state of the history record with id and
// returns the new state. An id not in history returns false and changes nothing.
func (s *Store) ToggleFavorite(ctx context.Context, id string) bool {
	const op = "toggle_favorite"

	history := s.load(ctx, op, HistoryKey)
	idx := indexOf(history, id)
	if idx < 0 {
		return false
	}
	favorites := s.load(ctx, op, FavoritesKey)

	favorite := indexOf(favorites, id) < 0
	if favorite {
		fav := history[idx]
		fav.IsFavorite = true
		favorites = append([]prompt.Record{fav}, favorites...)
	} else {
		favorites = removeID(favorites, id)
	}
	history[idx].IsFavorite = favorite

	s.save(ctx, op, FavoritesKey, favorites)
	s.save(ctx, op, HistoryKey, history)

	return favorite
}

// ClearHistory deletes all history. Favorites are untouched.
func (s *Store) ClearHistory(ctx context.Context) {
	if err := s.backend.Delete(ctx, HistoryKey); err != nil {
		s.fail(ctx, Failure{Op: "clear_history", Key: HistoryKey, Kind: FailureWrite, Err: err})
	}
}

func (s *Store) load(ctx context.Context, op, key string) []prompt.Record {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.fail(ctx, Failure{Op: op, Key: key, Kind: FailureRead, Err: err})
		return []prompt.Record{}
	}
	if !ok || raw == "" {
		return []prompt.Record{}
	}

	var records []prompt.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.fail(ctx, Failure{Op: op, Key: key, Kind: FailureParse, Err: goerr.Wrap(err, "failed to parse records", goerr.V("key", key))})
		return []prompt.Record{}
	}
	if records == nil {
		return []prompt.Record{}
	}
	return records
}

func (s *Store) save(ctx context.Context, op, key string, records []prompt.Record) {
	data, err := json.Marshal(records)
	if err != nil {
		s.fail(ctx, Failure{Op: op, Key: key, Kind: FailureWrite, Err: goerr.Wrap(err, "failed to encode records", goerr.V("key", key))})
		return
	}
	if err := s.backend.Set(ctx, key, string(data)); err != nil {
		s.fail(ctx, Failure{Op: op, Key: key, Kind: FailureWrite, Err: err})
	}
}

func (s *Store) fail(ctx context.Context, f Failure) {
	s.logger.WarnContext(ctx, "prompt store failure",
		"op", f.Op,
		"key", f.Key,
		"kind", string(f.Kind),
		"error", f.Err,
	)
	if s.onFailure != nil {
		s.onFailure(f)
	}
}

func indexOf(records []prompt.Record, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func removeID(records []prompt.Record, id string) []prompt.Record {
	out := make([]prompt.Record, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
