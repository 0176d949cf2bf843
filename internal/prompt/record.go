package prompt

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Record is one enhancement event.
// JSON tags match the persisted layout of the history and favorites keys.
type Record struct {
	// ID is a ULID assigned at creation, stable for the record's lifetime
	ID string `json:"id"`

	// Category is the prompt type the enhancement ran under
	Category Category `json:"promptType"`

	// OriginalText is the raw input, unmodified
	OriginalText string `json:"originalPrompt"`

	// EnhancedText is the enhancer output for (OriginalText, Category)
	EnhancedText string `json:"enhancedPrompt"`

	// IsFavorite is the only field mutated after creation
	IsFavorite bool `json:"favorite"`

	// CreatedAt is assigned once at creation (RFC 3339 on the wire)
	CreatedAt time.Time `json:"createdAt"`
}

// NewID generates a new ULID string.
func NewID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
