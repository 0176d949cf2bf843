package prompt

import (
	"strings"

	"github.com/hpungsan/polish/internal/errors"
)

// Category selects which enhancement template set runs.
type Category string

const (
	Text  Category = "text"
	Image Category = "image"
	Video Category = "video"
)

// Categories lists the closed set of categories in display order.
var Categories = []Category{Text, Image, Video}

// ParseCategory normalizes s and returns the matching Category.
// An empty string defaults to Text.
func ParseCategory(s string) (Category, error) {
	norm := Normalize(s)
	if norm == "" {
		return Text, nil
	}
	c := Category(norm)
	if !c.Valid() {
		return "", errors.NewUnknownCategory(s)
	}
	return c, nil
}

// Valid reports whether c is one of text, image or video.
func (c Category) Valid() bool {
	switch c {
	case Text, Image, Video:
		return true
	}
	return false
}

// Label returns the capitalized display name ("Text", "Image", "Video").
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (c Category) String() string {
	return string(c)
}
