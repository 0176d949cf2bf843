package prompt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpungsan/polish/internal/errors"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "text", input: "text", want: Text},
		{name: "image uppercase", input: "IMAGE", want: Image},
		{name: "video padded", input: "  Video ", want: Video},
		{name: "empty defaults to text", input: "", want: Text},
		{name: "unknown", input: "audio", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrUnknownCategory))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Text", Text.Label())
	assert.Equal(t, "Image", Image.Label())
	assert.Equal(t, "Video", Video.Label())
	assert.Equal(t, "", Category("").Label())
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("poem").Valid())
	assert.False(t, Category("").Valid())
}

func TestNewID(t *testing.T) {
	a, err := NewID()
	require.NoError(t, err)
	b, err := NewID()
	require.NoError(t, err)

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}

func TestRecord_JSONLayout(t *testing.T) {
	r := Record{
		ID:           "01HZ0000000000000000000000",
		Category:     Image,
		OriginalText: "a cat",
		EnhancedText: "a cat, front view",
		IsFavorite:   true,
		CreatedAt:    time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "01HZ0000000000000000000000", raw["id"])
	assert.Equal(t, "image", raw["promptType"])
	assert.Equal(t, "a cat", raw["originalPrompt"])
	assert.Equal(t, "a cat, front view", raw["enhancedPrompt"])
	assert.Equal(t, true, raw["favorite"])
	assert.Equal(t, "2024-03-01T12:30:00Z", raw["createdAt"])
}

func TestRecord_ParsesBrowserTimestamps(t *testing.T) {
	// Date.prototype.toJSON emits millisecond precision
	data := `{"id":"1717000000000","promptType":"text","originalPrompt":"hi","enhancedPrompt":"hi!","favorite":false,"createdAt":"2024-05-29T16:26:40.000Z"}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(data), &r))
	assert.Equal(t, Text, r.Category)
	assert.True(t, r.CreatedAt.Equal(time.Date(2024, 5, 29, 16, 26, 40, 0, time.UTC)))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello world"},
		{"  hello  ", "hello"},
		{"hello\t\n  world", "hello world"},
		{"", ""},
		{"   \t\n   ", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCountChars(t *testing.T) {
	assert.Equal(t, 5, CountChars("hello"))
	assert.Equal(t, 2, CountChars("日本"))
	assert.Equal(t, 0, CountChars(""))
}

func TestToExportRecord(t *testing.T) {
	r := Record{ID: "x", Category: Video}
	out := ToExportRecord(ListFavorites, r)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"list":"favorites"`)
	assert.Contains(t, string(data), `"promptType":"video"`)
}
