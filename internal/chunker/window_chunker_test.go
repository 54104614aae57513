package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelassist/internal/domain"
)

func doc(text string) domain.Document {
	return domain.Document{ID: "d1", Path: "d1.pdf", Pages: []domain.Page{{Number: 1, Text: text}}}
}

// reconstruct joins chunks back together with the overlap stripped.
func reconstruct(chunks []domain.Chunk, overlap int) string {
	var b strings.Builder
	for i, ch := range chunks {
		runes := []rune(ch.Text)
		if i == 0 {
			b.WriteString(ch.Text)
			continue
		}
		b.WriteString(string(runes[overlap:]))
	}
	return b.String()
}

func TestChunkRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		size    int
		overlap int
	}{
		{"short text single chunk", "hello world", 500, 50},
		{"exact window", strings.Repeat("a", 10), 10, 2},
		{"multiple windows", strings.Repeat("abcdefghij", 13), 20, 5},
		{"no overlap", strings.Repeat("xyz", 40), 16, 0},
		{"unicode runes", strings.Repeat("héllø wörld ", 30), 25, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewWindowChunker(tc.size, tc.overlap)
			chunks, err := c.Chunk(doc(tc.text))
			require.NoError(t, err)
			require.NotEmpty(t, chunks)
			assert.Equal(t, tc.text, reconstruct(chunks, tc.overlap))
		})
	}
}

func TestChunkEmptyDocument(t *testing.T) {
	c := NewWindowChunker(500, 50)
	chunks, err := c.Chunk(doc(""))
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestChunkWindowBounds(t *testing.T) {
	c := NewWindowChunker(100, 20)
	chunks, err := c.Chunk(doc(strings.Repeat("z", 450)))
	require.NoError(t, err)
	for i, ch := range chunks {
		assert.LessOrEqual(t, len([]rune(ch.Text)), 100)
		assert.Equal(t, i, ch.Index)
		assert.Equal(t, "d1", ch.DocumentID)
	}
	// every chunk except the last is a full window
	for _, ch := range chunks[:len(chunks)-1] {
		assert.Len(t, []rune(ch.Text), 100)
	}
}

func TestChunkStableIDs(t *testing.T) {
	c := NewWindowChunker(30, 5)
	text := strings.Repeat("stable output please ", 10)
	a, err := c.Chunk(doc(text))
	require.NoError(t, err)
	b, err := c.Chunk(doc(text))
	require.NoError(t, err)
	require.Equal(t, a, b)
	assert.Equal(t, "d1:0", a[0].ChunkID)
}

func TestNewWindowChunkerClampsInvalid(t *testing.T) {
	c := NewWindowChunker(0, -3)
	assert.Equal(t, 500, c.Size())
	assert.Equal(t, 0, c.Overlap())

	c = NewWindowChunker(100, 150)
	assert.Equal(t, 100, c.Size())
	assert.Equal(t, 10, c.Overlap())
}
