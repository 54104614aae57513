package chunker

import (
	"strconv"

	"travelassist/internal/domain"
)

// Ensure WindowChunker implements the domain interface.
var _ domain.Chunker = (*WindowChunker)(nil)

// WindowChunker splits text into fixed-size character windows with overlap.
// The window advances by size-overlap runes each step, so consecutive chunks
// share exactly overlap runes and concatenating chunks with the overlap
// stripped reconstructs the original text.
type WindowChunker struct {
	size    int
	overlap int
}

// NewWindowChunker creates a chunker with the given window size and overlap,
// clamping invalid values to defaults (500/50).
func NewWindowChunker(size, overlap int) *WindowChunker {
	if size <= 0 {
		size = 500
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size / 10
	}
	return &WindowChunker{size: size, overlap: overlap}
}

// Size returns the configured window size in runes.
func (c *WindowChunker) Size() int { return c.size }

// Overlap returns the configured overlap in runes.
func (c *WindowChunker) Overlap() int { return c.overlap }

// Chunk splits the document content into overlapping windows. An empty
// document yields no chunks and no error. Chunk order is stable for
// identical (document, size, overlap) input.
func (c *WindowChunker) Chunk(document domain.Document) ([]domain.Chunk, error) {
	runes := []rune(document.Content())
	if len(runes) == 0 {
		return nil, nil
	}
	step := c.size - c.overlap
	var chunks []domain.Chunk
	idx := 0
	for start := 0; start < len(runes); start += step {
		end := start + c.size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, domain.Chunk{
			DocumentID: document.ID,
			ChunkID:    document.ID + ":" + strconv.Itoa(idx),
			Text:       string(runes[start:end]),
			Index:      idx,
		})
		if end == len(runes) {
			break
		}
		idx++
	}
	return chunks, nil
}
