// Package memory provides an in-memory vector index built once per corpus
// load. An Index is immutable after Build; queries never mutate it, so a
// snapshot may be searched concurrently without locking.
package memory

import (
	"fmt"
	"sort"

	"travelassist/internal/domain"
)

// Index is an immutable collection of (vector, chunk) pairs supporting
// brute-force cosine similarity search. Vectors are assumed L2-normalized,
// so similarity is a dot product.
type Index struct {
	chunks    []domain.Chunk
	vectors   [][]float32
	dimension int
}

// Build constructs an index from parallel chunk and vector slices.
// It fails on empty input, length mismatch, or inconsistent dimensions.
func Build(chunks []domain.Chunk, vectors [][]float32) (*Index, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: no chunks to index", domain.ErrEmptyCorpus)
	}
	if len(chunks) != len(vectors) {
		return nil, fmt.Errorf("chunks and vectors length mismatch: %d != %d", len(chunks), len(vectors))
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, fmt.Errorf("zero-dimension vector at position 0")
	}
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("vector dimension mismatch at position %d: %d != %d", i, len(v), dim)
		}
	}
	idx := &Index{
		chunks:    make([]domain.Chunk, len(chunks)),
		vectors:   make([][]float32, len(vectors)),
		dimension: dim,
	}
	copy(idx.chunks, chunks)
	copy(idx.vectors, vectors)
	return idx, nil
}

// Dimension returns the vector dimensionality of the index.
func (ix *Index) Dimension() int { return ix.dimension }

// Len returns the number of indexed chunks.
func (ix *Index) Len() int { return len(ix.chunks) }

// Query returns up to topK chunks sorted by descending similarity to the
// given vector. Equal scores are broken by chunk insertion order, earlier
// first, for determinism.
func (ix *Index) Query(vector []float32, topK int) ([]domain.SearchResult, error) {
	if ix == nil || len(ix.chunks) == 0 {
		return nil, domain.ErrIndexNotReady
	}
	if len(vector) != ix.dimension {
		return nil, fmt.Errorf("query vector dimension %d does not match index dimension %d", len(vector), ix.dimension)
	}
	if topK <= 0 {
		topK = 5
	}
	scores := make([]float32, len(ix.vectors))
	for i := range ix.vectors {
		scores[i] = dot(ix.vectors[i], vector)
	}
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	// stable sort keeps insertion order for equal scores
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	if topK > len(order) {
		topK = len(order)
	}
	results := make([]domain.SearchResult, 0, topK)
	for _, j := range order[:topK] {
		results = append(results, domain.SearchResult{Chunk: ix.chunks[j], Score: scores[j]})
	}
	return results, nil
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
