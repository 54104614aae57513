package memory

import (
	"sync/atomic"

	"travelassist/internal/domain"
)

// Holder publishes index snapshots atomically. Readers always observe
// either the previous snapshot or the new one, never a partial build;
// a rebuild in progress keeps the old snapshot servable until Swap.
type Holder struct {
	current atomic.Pointer[Index]
}

// NewHolder creates an empty holder. Current fails until the first Swap.
func NewHolder() *Holder { return &Holder{} }

// Current returns the latest published snapshot.
func (h *Holder) Current() (*Index, error) {
	ix := h.current.Load()
	if ix == nil {
		return nil, domain.ErrIndexNotReady
	}
	return ix, nil
}

// Swap publishes a new snapshot, replacing the previous one wholesale.
func (h *Holder) Swap(ix *Index) {
	h.current.Store(ix)
}
