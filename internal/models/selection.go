package models

import (
	"sync"

	"charboard/internal/catalog"
)

// SelectionRepository tracks the most recently clicked symbol, feeding the
// info panel's "Copy Symbol" and "Append to Builder" buttons.
type SelectionRepository struct {
	mu      sync.RWMutex
	current *catalog.Symbol
}

func NewSelectionRepository() *SelectionRepository {
	return &SelectionRepository{}
}

// Set records the current selection.
func (r *SelectionRepository) Set(sym catalog.Symbol) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = &sym
}

// Current returns the last selected symbol, or false when nothing has been
// clicked yet.
func (r *SelectionRepository) Current() (catalog.Symbol, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return catalog.Symbol{}, false
	}
	return *r.current, true
}

// Clear forgets the selection.
func (r *SelectionRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = nil
}
