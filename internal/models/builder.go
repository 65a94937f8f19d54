package models

import (
	"strings"
	"sync"
)

// BuilderRepository holds the builder panel's text buffer: the characters the
// user has appended, in click order, waiting to be copied or exported.
type BuilderRepository struct {
	mu  sync.RWMutex
	buf strings.Builder
}

// NewBuilderRepository creates an empty builder buffer.
func NewBuilderRepository() *BuilderRepository {
	return &BuilderRepository{}
}

// Append adds text to the end of the buffer. Append order is preserved.
func (r *BuilderRepository) Append(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.WriteString(text)
}

// Text returns a snapshot of the buffer contents.
func (r *BuilderRepository) Text() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.buf.String()
}

// Set replaces the buffer contents. Used when the user edits the builder
// widget directly.
func (r *BuilderRepository) Set(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.Reset()
	r.buf.WriteString(text)
}

// Clear empties the buffer.
func (r *BuilderRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.Reset()
}

// Len reports the buffer size in bytes.
func (r *BuilderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.buf.Len()
}
