package motif

import "sync"

// Memo caches pre-canonical buffer keys to their canonical counterparts, so
// a repeated subgraph pattern skips the oracle call. sync.Map is used rather
// than a mutex-guarded map: its documented behavior — stable keys are safe
// for unsynchronized concurrent reads, only first-writer races need care —
// matches exactly what the parallel driver needs from a shared memo, with no
// closer concurrent-map library present anywhere in this system's dependency
// stack.
type Memo struct {
	m sync.Map
}

// NewMemo returns an empty Memo.
func NewMemo() *Memo { return &Memo{} }

// Get returns the canonical key cached for rawKey, if any.
func (m *Memo) Get(rawKey string) (string, bool) {
	v, ok := m.m.Load(rawKey)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Put records that rawKey canonicalizes to canonKey. Concurrent Puts for the
// same rawKey may race; since canonicalization is a pure function of
// rawKey, any winner is correct.
func (m *Memo) Put(rawKey, canonKey string) {
	m.m.Store(rawKey, canonKey)
}
