// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package handle maps integer ids to Go values so that native memory can
// refer to Go data without holding Go pointers.
//
// The id is what gets written into native slots (a window's user pointer,
// for example); the Go value stays reachable from the Table until Release.
package handle

import "sync"

// ID is a non-zero table key. Zero is never handed out so that an empty
// native slot reads as "no handle".
type ID uintptr

// Table stores values by ID. The zero value is ready to use.
type Table struct {
	mu      sync.RWMutex
	entries map[ID]any
	next    ID
}

// Register stores v and returns its new ID.
func (t *Table) Register(v any) ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.entries == nil {
		t.entries = make(map[ID]any)
	}
	t.next++
	if t.next == 0 {
		t.next = 1
	}
	t.entries[t.next] = v
	return t.next
}

// Lookup returns the value stored under id.
func (t *Table) Lookup(id ID) (any, bool) {
	if id == 0 {
		return nil, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[id]
	return v, ok
}

// Release removes id and reports whether it was present.
func (t *Table) Release(id ID) bool {
	if id == 0 {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[id]; !ok {
		return false
	}
	delete(t.entries, id)
	return true
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
