package selection

import "sync"

type (
	// Model tracks which records are currently selected, by key,
	// independent of any filtering or sorting applied to the view that
	// displays them
	Model[Key comparable] struct {
		keys map[Key]struct{}
		mu   sync.RWMutex
	}

	// HeaderState is the tri-state value of a select-all checkbox,
	// derived purely from the selected count and the visible count
	HeaderState int
)

const (
	// HeaderNone indicates that no visible rows are selected
	HeaderNone HeaderState = iota

	// HeaderSome indicates that some, but not all, rows are selected
	HeaderSome

	// HeaderAll indicates that every visible row is selected
	HeaderAll
)

// Make instantiates a new, empty selection Model
func Make[Key comparable]() *Model[Key] {
	return &Model[Key]{
		keys: map[Key]struct{}{},
	}
}

// Toggle flips the selection state of the given key, returning whether
// the key is now selected. Toggling the same key twice restores the
// prior observable state
func (m *Model[Key]) Toggle(k Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.keys[k]; ok {
		delete(m.keys, k)
		return false
	}
	m.keys[k] = struct{}{}
	return true
}

// SelectAll replaces the selection with exactly the provided keys.
// Callers pass the keys of the currently visible rows, making
// select-all view-scoped rather than dataset-scoped
func (m *Model[Key]) SelectAll(visible []Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.keys = make(map[Key]struct{}, len(visible))
	for _, k := range visible {
		m.keys[k] = struct{}{}
	}
}

// Clear empties the selection
func (m *Model[Key]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = map[Key]struct{}{}
}

// IsSelected returns whether the given key is currently selected
func (m *Model[Key]) IsSelected(k Key) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.keys[k]
	return ok
}

// Selected returns a snapshot of the selected keys, in no particular
// order
func (m *Model[Key]) Selected() []Key {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]Key, 0, len(m.keys))
	for k := range m.keys {
		res = append(res, k)
	}
	return res
}

// Count returns the number of selected keys
func (m *Model[_]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keys)
}

// Prune discards selected keys for which keep returns false, so that
// stale keys never outlive a shrinking record collection
func (m *Model[Key]) Prune(keep func(Key) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k := range m.keys {
		if !keep(k) {
			delete(m.keys, k)
		}
	}
}

// Header derives the tri-state select-all value for a view of the
// given size
func (m *Model[_]) Header(visibleCount int) HeaderState {
	return HeaderFor(m.Count(), visibleCount)
}

// HeaderFor derives the tri-state select-all value from a selected
// count and a visible count
func HeaderFor(selected, visible int) HeaderState {
	switch {
	case selected == 0 || visible == 0:
		return HeaderNone
	case selected >= visible:
		return HeaderAll
	default:
		return HeaderSome
	}
}
