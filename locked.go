package probable

import "sync"

// LockedFilter wraps a Filter so it can be shared between goroutines. Add
// takes an exclusive lock and Test a shared one, so a Test never observes a
// partially applied Add.
type LockedFilter struct {
	mu     sync.RWMutex
	filter Filter
}

// NewLocked wraps f. The caller must not use f directly afterwards.
func NewLocked(f Filter) *LockedFilter {
	return &LockedFilter{filter: f}
}

// Add adds data to the wrapped filter.
func (l *LockedFilter) Add(data []byte) {
	l.mu.Lock()
	l.filter.Add(data)
	l.mu.Unlock()
}

// Test checks if data might be in the wrapped filter.
func (l *LockedFilter) Test(data []byte) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filter.Test(data)
}

// TestAndAdd reports whether data might have been present and adds it if not.
// Unlike calling Test then Add, no other Add can run in between.
func (l *LockedFilter) TestAndAdd(data []byte) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	present := l.filter.Test(data)
	if !present {
		l.filter.Add(data)
	}
	return present
}

// Size returns the wrapped filter's Size.
func (l *LockedFilter) Size() uint64 {
	return l.filter.Size()
}

// Unwrap returns the wrapped filter. It must not be mutated while the
// LockedFilter is in use.
func (l *LockedFilter) Unwrap() Filter {
	return l.filter
}
