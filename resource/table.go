package resource

import (
	"sync"
)

// UnifiedTable implements Table on a LocalBackend.
type UnifiedTable struct {
	backend   *LocalBackend
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
	closeMu   sync.RWMutex
}

var _ Table = (*UnifiedTable)(nil)

// NewTable creates a new table with a LocalBackend.
func NewTable() *UnifiedTable {
	return &UnifiedTable{
		backend: NewLocalBackend(),
	}
}

// Insert adds a value and returns its handle. It returns 0 once the table
// is closed.
func (t *UnifiedTable) Insert(kind string, value any) Handle {
	t.closeMu.RLock()
	if t.closed {
		t.closeMu.RUnlock()
		return 0
	}
	t.closeMu.RUnlock()

	handle, err := t.backend.Create(kind, value)
	if err != nil {
		return 0
	}

	t.notify(Event{
		Type:   EventCreated,
		Handle: handle,
		Kind:   kind,
		Value:  value,
	})

	return handle
}

// Get retrieves a value by handle.
func (t *UnifiedTable) Get(handle Handle) (any, bool) {
	return t.backend.Get(handle)
}

// GetTyped retrieves a value only if it was inserted with kind.
func (t *UnifiedTable) GetTyped(handle Handle, kind string) (any, bool) {
	actual, ok := t.backend.Kind(handle)
	if !ok || actual != kind {
		return nil, false
	}
	return t.backend.Get(handle)
}

// Remove drops a value and returns (value, true) if found. Borrowed values
// are not removed.
func (t *UnifiedTable) Remove(handle Handle) (any, bool) {
	kind, _ := t.backend.Kind(handle)
	value, ok := t.backend.Drop(handle)
	if !ok {
		return nil, false
	}

	if d, ok := value.(Dropper); ok {
		d.Drop()
	}

	t.notify(Event{
		Type:   EventDropped,
		Handle: handle,
		Kind:   kind,
		Value:  value,
	})

	return value, true
}

// Borrow marks handle as borrowed.
func (t *UnifiedTable) Borrow(handle Handle) bool {
	return t.backend.Borrow(handle)
}

// ReturnBorrow ends one borrow of handle.
func (t *UnifiedTable) ReturnBorrow(handle Handle) bool {
	return t.backend.ReturnBorrow(handle)
}

// Subscribe adds an observer for lifecycle events.
func (t *UnifiedTable) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *UnifiedTable) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of live values.
func (t *UnifiedTable) Len() int {
	return t.backend.Len()
}

// Clear drops every value that is not borrowed, most recently inserted
// first.
func (t *UnifiedTable) Clear() {
	for _, h := range t.handles() {
		t.Remove(h)
	}
}

// Close drops all values, most recently inserted first, and stops accepting
// new ones. Borrows do not hold values back from Close.
func (t *UnifiedTable) Close() error {
	t.closeMu.Lock()
	if t.closed {
		t.closeMu.Unlock()
		return nil
	}
	t.closed = true
	t.closeMu.Unlock()

	var events []Event
	t.backend.Each(func(h Handle, kind string, value any) bool {
		events = append(events, Event{Type: EventDropped, Handle: h, Kind: kind, Value: value})
		return true
	})

	if err := t.backend.Close(); err != nil {
		return err
	}
	for i := len(events) - 1; i >= 0; i-- {
		t.notify(events[i])
	}
	return nil
}

// handles returns live handles, most recently inserted first.
func (t *UnifiedTable) handles() []Handle {
	var handles []Handle
	t.backend.Each(func(h Handle, _ string, _ any) bool {
		handles = append(handles, h)
		return true
	})
	for i, j := 0, len(handles)-1; i < j; i, j = i+1, j-1 {
		handles[i], handles[j] = handles[j], handles[i]
	}
	return handles
}

func (t *UnifiedTable) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
