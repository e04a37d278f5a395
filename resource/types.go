package resource

// Handle is an opaque reference to a value in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Event types for lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDropped:
		return "dropped"
	}
	return "unknown"
}

// Event represents a lifecycle event.
type Event struct {
	Value  any
	Kind   string
	Handle Handle
	Type   EventType
}

// Observer receives notifications about lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Backend provides the underlying storage for a table.
type Backend interface {
	// Create stores a value and returns a handle.
	Create(kind string, value any) (Handle, error)

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// Drop removes a value and returns (value, true) if it should be dropped.
	// Returns (nil, false) if handle is invalid or has outstanding borrows.
	Drop(handle Handle) (any, bool)

	// Borrow increments the borrow count for a handle.
	Borrow(handle Handle) bool

	// ReturnBorrow decrements the borrow count for a handle.
	ReturnBorrow(handle Handle) bool

	// Close drops every value held by the backend.
	Close() error
}

// Table owns values and drops them when they are removed or the table is
// closed.
type Table interface {
	// Insert adds a value and returns its handle.
	Insert(kind string, value any) Handle

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// GetTyped retrieves a value only if it was inserted with kind.
	GetTyped(handle Handle, kind string) (any, bool)

	// Remove drops a value and returns (value, true) if found.
	Remove(handle Handle) (any, bool)

	// Borrow marks a handle as borrowed; borrowed values cannot be removed.
	Borrow(handle Handle) bool

	// ReturnBorrow ends one borrow of handle.
	ReturnBorrow(handle Handle) bool

	// Subscribe adds an observer for lifecycle events.
	Subscribe(Observer)

	// Unsubscribe removes an observer.
	Unsubscribe(Observer)

	// Len returns the number of live values.
	Len() int

	// Clear drops all values.
	Clear()

	// Close drops all values and stops accepting new ones.
	Close() error
}

// TypedTable provides type-safe access to values of one kind.
type TypedTable[T any] interface {
	// Insert adds a value and returns its handle.
	Insert(value T) Handle

	// Get retrieves a value by handle.
	Get(handle Handle) (T, bool)

	// Remove drops a value and returns (value, true) if found.
	Remove(handle Handle) (T, bool)

	// Len returns the number of live values of this kind.
	Len() int

	// Each iterates over live values of this kind.
	Each(func(Handle, T) bool)
}

// Dropper is implemented by values that need cleanup. Every wrapper in
// cellophane implements it.
type Dropper interface {
	Drop()
}
