package resource

// Typed is a TypedTable view of a UnifiedTable restricted to one kind.
type Typed[T any] struct {
	table *UnifiedTable
	kind  string
}

var _ TypedTable[int] = (*Typed[int])(nil)

// NewTyped returns a view of table for values of kind.
func NewTyped[T any](table *UnifiedTable, kind string) *Typed[T] {
	return &Typed[T]{table: table, kind: kind}
}

// Table returns the underlying table.
func (t *Typed[T]) Table() *UnifiedTable {
	return t.table
}

// Insert adds a value and returns its handle.
func (t *Typed[T]) Insert(value T) Handle {
	return t.table.Insert(t.kind, value)
}

// Get retrieves a value by handle.
func (t *Typed[T]) Get(handle Handle) (T, bool) {
	v, ok := t.table.GetTyped(handle, t.kind)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Remove drops a value and returns (value, true) if found.
func (t *Typed[T]) Remove(handle Handle) (T, bool) {
	var zero T
	if _, ok := t.table.GetTyped(handle, t.kind); !ok {
		return zero, false
	}
	v, ok := t.table.Remove(handle)
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// Len returns the number of live values of this kind.
func (t *Typed[T]) Len() int {
	n := 0
	t.Each(func(Handle, T) bool {
		n++
		return true
	})
	return n
}

// Each iterates over live values of this kind in insertion order.
func (t *Typed[T]) Each(fn func(Handle, T) bool) {
	t.table.backend.Each(func(h Handle, kind string, value any) bool {
		if kind != t.kind {
			return true
		}
		return fn(h, value.(T))
	})
}
