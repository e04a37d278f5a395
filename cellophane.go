package cellophane

import "unsafe"

// HasPointer is implemented by every wrapper. The accessors never transfer
// ownership.
type HasPointer interface {
	// Ptr returns the held address.
	Ptr() uintptr

	// MutPtr returns the held address for writing through. Writes are visible
	// through Ptr immediately; nothing is cached or copied.
	MutPtr() unsafe.Pointer

	// Out returns the slot holding the address, for foreign calls that fill
	// the wrapper through a pointer-to-pointer parameter.
	Out() *uintptr

	// IsNull reports whether no resource is held.
	IsNull() bool
}

// Releaser binds a wrapper kind to its release function. Implementations are
// zero-size types, so the binding is fixed per type rather than per value.
type Releaser interface {
	// Name returns the name of the release function.
	Name() string

	// Release returns p to its allocator. It is only called with non-null
	// pointers.
	Release(p uintptr) error
}

// ContextReleaser is the release binding of a kind that can only be released
// together with a second, separately owned context handle.
type ContextReleaser interface {
	Name() string
	Release(ctx, p uintptr) error
}
