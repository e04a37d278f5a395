// Package handle implements single-owner wrappers around foreign pointers.
//
// A Wrapper is parameterized by a Releaser, a zero-size type naming the one
// function that returns the pointer to its allocator:
//
//	type localFree struct{}
//
//	func (localFree) Name() string            { return "LocalFree" }
//	func (localFree) Release(p uintptr) error { _, err := windows.LocalFree(windows.Handle(p)); return err }
//
//	buf := handle.FromPtr[localFree](p)
//	defer buf.Close()
//
// # Lifecycle
//
// A wrapper is created empty with New or around an existing pointer with
// FromPtr. An empty wrapper can be filled by a foreign call through Out:
//
//	w := handle.New[netApiBufferFree]()
//	err := windows.NetGetJoinInformation(nil, (**uint16)(unsafe.Pointer(w.Out())), &typ)
//
// The release function runs at most once per wrapper: on Close, on Drop, or
// from a finalizer if the wrapper becomes unreachable first. Null pointers are
// never passed to it. Close returns the release status; Drop and the finalizer
// discard it after logging at debug level.
//
// The finalizer may run as soon as the wrapper is unreachable, even while a
// foreign call still uses the raw pointer. Keep the wrapper alive across such
// calls with defer w.Close() or runtime.KeepAlive(w).
//
// # Context-Dependent Handles
//
// Some pointers can only be released together with a second handle, such as
// a catalog context and the catalog administrator context that produced it.
// Dependent holds a non-owning reference to its context wrapper and borrows
// it for its whole life:
//
//	admin := handle.New[catAdminRelease]()
//	catalog, err := handle.NewDependent[catalogRelease](admin)
//
// While any dependent is live, Close on the context is refused with an
// outstanding-borrow error, and the Go reference keeps the context's
// finalizer from running first.
//
// # Structured Reads
//
// Read, ReadOffset, Nth and CString interpret the pointee as the shape the
// caller names. Nothing is validated: a mismatch between the memory and T is
// undefined behaviour, exactly as in the foreign code that produced it.
package handle
