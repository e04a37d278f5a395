// Package cellophane wraps foreign pointers so that the release function
// bound to their kind runs exactly once when the wrapper is done with.
//
// Many platform APIs hand out memory or handles that must be returned with a
// specific function: free for the C heap, LocalFree or GlobalFree for the
// Windows local and global heaps, CloseHandle for kernel objects, FreeSid for
// security identifiers, CertCloseStore for certificate stores, and so on.
// A wrapper holds one such pointer together with that obligation.
//
// # Architecture Overview
//
//	cellophane/          Contract interfaces and the binding registry
//	├── handle/          Generic single-owner Wrapper and context-dependent handles
//	├── libc/            C heap (free) wrapper, cgo only
//	├── win32/           Windows release functions, generated per kind
//	├── guest/           Pointers into WebAssembly guest memory (wazero)
//	├── resource/        Release scopes with handles, borrows and observers
//	├── errors/          Structured error types
//	└── cmd/cellophane/  Binding inspector
//
// # Quick Start
//
//	p := libc.NewFreeWrapper(uintptr(unsafe.Pointer(C.strdup(cs))))
//	defer p.Close()
//
//	useString(handle.CString(p))
//
// Filling a wrapper through an out parameter:
//
//	name := win32.NewNetApiBufferFreeWrapper(0)
//	defer name.Close()
//
//	var status uint32
//	err := windows.NetGetJoinInformation(nil, (**uint16)(unsafe.Pointer(name.Out())), &status)
//
// # Release Semantics
//
// Release happens on Close, on Drop, or from a finalizer when a wrapper that
// was never closed becomes unreachable. A null wrapper never calls its
// release function. Close reports the status of the release call; Drop and
// the finalizer discard it after logging at debug level.
//
// # Thread Safety
//
// Wrappers are plain values without internal locking and must be owned by a
// single goroutine. The binding registry and resource tables are safe for
// concurrent use.
package cellophane
