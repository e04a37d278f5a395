//go:build cgo

package libc

// #include <stdlib.h>
import "C"

import (
	"unsafe"

	"github.com/wippyai/cellophane"
	"github.com/wippyai/cellophane/handle"
)

// Free releases memory with the C library's free.
type Free struct{}

// Name returns the name of the release function.
func (Free) Name() string { return "free" }

// Release calls free on p. free reports no status.
func (Free) Release(p uintptr) error {
	C.free(unsafe.Pointer(p))
	return nil
}

// FreeWrapper owns a pointer allocated with malloc, calloc, realloc or
// strdup.
type FreeWrapper = handle.Wrapper[Free]

// NewFreeWrapper takes ownership of p.
func NewFreeWrapper(p uintptr) *FreeWrapper {
	return handle.FromPtr[Free](p)
}

// NewFreeWrapperFromPointer takes ownership of a pointer returned by cgo.
func NewFreeWrapperFromPointer(p unsafe.Pointer) *FreeWrapper {
	return handle.FromPtr[Free](uintptr(p))
}

func init() {
	cellophane.Register(cellophane.Binding{
		Kind:     "FreeWrapper",
		Library:  "libc",
		Function: "free",
	})
}
