// Package libc wraps pointers allocated by the C heap.
//
// FreeWrapper releases its pointer with the C library's free. The package
// needs cgo; without it only this documentation is compiled.
package libc
