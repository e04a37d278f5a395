package handle

import (
	"unsafe"

	"github.com/wippyai/cellophane"
)

// Read interprets the memory at h as a T.
func Read[T any](h cellophane.HasPointer) T {
	return *(*T)(h.MutPtr())
}

// ReadOffset interprets the memory offset bytes past h as a T.
func ReadOffset[T any](h cellophane.HasPointer, offset int) T {
	return *(*T)(unsafe.Add(h.MutPtr(), offset))
}

// Nth reads the n-th element of an array of T starting at h.
func Nth[T any](h cellophane.HasPointer, n int) T {
	var zero T
	return ReadOffset[T](h, n*int(unsafe.Sizeof(zero)))
}

// Write stores v at h.
func Write[T any](h cellophane.HasPointer, v T) {
	*(*T)(h.MutPtr()) = v
}

// CString copies the NUL-terminated byte string at h.
func CString(h cellophane.HasPointer) string {
	if h.IsNull() {
		return ""
	}
	p := (*byte)(h.MutPtr())
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// Bytes copies n bytes starting at h.
func Bytes(h cellophane.HasPointer, n int) []byte {
	if h.IsNull() || n <= 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(h.MutPtr()), n))
	return out
}
