package handle

import (
	"testing"
	"unsafe"
)

type testStruct struct {
	First  uint32
	Second uint32
}

type staticMemory struct{}

func (staticMemory) Name() string          { return "staticMemory" }
func (staticMemory) Release(uintptr) error { return nil }

// Package-level arrays never move, so they can stand in for foreign memory.
var (
	structMemory = [2]uint32{1, 2}
	stringMemory = [...]byte{'t', 'e', 's', 't', ' ', '1', '2', '3', 0}
	scratch      [8]byte
)

func TestRead_Struct(t *testing.T) {
	w := FromPtr[staticMemory](uintptr(unsafe.Pointer(&structMemory)))
	defer w.Close()

	ts := Read[testStruct](w)
	if ts.First != 1 || ts.Second != 2 {
		t.Fatalf("Read = %+v, want {1 2}", ts)
	}
}

func TestReadOffset_Nth(t *testing.T) {
	w := FromPtr[staticMemory](uintptr(unsafe.Pointer(&structMemory)))
	defer w.Close()

	if v := ReadOffset[uint32](w, 4); v != 2 {
		t.Fatalf("ReadOffset(4) = %d, want 2", v)
	}
	if v := Nth[uint32](w, 0); v != 1 {
		t.Fatalf("Nth(0) = %d, want 1", v)
	}
	if v := Nth[uint32](w, 1); v != 2 {
		t.Fatalf("Nth(1) = %d, want 2", v)
	}
}

func TestCString(t *testing.T) {
	w := FromPtr[staticMemory](uintptr(unsafe.Pointer(&stringMemory)))
	defer w.Close()

	if s := CString(w); s != "test 123" {
		t.Fatalf("CString = %q, want %q", s, "test 123")
	}
	if s := CString(New[staticMemory]()); s != "" {
		t.Fatalf("CString of null = %q, want empty", s)
	}
}

func TestMutPtr_WriteVisibleThroughPtr(t *testing.T) {
	scratch = [8]byte{}
	w := FromPtr[staticMemory](uintptr(unsafe.Pointer(&scratch)))
	defer w.Close()

	*(*byte)(w.MutPtr()) = 'a'

	if s := CString(w); s != "a" {
		t.Fatalf("CString after write = %q, want %q", s, "a")
	}
	if got := *(*byte)(unsafe.Pointer(w.Ptr())); got != 'a' {
		t.Fatalf("byte at Ptr() = %q, want 'a'", got)
	}
}

func TestWrite_Bytes(t *testing.T) {
	scratch = [8]byte{}
	w := FromPtr[staticMemory](uintptr(unsafe.Pointer(&scratch)))
	defer w.Close()

	Write(w, testStruct{First: 7, Second: 9})
	if ts := Read[testStruct](w); ts.First != 7 || ts.Second != 9 {
		t.Fatalf("Read after Write = %+v", ts)
	}

	b := Bytes(w, 4)
	if len(b) != 4 {
		t.Fatalf("Bytes len = %d, want 4", len(b))
	}
	b[0] = 0xff
	if scratch[0] == 0xff {
		t.Fatal("Bytes must return a copy")
	}
	if Bytes(w, 0) != nil {
		t.Fatal("Bytes(0) should be nil")
	}
}
