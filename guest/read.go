package guest

import (
	"bytes"
	"encoding/binary"

	"github.com/wippyai/cellophane/errors"
)

// Read decodes a T at the pointer.
func Read[T any](p *Pointer) (T, error) {
	return ReadOffset[T](p, 0)
}

// ReadOffset decodes a T offset bytes past the pointer.
func ReadOffset[T any](p *Pointer, offset uint32) (T, error) {
	return readAt[T](p, uint64(offset))
}

// Nth decodes the n-th T of an array starting at the pointer.
func Nth[T any](p *Pointer, n uint32) (T, error) {
	var v T
	size, err := sizeOf(v)
	if err != nil {
		return v, err
	}
	return readAt[T](p, uint64(n)*uint64(size))
}

func readAt[T any](p *Pointer, offset uint64) (T, error) {
	var v T
	size, err := sizeOf(v)
	if err != nil {
		return v, err
	}
	buf, err := p.bytes(offset, size)
	if err != nil {
		return v, err
	}
	if _, err := binary.Decode(buf, binary.LittleEndian, &v); err != nil {
		return v, errors.Wrap(errors.PhaseRead, errors.KindInvalidInput, err, "decode")
	}
	return v, nil
}

// Write encodes v at the pointer.
func Write[T any](p *Pointer, v T) error {
	size, err := sizeOf(v)
	if err != nil {
		return err
	}
	if p.IsNull() {
		return errors.InvalidInput(errors.PhaseWrite, "null guest pointer")
	}
	buf, err := binary.Append(make([]byte, 0, size), binary.LittleEndian, v)
	if err != nil {
		return errors.Wrap(errors.PhaseWrite, errors.KindInvalidInput, err, "encode")
	}
	if !p.alloc.mem.Write(p.Ptr(), buf) {
		return errors.OutOfBounds(errors.PhaseWrite, uint64(p.Ptr()), uint64(size), uint64(p.alloc.mem.Size()))
	}
	return nil
}

// CString reads a NUL-terminated string at the pointer. A null pointer
// reads as "".
func CString(p *Pointer) (string, error) {
	if p.IsNull() {
		return "", nil
	}
	memSize := p.alloc.mem.Size()
	if p.Ptr() >= memSize {
		return "", errors.OutOfBounds(errors.PhaseRead, uint64(p.Ptr()), 1, uint64(memSize))
	}
	buf, _ := p.alloc.mem.Read(p.Ptr(), memSize-p.Ptr())
	n := bytes.IndexByte(buf, 0)
	if n < 0 {
		return "", errors.New(errors.PhaseRead, errors.KindOutOfBounds).
			Ptr(uintptr(p.Ptr())).
			Detail("string is not terminated before the end of memory").
			Build()
	}
	return string(buf[:n]), nil
}

// Bytes copies n bytes at the pointer.
func Bytes(p *Pointer, n uint32) ([]byte, error) {
	buf, err := p.bytes(0, n)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(buf), nil
}

// bytes returns a view of guest memory. The view is invalidated when the
// memory grows.
func (p *Pointer) bytes(offset uint64, n uint32) ([]byte, error) {
	if p.IsNull() {
		return nil, errors.InvalidInput(errors.PhaseRead, "null guest pointer")
	}
	start := uint64(p.Ptr()) + offset
	if start+uint64(n) > 1<<32 {
		return nil, errors.OutOfBounds(errors.PhaseRead, start, uint64(n), uint64(p.alloc.mem.Size()))
	}
	buf, ok := p.alloc.mem.Read(uint32(start), n)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseRead, start, uint64(n), uint64(p.alloc.mem.Size()))
	}
	return buf, nil
}

func sizeOf(v any) (uint32, error) {
	size := binary.Size(v)
	if size < 0 {
		return 0, errors.InvalidInput(errors.PhaseRead, "type has no fixed size")
	}
	return uint32(size), nil
}
