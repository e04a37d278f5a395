// Package guest wraps pointers into the linear memory of a WebAssembly
// module running on wazero.
//
// A guest pointer is released by calling a function exported by the module
// that allocated it, "free" by default. The module is the pointer's
// context: an Allocator binds the module's memory and free export, and every
// Pointer it hands out is released through it.
//
//	alloc, err := guest.NewAllocator(mod)
//	if err != nil {
//		return err
//	}
//	defer alloc.Close(ctx)
//
//	p, err := alloc.Alloc(ctx, 8)
//	if err != nil {
//		return err
//	}
//	defer p.Close(ctx)
//
//	if err := guest.Write(p, pair{1, 2}); err != nil {
//		return err
//	}
//
// Unlike host pointers, guest memory is bounds checked. Read, ReadOffset,
// Nth, Write, CString and Bytes return an out_of_bounds error instead of
// touching memory outside the module. Values are decoded little endian with
// encoding/binary, so T must have a fixed size.
//
// Allocator.Close frees every pointer still outstanding, most recently
// allocated first. Pointers released that way report context_released from
// their own Close. A pointer closed while Allocator.Close runs is freed by
// exactly one of the two.
//
// The finalizer of an unreachable Pointer does not call into the module.
// It queues the address, and the next FromPtr, Alloc or Close frees it.
//
// An Allocator is safe for concurrent use. A Pointer is not.
package guest
