package guest

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/wippyai/cellophane/errors"
	"github.com/wippyai/cellophane/resource"
)

// Pointer owns an address in guest memory and frees it through its
// Allocator exactly once.
type Pointer struct {
	alloc    *Allocator
	cell     *cell
	handle   resource.Handle
	released bool
}

func newPointer(a *Allocator, h resource.Handle, c *cell) *Pointer {
	p := &Pointer{alloc: a, cell: c, handle: h}
	runtime.SetFinalizer(p, (*Pointer).finalize)
	return p
}

// Allocator returns the allocator the pointer is released through.
func (p *Pointer) Allocator() *Allocator {
	return p.alloc
}

// Ptr returns the guest address.
func (p *Pointer) Ptr() uint32 {
	return p.cell.p
}

// Out returns the address slot, for guest calls that fill a pointer.
func (p *Pointer) Out() *uint32 {
	return &p.cell.p
}

// IsNull reports whether the address is 0.
func (p *Pointer) IsNull() bool {
	return p.cell.p == 0
}

// Released reports whether Close or Drop has run.
func (p *Pointer) Released() bool {
	return p.released
}

// Close frees the address and returns the status of the free call.
func (p *Pointer) Close(ctx context.Context) error {
	return p.release(ctx)
}

// Drop frees the address and discards the status. Dropping a released
// pointer does nothing.
func (p *Pointer) Drop() {
	if p.released {
		return
	}
	if err := p.release(context.Background()); err != nil {
		Logger().Debug("release status discarded",
			zap.String("kind", cellKind),
			zap.Error(err))
	}
}

func (p *Pointer) String() string {
	return fmt.Sprintf("%s(%s@%#x)", cellKind, p.alloc.freeName, p.cell.p)
}

// finalize queues the address on the allocator instead of calling into the
// guest from the finalizer goroutine.
func (p *Pointer) finalize() {
	if p.released {
		return
	}
	p.released = true
	c, ok := p.alloc.cells.Remove(p.handle)
	if !ok {
		return
	}
	p.alloc.deferFree(c.p)
}

func (p *Pointer) release(ctx context.Context) error {
	if p.released {
		return errors.AlreadyReleased(cellKind)
	}
	p.released = true
	runtime.SetFinalizer(p, nil)

	c, ok := p.alloc.cells.Remove(p.handle)
	if !ok {
		// Allocator.Close already freed it.
		return errors.ContextReleased(cellKind, "guest.Allocator")
	}

	addr := c.p
	c.p = 0
	return p.alloc.release(ctx, addr)
}
