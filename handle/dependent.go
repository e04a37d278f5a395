package handle

import (
	"fmt"
	"runtime"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/cellophane"
	"github.com/wippyai/cellophane/errors"
)

// Dependent owns a pointer whose release needs a second handle, the context.
// The context is borrowed, never owned: it must outlive the dependent, and
// only the dependent's own pointer is released here.
type Dependent[R cellophane.ContextReleaser, C cellophane.Releaser] struct {
	ctx      *Wrapper[C]
	p        uintptr
	released bool
}

var _ cellophane.HasPointer = (*Dependent[cellophane.ContextReleaser, cellophane.Releaser])(nil)

// NewDependent returns a null dependent handle borrowing ctx.
func NewDependent[R cellophane.ContextReleaser, C cellophane.Releaser](ctx *Wrapper[C]) (*Dependent[R, C], error) {
	return DependentFromPtr[R](ctx, 0)
}

// DependentFromPtr takes ownership of p, borrowing ctx until p is released.
func DependentFromPtr[R cellophane.ContextReleaser, C cellophane.Releaser](ctx *Wrapper[C], p uintptr) (*Dependent[R, C], error) {
	var r R
	kind := r.Name() + "Wrapper"
	if ctx == nil {
		var c C
		return nil, errors.NilContext(kind, c.Name()+"Wrapper")
	}
	if ctx.released {
		return nil, errors.ContextReleased(kind, ctx.Kind())
	}

	ctx.borrow()
	d := &Dependent[R, C]{ctx: ctx, p: p}
	runtime.SetFinalizer(d, (*Dependent[R, C]).finalize)
	return d, nil
}

// Kind returns the wrapper kind name, derived from the release function.
func (d *Dependent[R, C]) Kind() string {
	var r R
	return r.Name() + "Wrapper"
}

// Context returns the borrowed context, or nil once released.
func (d *Dependent[R, C]) Context() *Wrapper[C] {
	return d.ctx
}

// Ptr returns the held pointer.
func (d *Dependent[R, C]) Ptr() uintptr {
	return d.p
}

// MutPtr returns the held pointer for writing through.
func (d *Dependent[R, C]) MutPtr() unsafe.Pointer {
	return addr(d.p)
}

// Out returns the slot holding the pointer.
func (d *Dependent[R, C]) Out() *uintptr {
	return &d.p
}

// IsNull reports whether the handle holds no resource.
func (d *Dependent[R, C]) IsNull() bool {
	return d.p == 0
}

// Released reports whether the handle was already released.
func (d *Dependent[R, C]) Released() bool {
	return d.released
}

// Close releases the pointer together with the context handle and returns
// the borrow. Closing twice returns an already-released error.
func (d *Dependent[R, C]) Close() error {
	return d.release()
}

// Drop releases the pointer and discards the status.
func (d *Dependent[R, C]) Drop() {
	if err := d.release(); err != nil {
		Logger().Debug("release status discarded",
			zap.String("kind", d.Kind()),
			zap.Error(err))
	}
}

func (d *Dependent[R, C]) String() string {
	return fmt.Sprintf("%s(%#x)", d.Kind(), d.p)
}

func (d *Dependent[R, C]) finalize() {
	d.Drop()
}

func (d *Dependent[R, C]) release() error {
	if d.released {
		return errors.AlreadyReleased(d.Kind())
	}
	d.released = true
	runtime.SetFinalizer(d, nil)

	ctx := d.ctx
	p := d.p
	d.ctx = nil
	d.p = 0
	defer ctx.returnBorrow()

	if p == 0 {
		return nil
	}

	var r R
	if err := r.Release(ctx.p, p); err != nil {
		return errors.ReleaseFailed(d.Kind(), r.Name(), p, err)
	}
	return nil
}
