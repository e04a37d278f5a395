package handle

import (
	"fmt"
	"runtime"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/cellophane"
	"github.com/wippyai/cellophane/errors"
)

// Wrapper owns one foreign pointer released with R.
//
// A Wrapper must not be copied after first use, and the pointer it holds must
// not be owned by any other wrapper.
type Wrapper[R cellophane.Releaser] struct {
	p        uintptr
	borrows  int
	released bool
}

var _ cellophane.HasPointer = (*Wrapper[cellophane.Releaser])(nil)

// New returns a wrapper holding a null pointer.
func New[R cellophane.Releaser]() *Wrapper[R] {
	return FromPtr[R](0)
}

// FromPtr takes ownership of p.
func FromPtr[R cellophane.Releaser](p uintptr) *Wrapper[R] {
	w := &Wrapper[R]{p: p}
	runtime.SetFinalizer(w, (*Wrapper[R]).finalize)
	return w
}

// Kind returns the wrapper kind name, derived from the release function.
func (w *Wrapper[R]) Kind() string {
	var r R
	return r.Name() + "Wrapper"
}

// Ptr returns the held pointer.
func (w *Wrapper[R]) Ptr() uintptr {
	return w.p
}

// MutPtr returns the held pointer for writing through.
func (w *Wrapper[R]) MutPtr() unsafe.Pointer {
	return addr(w.p)
}

// Out returns the slot holding the pointer.
func (w *Wrapper[R]) Out() *uintptr {
	return &w.p
}

// IsNull reports whether the wrapper holds no resource.
func (w *Wrapper[R]) IsNull() bool {
	return w.p == 0
}

// Released reports whether Close, Drop or the finalizer already ran.
func (w *Wrapper[R]) Released() bool {
	return w.released
}

// Take gives up ownership and returns the pointer without releasing it.
// The wrapper is left null.
func (w *Wrapper[R]) Take() (uintptr, error) {
	if w.borrows > 0 {
		return 0, errors.OutstandingBorrow(w.Kind(), w.p, w.borrows)
	}
	p := w.p
	w.p = 0
	return p, nil
}

// Close releases the pointer if it is non-null and returns the release
// status. Closing twice returns an already-released error.
func (w *Wrapper[R]) Close() error {
	return w.release()
}

// Drop releases the pointer and discards the status.
func (w *Wrapper[R]) Drop() {
	if err := w.release(); err != nil {
		Logger().Debug("release status discarded",
			zap.String("kind", w.Kind()),
			zap.Error(err))
	}
}

func (w *Wrapper[R]) String() string {
	return fmt.Sprintf("%s(%#x)", w.Kind(), w.p)
}

func (w *Wrapper[R]) finalize() {
	w.Drop()
}

func (w *Wrapper[R]) release() error {
	if w.released {
		return errors.AlreadyReleased(w.Kind())
	}
	if w.borrows > 0 {
		Logger().Warn("release refused while borrowed",
			zap.String("kind", w.Kind()),
			zap.Uintptr("ptr", w.p),
			zap.Int("borrows", w.borrows))
		return errors.OutstandingBorrow(w.Kind(), w.p, w.borrows)
	}

	w.released = true
	runtime.SetFinalizer(w, nil)

	p := w.p
	w.p = 0
	if p == 0 {
		return nil
	}

	var r R
	if err := r.Release(p); err != nil {
		return errors.ReleaseFailed(w.Kind(), r.Name(), p, err)
	}
	return nil
}

func (w *Wrapper[R]) borrow() {
	w.borrows++
}

func (w *Wrapper[R]) returnBorrow() {
	if w.borrows > 0 {
		w.borrows--
	}
}

// addr converts a foreign address. The memory is never managed by the Go
// heap, so the conversion does not hide a Go pointer from the collector.
func addr(p uintptr) unsafe.Pointer {
	return unsafe.Pointer(p)
}

