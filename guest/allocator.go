package guest

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/cellophane/errors"
	"github.com/wippyai/cellophane/resource"
)

// Default export names.
const (
	DefaultFreeFunc   = "free"
	DefaultMallocFunc = "malloc"
)

const cellKind = "guest.Pointer"

type config struct {
	freeFunc   string
	mallocFunc string
	memory     string
}

// Option configures an Allocator.
type Option func(*config)

// WithFreeFunc sets the export that releases guest pointers.
func WithFreeFunc(name string) Option {
	return func(c *config) { c.freeFunc = name }
}

// WithMallocFunc sets the export used by Alloc.
func WithMallocFunc(name string) Option {
	return func(c *config) { c.mallocFunc = name }
}

// WithMemory selects an exported memory by name instead of the module's
// default memory.
func WithMemory(name string) Option {
	return func(c *config) { c.memory = name }
}

// cell holds a guest address. The table references cells rather than
// Pointers so that an unreachable Pointer can still be finalized. Removing
// a cell from the table transfers the right to free its address; only the
// caller whose Remove succeeded reads it.
type cell struct {
	p uint32
}

// Allocator releases guest pointers of one module.
type Allocator struct {
	mod        api.Module
	mem        api.Memory
	free       api.Function
	malloc     api.Function
	freeName   string
	mallocName string
	cells      *resource.Typed[*cell]
	pending    []uint32
	pendingMu  sync.Mutex
	callMu     sync.Mutex
	stateMu    sync.RWMutex
	closed     bool
}

// NewAllocator binds mod's memory and free export. The malloc export is
// optional; without it Alloc fails with not_found.
func NewAllocator(mod api.Module, opts ...Option) (*Allocator, error) {
	if mod == nil {
		return nil, errors.InvalidInput(errors.PhaseResolve, "nil module")
	}

	cfg := config{freeFunc: DefaultFreeFunc, mallocFunc: DefaultMallocFunc}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Allocator{
		mod:        mod,
		freeName:   cfg.freeFunc,
		mallocName: cfg.mallocFunc,
		cells:      resource.NewTyped[*cell](resource.NewTable(), cellKind),
	}

	if cfg.memory != "" {
		a.mem = mod.ExportedMemory(cfg.memory)
	} else {
		a.mem = mod.Memory()
	}
	if a.mem == nil {
		name := cfg.memory
		if name == "" {
			name = "default"
		}
		return nil, errors.NotFound(errors.PhaseResolve, "memory", name)
	}

	a.free = mod.ExportedFunction(cfg.freeFunc)
	if a.free == nil {
		return nil, errors.NotFound(errors.PhaseResolve, "function", cfg.freeFunc)
	}
	if params := a.free.Definition().ParamTypes(); len(params) != 1 || params[0] != api.ValueTypeI32 {
		return nil, errors.New(errors.PhaseResolve, errors.KindInvalidInput).
			Func(cfg.freeFunc).
			Detail("free must take a single i32, has %d params", len(params)).
			Build()
	}

	a.malloc = mod.ExportedFunction(cfg.mallocFunc)

	Logger().Debug("guest allocator ready",
		zap.String("module", mod.Name()),
		zap.String("free", cfg.freeFunc),
		zap.Bool("malloc", a.malloc != nil))

	return a, nil
}

// Module returns the module the allocator releases into.
func (a *Allocator) Module() api.Module {
	return a.mod
}

// Memory returns the bound linear memory.
func (a *Allocator) Memory() api.Memory {
	return a.mem
}

// Table returns the table tracking outstanding pointers. Subscribe to it to
// observe allocations and releases.
func (a *Allocator) Table() *resource.UnifiedTable {
	return a.cells.Table()
}

// Len returns the number of outstanding pointers.
func (a *Allocator) Len() int {
	return a.cells.Len()
}

// New returns a null pointer to be filled through Out.
func (a *Allocator) New() (*Pointer, error) {
	return a.FromPtr(0)
}

// FromPtr takes ownership of the guest address p. Addresses of finalized
// pointers are freed first.
func (a *Allocator) FromPtr(p uint32) (*Pointer, error) {
	a.freePending(context.Background())
	return a.track(p)
}

func (a *Allocator) track(p uint32) (*Pointer, error) {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	if a.closed {
		return nil, errors.ContextReleased(cellKind, "guest.Allocator")
	}

	c := &cell{p: p}
	h := a.cells.Insert(c)
	if h == 0 {
		return nil, errors.ContextReleased(cellKind, "guest.Allocator")
	}
	return newPointer(a, h, c), nil
}

// Alloc calls the malloc export for size bytes and wraps the result.
func (a *Allocator) Alloc(ctx context.Context, size uint32) (*Pointer, error) {
	if a.malloc == nil {
		return nil, errors.NotFound(errors.PhaseConstruct, "function", a.mallocName)
	}

	a.freePending(ctx)
	res, err := a.call(ctx, a.malloc, uint64(size))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConstruct, errors.KindAcquireFailed, err, a.mallocName)
	}
	if len(res) == 0 || uint32(res[0]) == 0 {
		return nil, errors.New(errors.PhaseConstruct, errors.KindAcquireFailed).
			Func(a.mallocName).
			Detail("%s(%d) returned null", a.mallocName, size).
			Build()
	}

	p, err := a.track(uint32(res[0]))
	if err != nil {
		// Closed while malloc ran; give the memory back.
		a.release(ctx, uint32(res[0]))
		return nil, err
	}
	return p, nil
}

// Close frees every outstanding pointer, most recently allocated first, and
// refuses new ones. Pointers closed concurrently are freed by exactly one
// side. It returns the first release failure.
func (a *Allocator) Close(ctx context.Context) error {
	a.stateMu.Lock()
	a.closed = true
	a.stateMu.Unlock()

	a.freePending(ctx)

	var handles []resource.Handle
	a.cells.Each(func(h resource.Handle, _ *cell) bool {
		handles = append(handles, h)
		return true
	})

	var firstErr error
	for i := len(handles) - 1; i >= 0; i-- {
		c, ok := a.cells.Remove(handles[i])
		if !ok {
			continue
		}
		if err := a.release(ctx, c.p); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if err := a.cells.Table().Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// release calls the free export on p. Null is skipped.
func (a *Allocator) release(ctx context.Context, p uint32) error {
	if p == 0 {
		return nil
	}
	if _, err := a.call(ctx, a.free, uint64(p)); err != nil {
		return errors.ReleaseFailed(cellKind, a.freeName, uintptr(p), err)
	}
	return nil
}

// deferFree queues the address of a finalized pointer. Finalizers run on
// their own goroutine, where calling into the guest could interleave with
// the owner's calls; the queue is drained by FromPtr, Alloc and Close.
func (a *Allocator) deferFree(p uint32) {
	if p == 0 {
		return
	}
	a.pendingMu.Lock()
	a.pending = append(a.pending, p)
	a.pendingMu.Unlock()
}

// freePending frees queued addresses. Their status is discarded, as for
// Drop.
func (a *Allocator) freePending(ctx context.Context) {
	a.pendingMu.Lock()
	pending := a.pending
	a.pending = nil
	a.pendingMu.Unlock()

	for _, p := range pending {
		if err := a.release(ctx, p); err != nil {
			Logger().Debug("release status discarded",
				zap.String("kind", cellKind),
				zap.Error(err))
		}
	}
}

func (a *Allocator) call(ctx context.Context, fn api.Function, params ...uint64) ([]uint64, error) {
	a.callMu.Lock()
	defer a.callMu.Unlock()
	return fn.Call(ctx, params...)
}
