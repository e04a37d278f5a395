package handle

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"testing"
	"time"

	cerrors "github.com/wippyai/cellophane/errors"
)

type pair struct {
	ctx, p uintptr
}

var (
	adminCalls   recorder
	catalogCalls []pair
)

type adminRelease struct{}

func (adminRelease) Name() string { return "adminRelease" }

func (adminRelease) Release(p uintptr) error {
	adminCalls.record(p)
	return nil
}

type catalogRelease struct{}

func (catalogRelease) Name() string { return "catalogRelease" }

func (catalogRelease) Release(ctx, p uintptr) error {
	catalogCalls = append(catalogCalls, pair{ctx, p})
	return nil
}

func resetDependentCalls() {
	adminCalls.reset()
	catalogCalls = nil
}

func TestDependent_RequiresContext(t *testing.T) {
	var admin *Wrapper[adminRelease]
	_, err := NewDependent[catalogRelease](admin)
	if !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseConstruct, Kind: cerrors.KindNilContext}) {
		t.Fatalf("expected nil context error, got %v", err)
	}
}

func TestDependent_RejectsReleasedContext(t *testing.T) {
	resetDependentCalls()

	admin := FromPtr[adminRelease](0xa0)
	if err := admin.Close(); err != nil {
		t.Fatalf("Close admin: %v", err)
	}

	_, err := DependentFromPtr[catalogRelease](admin, 0xc0)
	if !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseConstruct, Kind: cerrors.KindContextReleased}) {
		t.Fatalf("expected context released error, got %v", err)
	}
}

func TestDependent_ReleasesWithContext(t *testing.T) {
	resetDependentCalls()

	admin := FromPtr[adminRelease](0xa0)
	catalog, err := DependentFromPtr[catalogRelease](admin, 0xc0)
	if err != nil {
		t.Fatalf("DependentFromPtr: %v", err)
	}
	if catalog.Context() != admin {
		t.Fatal("Context() should return the borrowed admin wrapper")
	}

	if err := catalog.Close(); err != nil {
		t.Fatalf("Close catalog: %v", err)
	}
	if len(catalogCalls) != 1 || catalogCalls[0] != (pair{0xa0, 0xc0}) {
		t.Fatalf("expected release(0xa0, 0xc0), got %v", catalogCalls)
	}
	if catalog.Context() != nil {
		t.Fatal("released dependent should drop its context reference")
	}

	if err := admin.Close(); err != nil {
		t.Fatalf("Close admin: %v", err)
	}
	if calls := adminCalls.snapshot(); len(calls) != 1 || calls[0] != 0xa0 {
		t.Fatalf("expected admin release of 0xa0, got %v", calls)
	}
}

func TestDependent_ContextCloseRefusedWhileBorrowed(t *testing.T) {
	resetDependentCalls()

	admin := FromPtr[adminRelease](0xa0)
	first, err := NewDependent[catalogRelease](admin)
	if err != nil {
		t.Fatalf("NewDependent: %v", err)
	}
	*first.Out() = 0xc1
	second, err := DependentFromPtr[catalogRelease](admin, 0xc2)
	if err != nil {
		t.Fatalf("DependentFromPtr: %v", err)
	}

	err = admin.Close()
	if !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseRelease, Kind: cerrors.KindOutstandingBorrow}) {
		t.Fatalf("expected outstanding borrow error, got %v", err)
	}
	if _, err := admin.Take(); err == nil {
		t.Fatal("Take should be refused while borrowed")
	}
	if admin.Released() || admin.Ptr() != 0xa0 {
		t.Fatal("refused Close must leave the context intact")
	}

	first.Drop()
	if err := admin.Close(); err == nil {
		t.Fatal("Close should still be refused with one dependent live")
	}
	second.Drop()

	if err := admin.Close(); err != nil {
		t.Fatalf("Close after dependents released: %v", err)
	}

	want := []pair{{0xa0, 0xc1}, {0xa0, 0xc2}}
	if len(catalogCalls) != len(want) {
		t.Fatalf("catalog calls = %v, want %v", catalogCalls, want)
	}
	for i := range want {
		if catalogCalls[i] != want[i] {
			t.Fatalf("catalog call %d = %v, want %v", i, catalogCalls[i], want[i])
		}
	}
	if calls := adminCalls.snapshot(); len(calls) != 1 {
		t.Fatalf("expected exactly one admin release, got %v", calls)
	}
}

func TestDependent_NullSkipsRelease(t *testing.T) {
	resetDependentCalls()

	admin := FromPtr[adminRelease](0xa0)
	catalog, err := NewDependent[catalogRelease](admin)
	if err != nil {
		t.Fatalf("NewDependent: %v", err)
	}
	if err := catalog.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(catalogCalls) != 0 {
		t.Fatalf("null dependent must not be released, got %v", catalogCalls)
	}

	if err := catalog.Close(); !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseRelease, Kind: cerrors.KindAlreadyReleased}) {
		t.Fatalf("expected already released, got %v", err)
	}
	if err := admin.Close(); err != nil {
		t.Fatalf("borrow should be returned by a null dependent: %v", err)
	}
}

// finalizedOrder logs releases made by finalizers, in order.
var finalizedOrder struct {
	mu   sync.Mutex
	logs []string
}

func logFinalized(format string, args ...any) {
	finalizedOrder.mu.Lock()
	defer finalizedOrder.mu.Unlock()
	finalizedOrder.logs = append(finalizedOrder.logs, fmt.Sprintf(format, args...))
}

func finalizedLogs() []string {
	finalizedOrder.mu.Lock()
	defer finalizedOrder.mu.Unlock()
	return append([]string(nil), finalizedOrder.logs...)
}

type finalizedAdmin struct{}

func (finalizedAdmin) Name() string { return "finalizedAdmin" }

func (finalizedAdmin) Release(p uintptr) error {
	logFinalized("admin(%#x)", p)
	return nil
}

type finalizedCatalog struct{}

func (finalizedCatalog) Name() string { return "finalizedCatalog" }

func (finalizedCatalog) Release(ctx, p uintptr) error {
	logFinalized("catalog(%#x, %#x)", ctx, p)
	return nil
}

func TestDependent_FinalizerReleasesBeforeContext(t *testing.T) {
	func() {
		admin := FromPtr[finalizedAdmin](0xa0)
		if _, err := DependentFromPtr[finalizedCatalog](admin, 0xc0); err != nil {
			t.Fatalf("DependentFromPtr: %v", err)
		}
	}()

	deadline := time.Now().Add(5 * time.Second)
	for len(finalizedLogs()) < 2 && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
	runtime.GC()
	time.Sleep(20 * time.Millisecond)

	logs := finalizedLogs()
	if len(logs) != 2 || logs[0] != "catalog(0xa0, 0xc0)" || logs[1] != "admin(0xa0)" {
		t.Fatalf("expected catalog then admin released once each, got %v", logs)
	}
}
