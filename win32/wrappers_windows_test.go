//go:build windows

package win32

import (
	stderrors "errors"
	"testing"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/wippyai/cellophane"
	"github.com/wippyai/cellophane/errors"
)

func TestLocalFree(t *testing.T) {
	p, err := windows.LocalAlloc(0, 64)
	if err != nil {
		t.Fatalf("LocalAlloc: %v", err)
	}

	w := NewLocalFreeWrapper(p)
	if w.IsNull() {
		t.Fatal("wrapper should hold the allocation")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !w.IsNull() {
		t.Fatal("wrapper should be null after Close")
	}
}

func TestGlobalFree(t *testing.T) {
	p, err := globalAlloc(0, 64)
	if err != nil {
		t.Fatalf("GlobalAlloc: %v", err)
	}
	if err := NewGlobalFreeWrapper(p).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestCloseHandle(t *testing.T) {
	ev, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	w := NewCloseHandleWrapper(uintptr(ev))
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	err = w.Close()
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRelease, Kind: errors.KindAlreadyReleased}) {
		t.Fatalf("second Close should report already released, got %v", err)
	}
}

func TestCloseHandle_InvalidHandle(t *testing.T) {
	w := NewCloseHandleWrapper(0xdead0)
	err := w.Close()
	if err == nil {
		t.Fatal("expected CloseHandle to fail on a bogus handle")
	}

	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindReleaseFailed {
		t.Fatalf("expected release_failed error, got %v", err)
	}
	if e.Func != "CloseHandle" {
		t.Errorf("Func = %q, want CloseHandle", e.Func)
	}
}

func TestFreeSid(t *testing.T) {
	var sid *windows.SID
	err := windows.AllocateAndInitializeSid(&windows.SECURITY_NT_AUTHORITY, 2,
		windows.SECURITY_BUILTIN_DOMAIN_RID, windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0, &sid)
	if err != nil {
		t.Fatalf("AllocateAndInitializeSid: %v", err)
	}

	w := NewFreeSidWrapper(uintptr(unsafe.Pointer(sid)))
	if got := (*windows.SID)(w.MutPtr()).String(); got != "S-1-5-32-544" {
		t.Errorf("SID = %q, want S-1-5-32-544", got)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestLsaFreeReturnBuffer(t *testing.T) {
	var count uint32
	w := NewLsaFreeReturnBufferWrapper(0)
	if err := lsaEnumerateLogonSessions(&count, w.Out()); err != nil {
		t.Skipf("LsaEnumerateLogonSessions: %v", err)
	}
	if count > 0 && w.IsNull() {
		t.Fatal("sessions buffer should be filled through Out")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNetApiBufferFree(t *testing.T) {
	var status uint32
	w := NewNetApiBufferFreeWrapper(0)
	err := windows.NetGetJoinInformation(nil, (**uint16)(unsafe.Pointer(w.Out())), &status)
	if err != nil {
		t.Skipf("NetGetJoinInformation: %v", err)
	}
	if w.IsNull() {
		t.Fatal("name buffer should be filled through Out")
	}
	if UTF16String(w) == "" {
		t.Error("expected a non-empty workgroup or domain name")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestCertCloseStore(t *testing.T) {
	store, err := windows.CertOpenStore(windows.CERT_STORE_PROV_MEMORY, 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("CertOpenStore: %v", err)
	}
	if err := NewCertCloseStoreWrapper(uintptr(store)).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestCatalogContext(t *testing.T) {
	admin, err := AcquireCatalogAdmin(nil)
	if err != nil {
		t.Skipf("AcquireCatalogAdmin: %v", err)
	}

	catalog, err := NewCryptCATAdminReleaseCatalogContextWrapper(admin)
	if err != nil {
		t.Fatalf("NewCryptCATAdminReleaseCatalogContextWrapper: %v", err)
	}
	if catalog.Context() != admin {
		t.Fatal("catalog should hold its administrator context")
	}

	err = admin.Close()
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRelease, Kind: errors.KindOutstandingBorrow}) {
		t.Fatalf("admin Close should be refused while the catalog is live, got %v", err)
	}

	if err := catalog.Close(); err != nil {
		t.Fatalf("catalog Close: %v", err)
	}
	if err := admin.Close(); err != nil {
		t.Fatalf("admin Close: %v", err)
	}
}

func TestCatalogContext_NilAdmin(t *testing.T) {
	_, err := NewCryptCATAdminReleaseCatalogContextWrapper(nil)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseConstruct, Kind: errors.KindNilContext}) {
		t.Fatalf("expected nil_context error, got %v", err)
	}
}

func TestNullWrappersCloseCleanly(t *testing.T) {
	closers := []interface{ Close() error }{
		NewLocalFreeWrapper(0),
		NewGlobalFreeWrapper(0),
		NewCoTaskMemFreeWrapper(0),
		NewNetApiBufferFreeWrapper(0),
		NewWTSFreeMemoryWrapper(0),
		NewLsaFreeReturnBufferWrapper(0),
		NewLsaFreeMemoryWrapper(0),
		NewDestroyEnvironmentBlockWrapper(0),
		NewFreeSidWrapper(0),
		NewUnmapViewOfFileWrapper(0),
		NewCloseHandleWrapper(0),
		NewFindCloseWrapper(0),
		NewFreeLibraryWrapper(0),
		NewRegCloseKeyWrapper(0),
		NewCloseServiceHandleWrapper(0),
		NewDeregisterEventSourceWrapper(0),
		NewLsaCloseWrapper(0),
		NewCryptReleaseContextWrapper(0),
		NewCertCloseStoreWrapper(0),
		NewCertFreeCertificateContextWrapper(0),
		NewCertFreeCertificateChainWrapper(0),
		NewCryptMsgCloseWrapper(0),
		NewNCryptFreeObjectWrapper(0),
		NewCryptCATAdminReleaseContextWrapper(0),
	}
	for _, c := range closers {
		if err := c.Close(); err != nil {
			t.Errorf("%v: Close of a null wrapper failed: %v", c, err)
		}
	}
}

func TestBindings(t *testing.T) {
	for _, b := range generatedBindings {
		got, ok := cellophane.Lookup(b.Kind)
		if !ok {
			t.Errorf("%s not registered", b.Kind)
			continue
		}
		if err := got.Resolve(); err != nil {
			t.Errorf("%s: %s!%s does not resolve: %v", b.Kind, got.Library, got.Function, err)
		}
	}

	b, ok := cellophane.Lookup("CryptCATAdminReleaseCatalogContextWrapper")
	if !ok {
		t.Fatal("catalog binding not registered")
	}
	if b.Context != "CryptCATAdminReleaseContextWrapper" {
		t.Errorf("catalog Context = %q", b.Context)
	}
	if err := b.Resolve(); err != nil {
		t.Errorf("catalog binding does not resolve: %v", err)
	}
}
