// Package win32 provides wrappers for Windows resources and the release
// function each one needs.
//
// Windows has many different flavors of free. Memory from LocalAlloc must go
// back through LocalFree, memory from GlobalAlloc through GlobalFree, LSA
// buffers through LsaFreeReturnBuffer, SIDs from AllocateAndInitializeSid
// through FreeSid, kernel objects through CloseHandle, and so on. Each kind
// here is a handle.Wrapper bound to exactly one of them:
//
//	var sid *windows.SID
//	err := windows.AllocateAndInitializeSid(&windows.SECURITY_NT_AUTHORITY, 2,
//		windows.SECURITY_BUILTIN_DOMAIN_RID, windows.DOMAIN_ALIAS_RID_ADMINS,
//		0, 0, 0, 0, 0, 0, &sid)
//	if err != nil {
//		return err
//	}
//	w := win32.NewFreeSidWrapper(uintptr(unsafe.Pointer(sid)))
//	defer w.Close()
//
// # Generated Code
//
// Two layers are generated. zsyscall_windows.go holds the stubs for release
// functions that golang.org/x/sys/windows does not export, produced by
// mkwinsyscall from the //sys lines in syscall_windows.go. zwrappers_windows.go
// holds one releaser type, wrapper alias and constructor per //wrap directive
// in wrappers_windows.go, produced by internal/cmd/genwrappers.
//
// # Catalog Contexts
//
// CryptCATAdminReleaseCatalogContext needs the catalog administrator context
// the catalog came from, so CryptCATAdminReleaseCatalogContextWrapper is a
// handle.Dependent borrowing a CryptCATAdminReleaseContextWrapper. The
// administrator context cannot be closed while catalog contexts are live.
//
// Every kind is registered with cellophane.Register; the binding's probe
// resolves the release function in its DLL.
package win32
