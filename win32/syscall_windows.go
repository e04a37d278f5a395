//go:build windows

package win32

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall_windows.go
//go:generate go run ../internal/cmd/genwrappers -output zwrappers_windows.go -package win32 -tags windows wrappers_windows.go

// https://learn.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-globalalloc
//sys	globalAlloc(flags uint32, size uintptr) (hmem uintptr, err error) = kernel32.GlobalAlloc
// https://learn.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-globalfree
//sys	globalFree(hmem uintptr) (err error) [failretval!=0] = kernel32.GlobalFree

// https://learn.microsoft.com/en-us/windows/win32/api/ntsecapi/nf-ntsecapi-lsaclose
//sys	lsaClose(policy uintptr) (ntstatus error) = advapi32.LsaClose
// https://learn.microsoft.com/en-us/windows/win32/api/ntsecapi/nf-ntsecapi-lsafreememory
//sys	lsaFreeMemory(buffer uintptr) (ntstatus error) = advapi32.LsaFreeMemory

// https://learn.microsoft.com/en-us/windows/win32/api/ntsecapi/nf-ntsecapi-lsaenumeratelogonsessions
//sys	lsaEnumerateLogonSessions(count *uint32, sessions *uintptr) (ntstatus error) = secur32.LsaEnumerateLogonSessions
// https://learn.microsoft.com/en-us/windows/win32/api/ntsecapi/nf-ntsecapi-lsafreereturnbuffer
//sys	lsaFreeReturnBuffer(buffer uintptr) (ntstatus error) = secur32.LsaFreeReturnBuffer

// https://learn.microsoft.com/en-us/windows/win32/api/wincrypt/nf-wincrypt-cryptmsgclose
//sys	cryptMsgClose(msg uintptr) (err error) = crypt32.CryptMsgClose

// https://learn.microsoft.com/en-us/windows/win32/api/ncrypt/nf-ncrypt-ncryptfreeobject
//sys	nCryptFreeObject(object uintptr) (ret error) = ncrypt.NCryptFreeObject

// Wintrust.dll has no import library; the lazy DLL loads it on first use.
// https://learn.microsoft.com/en-us/windows/win32/api/mscat/nf-mscat-cryptcatadminacquirecontext
//sys	cryptCATAdminAcquireContext(catAdmin *uintptr, subsystem *windows.GUID, flags uint32) (err error) = wintrust.CryptCATAdminAcquireContext
// https://learn.microsoft.com/en-us/windows/win32/api/mscat/nf-mscat-cryptcatadminreleasecontext
//sys	cryptCATAdminReleaseContext(catAdmin uintptr, flags uint32) (err error) = wintrust.CryptCATAdminReleaseContext
// https://learn.microsoft.com/en-us/windows/win32/api/mscat/nf-mscat-cryptcatadminreleasecatalogcontext
//sys	cryptCATAdminReleaseCatalogContext(catAdmin uintptr, catInfo uintptr, flags uint32) (err error) = wintrust.CryptCATAdminReleaseCatalogContext
