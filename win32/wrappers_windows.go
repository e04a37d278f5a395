//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/wippyai/cellophane"
)

// Memory

// LocalFree frees memory from LocalAlloc and the many APIs that return
// LocalAlloc buffers, such as FormatMessage and ConvertSidToStringSid.
//wrap LocalFree kernel32 = localFree(p)

// GlobalFree frees memory from GlobalAlloc.
//wrap GlobalFree kernel32 = globalFree(p)

// CoTaskMemFree frees memory from the COM task allocator.
//wrap CoTaskMemFree ole32 = coTaskMemFree(p)

// NetApiBufferFree frees buffers returned by the Net* APIs.
//wrap NetApiBufferFree netapi32 = netApiBufferFree(p)

// WTSFreeMemory frees buffers returned by the WTS* APIs.
//wrap WTSFreeMemory wtsapi32 = wtsFreeMemory(p)

// LsaFreeReturnBuffer frees buffers returned by the LSA authentication
// APIs, such as LsaEnumerateLogonSessions.
//wrap LsaFreeReturnBuffer secur32 = lsaFreeReturnBuffer(p)

// LsaFreeMemory frees buffers returned by the LSA policy APIs.
//wrap LsaFreeMemory advapi32 = lsaFreeMemory(p)

// DestroyEnvironmentBlock frees blocks from CreateEnvironmentBlock.
//wrap DestroyEnvironmentBlock userenv = destroyEnvironmentBlock(p)

// FreeSid frees SIDs from AllocateAndInitializeSid.
//wrap FreeSid advapi32 = freeSid(p)

// UnmapViewOfFile unmaps views from MapViewOfFile.
//wrap UnmapViewOfFile kernel32 = windows.UnmapViewOfFile(p)

// Handles

// CloseHandle closes kernel object handles.
//wrap CloseHandle kernel32 = windows.CloseHandle(windows.Handle(p))

// FindClose closes search handles from FindFirstFile.
//wrap FindClose kernel32 = windows.FindClose(windows.Handle(p))

// FreeLibrary unloads modules from LoadLibrary.
//wrap FreeLibrary kernel32 = windows.FreeLibrary(windows.Handle(p))

// RegCloseKey closes registry keys.
//wrap RegCloseKey advapi32 = windows.RegCloseKey(windows.Handle(p))

// CloseServiceHandle closes service control manager and service handles.
//wrap CloseServiceHandle advapi32 = windows.CloseServiceHandle(windows.Handle(p))

// DeregisterEventSource closes event log handles from RegisterEventSource.
//wrap DeregisterEventSource advapi32 = windows.DeregisterEventSource(windows.Handle(p))

// LsaClose closes LSA policy handles.
//wrap LsaClose advapi32 = lsaClose(p)

// Crypto

// CryptReleaseContext releases CSP handles from CryptAcquireContext.
//wrap CryptReleaseContext advapi32 = windows.CryptReleaseContext(windows.Handle(p), 0)

// CertCloseStore closes certificate stores.
//wrap CertCloseStore crypt32 = windows.CertCloseStore(windows.Handle(p), 0)

// CertFreeCertificateContext frees certificate contexts.
//wrap CertFreeCertificateContext crypt32 = certFreeCertificateContext(p)

// CertFreeCertificateChain frees chains from CertGetCertificateChain.
//wrap CertFreeCertificateChain crypt32 = certFreeCertificateChain(p)

// CryptMsgClose closes cryptographic message handles.
//wrap CryptMsgClose crypt32 = cryptMsgClose(p)

// NCryptFreeObject frees CNG key storage objects.
//wrap NCryptFreeObject ncrypt = nCryptFreeObject(p)

// CryptCATAdminReleaseContext releases catalog administrator contexts.
//wrap CryptCATAdminReleaseContext wintrust = cryptCATAdminReleaseContext(p, 0)

func localFree(p uintptr) error {
	_, err := windows.LocalFree(windows.Handle(p))
	return err
}

func coTaskMemFree(p uintptr) error {
	windows.CoTaskMemFree(unsafe.Pointer(p))
	return nil
}

func netApiBufferFree(p uintptr) error {
	return windows.NetApiBufferFree((*byte)(unsafe.Pointer(p)))
}

func wtsFreeMemory(p uintptr) error {
	windows.WTSFreeMemory(p)
	return nil
}

func destroyEnvironmentBlock(p uintptr) error {
	return windows.DestroyEnvironmentBlock((*uint16)(unsafe.Pointer(p)))
}

func freeSid(p uintptr) error {
	return windows.FreeSid((*windows.SID)(unsafe.Pointer(p)))
}

func certFreeCertificateContext(p uintptr) error {
	return windows.CertFreeCertificateContext((*windows.CertContext)(unsafe.Pointer(p)))
}

func certFreeCertificateChain(p uintptr) error {
	windows.CertFreeCertificateChain((*windows.CertChainContext)(unsafe.Pointer(p)))
	return nil
}

// UTF16String reads a NUL-terminated UTF-16 string at the held pointer.
// A null handle reads as "".
func UTF16String(h cellophane.HasPointer) string {
	if h.IsNull() {
		return ""
	}
	return windows.UTF16PtrToString((*uint16)(h.MutPtr()))
}

func init() {
	for _, b := range generatedBindings {
		b.Probe = probe(b.Library, b.Function)
		cellophane.Register(b)
	}
	cellophane.Register(cellophane.Binding{
		Kind:     "CryptCATAdminReleaseCatalogContextWrapper",
		Library:  "wintrust.dll",
		Function: "CryptCATAdminReleaseCatalogContext",
		Context:  "CryptCATAdminReleaseContextWrapper",
		Probe:    probe("wintrust.dll", "CryptCATAdminReleaseCatalogContext"),
	})
}

func probe(library, function string) func() error {
	return windows.NewLazySystemDLL(library).NewProc(function).Find
}
