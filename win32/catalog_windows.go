//go:build windows

package win32

import (
	"golang.org/x/sys/windows"

	"github.com/wippyai/cellophane/errors"
	"github.com/wippyai/cellophane/handle"
)

// CryptCATAdminReleaseCatalogContext releases catalog contexts from
// CryptCATAdminEnumCatalogFromHash. It needs the administrator context the
// catalog was enumerated from.
type CryptCATAdminReleaseCatalogContext struct{}

func (CryptCATAdminReleaseCatalogContext) Name() string {
	return "CryptCATAdminReleaseCatalogContext"
}

func (CryptCATAdminReleaseCatalogContext) Release(ctx, p uintptr) error {
	return cryptCATAdminReleaseCatalogContext(ctx, p, 0)
}

// CryptCATAdminReleaseCatalogContextWrapper owns a catalog context and
// borrows the administrator context it belongs to.
type CryptCATAdminReleaseCatalogContextWrapper = handle.Dependent[CryptCATAdminReleaseCatalogContext, CryptCATAdminReleaseContext]

// NewCryptCATAdminReleaseCatalogContextWrapper returns an empty catalog
// wrapper bound to admin, ready to be filled through Out.
func NewCryptCATAdminReleaseCatalogContextWrapper(admin *CryptCATAdminReleaseContextWrapper) (*CryptCATAdminReleaseCatalogContextWrapper, error) {
	return handle.NewDependent[CryptCATAdminReleaseCatalogContext](admin)
}

// CryptCATAdminReleaseCatalogContextWrapperFromPtr takes ownership of the
// catalog context p enumerated from admin.
func CryptCATAdminReleaseCatalogContextWrapperFromPtr(admin *CryptCATAdminReleaseContextWrapper, p uintptr) (*CryptCATAdminReleaseCatalogContextWrapper, error) {
	return handle.DependentFromPtr[CryptCATAdminReleaseCatalogContext](admin, p)
}

// AcquireCatalogAdmin acquires a catalog administrator context for
// subsystem. A nil subsystem selects the default driver subsystem.
func AcquireCatalogAdmin(subsystem *windows.GUID) (*CryptCATAdminReleaseContextWrapper, error) {
	admin := handle.New[CryptCATAdminReleaseContext]()
	if err := cryptCATAdminAcquireContext(admin.Out(), subsystem, 0); err != nil {
		return nil, errors.Wrap(errors.PhaseConstruct, errors.KindAcquireFailed, err, "CryptCATAdminAcquireContext")
	}
	return admin, nil
}
