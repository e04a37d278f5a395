// Package resource provides a release scope: a table that owns wrappers and
// drops them together.
//
// Code that acquires many foreign pointers in one operation can insert each
// wrapper into a table and close the table on exit instead of deferring
// every Close separately:
//
//	table := resource.NewTable()
//	defer table.Close()
//
//	admin, _ := win32.AcquireCatalogAdmin(nil)
//	table.Insert(admin.Kind(), admin)
//
//	catalog, _ := win32.NewCryptCATAdminReleaseCatalogContextWrapper(admin)
//	table.Insert(catalog.Kind(), catalog)
//
// # Handle Table
//
// The UnifiedTable maps integer handles to values:
//
//	handle := table.Insert(kind, value)
//	value, ok := table.Get(handle)
//	value, ok := table.GetTyped(handle, kind)
//	value, ok := table.Remove(handle)
//
// Remove calls Drop on values implementing Dropper, which every cellophane
// wrapper does. Handle 0 is never issued.
//
// # Release Order
//
// Close and Clear drop values most recently inserted first. A dependent
// handle inserted after its context is therefore dropped before it, and
// the context's release is not refused for an outstanding borrow.
//
// # Borrows
//
// Borrow marks a handle as in use; Remove and Clear skip borrowed values
// until every borrow is returned. Close drops them regardless.
//
// # Observers
//
// Observers receive EventCreated and EventDropped notifications:
//
//	table.Subscribe(myObserver)
//
// # Typed Views
//
// NewTyped returns a TypedTable over one kind of a shared table:
//
//	pointers := resource.NewTyped[*guest.Pointer](table, "guest.Pointer")
//	h := pointers.Insert(p)
//
// A table is safe for concurrent use; the values it holds follow their own
// rules.
package resource
