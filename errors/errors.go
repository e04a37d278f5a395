package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in a wrapper's life the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // wrapping a pointer
	PhaseRelease   Phase = "release"   // calling the release function
	PhaseRead      Phase = "read"      // structured reads of the pointee
	PhaseWrite     Phase = "write"     // structured writes to the pointee
	PhaseResolve   Phase = "resolve"   // locating release functions
)

// Kind categorizes the error
type Kind string

const (
	KindNilContext        Kind = "nil_context"
	KindContextReleased   Kind = "context_released"
	KindOutstandingBorrow Kind = "outstanding_borrow"
	KindAlreadyReleased   Kind = "already_released"
	KindReleaseFailed     Kind = "release_failed"
	KindAcquireFailed     Kind = "acquire_failed"
	KindOutOfBounds       Kind = "out_of_bounds"
	KindNotFound          Kind = "not_found"
	KindInvalidInput      Kind = "invalid_input"
)

// Error is the structured error type used throughout cellophane
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Handle string
	Func   string
	Detail string
	Ptr    uintptr
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Handle != "" {
		b.WriteString(" in ")
		b.WriteString(e.Handle)
	}

	if e.Func != "" || e.Ptr != 0 {
		b.WriteString(": ")
		if e.Func != "" {
			b.WriteString(e.Func)
			if e.Ptr != 0 {
				fmt.Fprintf(&b, "(%#x)", e.Ptr)
			}
		} else {
			fmt.Fprintf(&b, "ptr %#x", e.Ptr)
		}
	}

	if e.Detail != "" {
		if e.Func != "" || e.Ptr != 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Handle sets the wrapper kind
func (b *Builder) Handle(name string) *Builder {
	b.err.Handle = name
	return b
}

// Func sets the release function name
func (b *Builder) Func(name string) *Builder {
	b.err.Func = name
	return b
}

// Ptr sets the pointer involved
func (b *Builder) Ptr(p uintptr) *Builder {
	b.err.Ptr = p
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ReleaseFailed wraps the status returned by a release function
func ReleaseFailed(handle, fn string, p uintptr, cause error) *Error {
	return &Error{
		Phase:  PhaseRelease,
		Kind:   KindReleaseFailed,
		Handle: handle,
		Func:   fn,
		Ptr:    p,
		Cause:  cause,
	}
}

// AlreadyReleased reports a second release of the same wrapper
func AlreadyReleased(handle string) *Error {
	return &Error{
		Phase:  PhaseRelease,
		Kind:   KindAlreadyReleased,
		Handle: handle,
		Detail: "wrapper was already released",
	}
}

// NilContext reports a dependent handle built without its context
func NilContext(handle, context string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindNilContext,
		Handle: handle,
		Detail: fmt.Sprintf("requires a live %s", context),
	}
}

// ContextReleased reports a dependent handle built on a released context
func ContextReleased(handle, context string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindContextReleased,
		Handle: handle,
		Detail: fmt.Sprintf("%s was already released", context),
	}
}

// OutstandingBorrow reports a release attempted while dependents still borrow the wrapper
func OutstandingBorrow(handle string, p uintptr, borrows int) *Error {
	return &Error{
		Phase:  PhaseRelease,
		Kind:   KindOutstandingBorrow,
		Handle: handle,
		Ptr:    p,
		Detail: fmt.Sprintf("%d dependent handle(s) still borrow it", borrows),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, offset, size, length uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("%d bytes at offset %d out of bounds (length %d)", size, offset, length),
	}
}

// NotFound creates a not found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
