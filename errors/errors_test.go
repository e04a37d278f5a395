package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseRelease,
				Kind:   KindReleaseFailed,
				Handle: "CloseHandleWrapper",
				Func:   "CloseHandle",
				Ptr:    0x1f4,
				Detail: "invalid handle",
			},
			contains: []string{"[release]", "release_failed", "CloseHandleWrapper", "CloseHandle(0x1f4)", "invalid handle"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRead,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[read]", "out_of_bounds"},
		},
		{
			name: "write phase",
			err: &Error{
				Phase: PhaseWrite,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[write]", "out_of_bounds"},
		},
		{
			name: "pointer without function",
			err: &Error{
				Phase: PhaseRelease,
				Kind:  KindOutstandingBorrow,
				Ptr:   0x10,
			},
			contains: []string{"ptr 0x10"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRelease,
				Kind:   KindReleaseFailed,
				Detail: "status discarded",
				Cause:  errors.New("access denied"),
			},
			contains: []string{"[release]", "release_failed", "status discarded", "caused by", "access denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseRelease,
		Kind:  KindReleaseFailed,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseRelease,
		Kind:   KindAlreadyReleased,
		Handle: "FreeWrapper",
	}

	if !err.Is(&Error{Phase: PhaseRelease, Kind: KindAlreadyReleased}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseConstruct, Kind: KindAlreadyReleased}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseRelease, Kind: KindReleaseFailed}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseRelease, Kind: KindAlreadyReleased}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseRelease, KindReleaseFailed).
		Handle("GlobalFreeWrapper").
		Func("GlobalFree").
		Ptr(0x2000).
		Cause(cause).
		Detail("status %d", 87).
		Build()

	if err.Phase != PhaseRelease {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseRelease)
	}
	if err.Kind != KindReleaseFailed {
		t.Errorf("Kind = %v, want %v", err.Kind, KindReleaseFailed)
	}
	if err.Handle != "GlobalFreeWrapper" {
		t.Errorf("Handle = %v, want 'GlobalFreeWrapper'", err.Handle)
	}
	if err.Func != "GlobalFree" {
		t.Errorf("Func = %v, want 'GlobalFree'", err.Func)
	}
	if err.Ptr != 0x2000 {
		t.Errorf("Ptr = %#x, want 0x2000", err.Ptr)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "status 87" {
		t.Errorf("Detail = %v, want 'status 87'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("ReleaseFailed", func(t *testing.T) {
		cause := errors.New("bad handle")
		err := ReleaseFailed("CloseHandleWrapper", "CloseHandle", 4, cause)
		if err.Kind != KindReleaseFailed || err.Phase != PhaseRelease {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
		if !errors.Is(err, cause) {
			t.Error("ReleaseFailed should unwrap to its cause")
		}
	})

	t.Run("AlreadyReleased", func(t *testing.T) {
		err := AlreadyReleased("FreeWrapper")
		if err.Kind != KindAlreadyReleased {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAlreadyReleased)
		}
	})

	t.Run("NilContext", func(t *testing.T) {
		err := NilContext("CatalogWrapper", "AdminWrapper")
		if err.Phase != PhaseConstruct || err.Kind != KindNilContext {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Detail, "AdminWrapper") {
			t.Errorf("Detail %q should name the context", err.Detail)
		}
	})

	t.Run("ContextReleased", func(t *testing.T) {
		err := ContextReleased("CatalogWrapper", "AdminWrapper")
		if err.Kind != KindContextReleased {
			t.Errorf("Kind = %v, want %v", err.Kind, KindContextReleased)
		}
	})

	t.Run("OutstandingBorrow", func(t *testing.T) {
		err := OutstandingBorrow("AdminWrapper", 0x40, 2)
		if err.Kind != KindOutstandingBorrow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutstandingBorrow)
		}
		if !strings.Contains(err.Detail, "2") {
			t.Errorf("Detail %q should contain borrow count", err.Detail)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseRead, 65530, 8, 65536)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if !strings.Contains(err.Detail, "65530") {
			t.Errorf("Detail %q should contain offset", err.Detail)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseResolve, "export", "free")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, `"free"`) {
			t.Errorf("Detail %q should quote the name", err.Detail)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseResolve, KindNotFound, cause, "proc lookup")
		if !errors.Is(err, cause) {
			t.Error("Wrap should unwrap to its cause")
		}
	})
}
