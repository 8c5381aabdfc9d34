package com

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"unsafe"
)

func TestDefaultLoggerSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLoggerNil(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore a disabled logger")
	}
}

// fakeUnknown refuses every interface.
type fakeUnknown struct{ refs uint32 }

func (f *fakeUnknown) AddRef() uint32  { f.refs++; return f.refs }
func (f *fakeUnknown) Release() uint32 { f.refs--; return f.refs }

func (f *fakeUnknown) QueryInterface(iid *GUID, out *unsafe.Pointer) HRESULT {
	*out = nil
	return E_NOINTERFACE
}

func TestLogsQueryFailureAndFinalRelease(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	p := UnsafeAttach(&fakeUnknown{refs: 1})
	if _, err := Cast[IUnknown](p); err == nil {
		t.Fatal("Cast should fail")
	}
	p.Release()

	out := buf.String()
	for _, want := range []string{"QueryInterface failed", "E_NOINTERFACE", "object released", "com.fakeUnknown"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestVtblAs(t *testing.T) {
	type wideVtbl struct {
		IUnknownVtbl
		Extra uintptr
	}
	vtbl := &wideVtbl{Extra: 42}
	u := &IUnknown{Vtbl: &vtbl.IUnknownVtbl}

	if got := VtblAs[wideVtbl](u); got != vtbl || got.Extra != 42 {
		t.Errorf("VtblAs() = %p, want %p", got, vtbl)
	}
}
