package com_test

import (
	"errors"
	"testing"

	"github.com/gogpu/dwrite/com"
	"github.com/gogpu/dwrite/com/comtest"
)

func TestCastNullNoForeignCall(t *testing.T) {
	obj := comtest.NewObject(comtest.WithInterfaces(comtest.IID_IWidget))
	defer obj.Unknown().Release()

	w, err := com.Cast[comtest.Widget](com.New[comtest.Unknown]())
	if w != nil {
		t.Error("Cast from null should not return a handle")
	}
	if !errors.Is(err, com.E_POINTER) {
		t.Fatalf("Cast from null = %v, want E_POINTER", err)
	}

	var cerr *com.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("error %T is not *com.Error", err)
	}
	if cerr.Op != "QueryInterface" || cerr.IID != comtest.IID_IWidget {
		t.Errorf("Error = %+v, want QueryInterface on IID_IWidget", cerr)
	}
	if got := obj.Queries(); got != 0 {
		t.Errorf("Queries() = %d, want 0", got)
	}
}

func TestCastSuccess(t *testing.T) {
	obj := comtest.NewObject(comtest.WithInterfaces(comtest.IID_IWidget))
	p := com.UnsafeAttach(obj.Unknown())

	w, err := com.Cast[comtest.Widget](p)
	if err != nil {
		t.Fatalf("Cast() error = %v", err)
	}
	if w.IsNull() {
		t.Fatal("successful Cast returned a null handle")
	}
	if w.Get() != obj.Widget() {
		t.Error("Cast should return the widget view of the same object")
	}
	if got := obj.Count(); got != 2 {
		t.Errorf("Count() after Cast = %d, want 2", got)
	}
	if p.IsNull() {
		t.Error("Cast must not change the source handle")
	}

	w.Release()
	if got := obj.Count(); got != 1 {
		t.Errorf("Count() after releasing cast result = %d, want 1", got)
	}

	p.Release()
	verify(t, obj)
}

func TestCastReleaseOrderIndependent(t *testing.T) {
	obj := comtest.NewObject(comtest.WithInterfaces(comtest.IID_IWidget))
	p := com.UnsafeAttach(obj.Unknown())

	w, err := com.Cast[comtest.Widget](p)
	if err != nil {
		t.Fatalf("Cast() error = %v", err)
	}

	p.Release()
	if obj.Freed() {
		t.Fatal("object freed while the cast result still holds a reference")
	}
	w.Release()
	verify(t, obj)
}

func TestCastChain(t *testing.T) {
	obj := comtest.NewObject(comtest.WithInterfaces(comtest.IID_IWidget, comtest.IID_IGadget))
	p := com.UnsafeAttach(obj.Unknown())
	defer p.Release()

	w, err := com.Cast[comtest.Widget](p)
	if err != nil {
		t.Fatalf("Cast[Widget]() error = %v", err)
	}
	defer w.Release()

	g, err := com.Cast[comtest.Gadget](w)
	if err != nil {
		t.Fatalf("Cast[Gadget]() error = %v", err)
	}
	defer g.Release()

	back, err := com.Cast[comtest.Unknown](g)
	if err != nil {
		t.Fatalf("Cast[Unknown]() error = %v", err)
	}
	defer back.Release()

	if !back.Equal(p) {
		t.Error("casting back to IUnknown should yield the same address")
	}
	if got := obj.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}

func TestCastFailure(t *testing.T) {
	tests := []struct {
		name string
		opts []comtest.Option
		want com.HRESULT
	}{
		{"unsupported interface", nil, com.E_NOINTERFACE},
		{"forced failure", []comtest.Option{
			comtest.WithInterfaces(comtest.IID_IWidget),
			comtest.WithQueryResult(com.E_FAIL),
		}, com.E_FAIL},
		{"success without pointer", []comtest.Option{
			comtest.WithInterfaces(comtest.IID_IWidget),
			comtest.WithNilQueryResult(),
		}, com.E_POINTER},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := comtest.NewObject(tt.opts...)
			p := com.UnsafeAttach(obj.Unknown())

			w, err := com.Cast[comtest.Widget](p)
			if w != nil {
				t.Error("failed Cast should not return a handle")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Cast() error = %v, want %v", err, tt.want)
			}
			if got := com.HRESULTOf(err); got != tt.want {
				t.Errorf("HRESULTOf() = %v, want %v", got, tt.want)
			}
			if got := obj.Queries(); got != 1 {
				t.Errorf("Queries() = %d, want 1", got)
			}
			if got := obj.Count(); got != 1 {
				t.Errorf("Count() after failed Cast = %d, want 1", got)
			}

			// The source still owns exactly one reference.
			p.Release()
			verify(t, obj)
		})
	}
}

func TestCastRecoversAfterFailure(t *testing.T) {
	obj := comtest.NewObject(
		comtest.WithInterfaces(comtest.IID_IWidget),
		comtest.WithQueryResult(com.E_OUTOFMEMORY),
	)
	p := com.UnsafeAttach(obj.Unknown())
	defer func() {
		p.Release()
		verify(t, obj)
	}()

	if _, err := com.Cast[comtest.Widget](p); !errors.Is(err, com.E_OUTOFMEMORY) {
		t.Fatalf("Cast() error = %v, want E_OUTOFMEMORY", err)
	}

	// No retry happens on its own; a new call sees the new behavior.
	obj.SetQueryResult(com.S_OK)
	w, err := com.Cast[comtest.Widget](p)
	if err != nil {
		t.Fatalf("Cast() error = %v", err)
	}
	w.Release()
	if got := obj.Queries(); got != 2 {
		t.Errorf("Queries() = %d, want 2", got)
	}
}
