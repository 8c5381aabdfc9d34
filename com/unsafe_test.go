package com_test

import (
	"testing"
	"unsafe"

	"github.com/gogpu/dwrite/com"
	"github.com/gogpu/dwrite/com/comtest"
)

func TestUnsafeDetach(t *testing.T) {
	obj := comtest.NewObject()
	p := com.UnsafeAttach(obj.Unknown())

	raw := p.UnsafeDetach()
	if raw != obj.Unknown() {
		t.Errorf("UnsafeDetach() = %p, want %p", raw, obj.Unknown())
	}
	if !p.IsNull() {
		t.Error("handle should be null after UnsafeDetach")
	}

	p.Release()
	if got := obj.Releases(); got != 0 {
		t.Errorf("Release after UnsafeDetach performed %d decrement(s), want 0", got)
	}

	// Ownership moved to raw; hand it to a new handle.
	q := com.UnsafeAttach(raw)
	q.Release()
	verify(t, obj)
}

func TestUnsafeDetachNull(t *testing.T) {
	if raw := com.New[comtest.Unknown]().UnsafeDetach(); raw != nil {
		t.Errorf("UnsafeDetach() on null = %p, want nil", raw)
	}
}

func TestUnsafeRaw(t *testing.T) {
	obj := comtest.NewObject()
	p := com.UnsafeAttach(obj.Unknown())
	defer p.Release()

	if got := p.UnsafeRaw(); got != obj.Unknown() {
		t.Errorf("UnsafeRaw() = %p, want %p", got, obj.Unknown())
	}
	if p.IsNull() {
		t.Error("UnsafeRaw should not affect ownership")
	}
	if obj.AddRefs() != 0 || obj.Releases() != 0 {
		t.Error("UnsafeRaw should not touch the count")
	}
}

func TestUnsafeSlot(t *testing.T) {
	obj := comtest.NewObject()
	p := com.New[comtest.Unknown]()

	*p.UnsafeSlot() = obj.Unknown()
	if p.IsNull() {
		t.Fatal("handle should own the pointer written through its slot")
	}
	p.Release()
	verify(t, obj)
}

func TestUnsafeVoidSlot(t *testing.T) {
	obj := comtest.NewObject()
	p := com.New[comtest.Unknown]()

	*p.UnsafeVoidSlot() = unsafe.Pointer(obj.Unknown())
	if p.UnsafeRaw() != obj.Unknown() {
		t.Fatal("void slot should alias the typed slot")
	}
	p.Release()
	verify(t, obj)
}

func TestUnsafeSlotNonNullPanics(t *testing.T) {
	obj := comtest.NewObject()
	p := com.UnsafeAttach(obj.Unknown())
	defer p.Release()

	mustPanic(t, "UnsafeSlot called on a non-null Ptr", func() { p.UnsafeSlot() })
	mustPanic(t, "UnsafeSlot called on a non-null Ptr", func() { p.UnsafeVoidSlot() })

	if got := obj.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}
