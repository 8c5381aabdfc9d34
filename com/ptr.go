package com

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// Ptr owns at most one reference to a COM object of type T.
//
// The zero value is an empty handle. A non-empty handle owns exactly one
// reference, which Release gives back. Use Ptr through a pointer; a Ptr
// copied by value panics on its next method call. Handles returned by
// this package are guarded from construction, so reading a shared handle
// never writes to it.
type Ptr[T any, P Unknown[T]] struct {
	addr *Ptr[T, P] // self-pointer for copy detection
	ptr  P
}

// New returns an empty handle.
func New[T any, P Unknown[T]]() *Ptr[T, P] {
	return newPtr[T, P](nil)
}

// newPtr returns a handle holding raw, guarded against copies from the start.
func newPtr[T any, P Unknown[T]](raw P) *Ptr[T, P] {
	p := &Ptr[T, P]{ptr: raw}
	p.addr = p
	return p
}

// copyCheck panics if p was copied by value. Handles built by this
// package are guarded from construction; only a declared zero value
// records its address on first use.
func (p *Ptr[T, P]) copyCheck() {
	if p.addr == nil {
		p.addr = p
		return
	}
	if p.addr != p {
		panic("com: Ptr must not be copied by value")
	}
}

// IsNull reports whether p owns no reference. A nil *Ptr is null.
func (p *Ptr[T, P]) IsNull() bool {
	if p == nil {
		return true
	}
	p.copyCheck()
	return p.ptr == nil
}

// Release gives back the owned reference, if any, and leaves p empty.
// Calling Release on an empty handle does nothing.
func (p *Ptr[T, P]) Release() {
	if p.IsNull() {
		return
	}
	raw := p.ptr
	p.ptr = nil
	if n := raw.Release(); n == 0 {
		Logger().Debug("com: object released", slog.String("type", typeName[T]()))
	}
}

// Get returns the object for calling its methods. The result is borrowed:
// it is valid while p owns its reference and must not be released.
//
// Get panics if p is empty.
func (p *Ptr[T, P]) Get() P {
	if p.IsNull() {
		panic("com: Get called on a null Ptr[" + typeName[T]() + "]")
	}
	return p.ptr
}

// Clone returns an independent handle to the same object. If p owns a
// reference the object's count is incremented; the clone must be
// released separately. Cloning an empty handle yields an empty handle.
func (p *Ptr[T, P]) Clone() *Ptr[T, P] {
	if p.IsNull() {
		return New[T, P]()
	}
	p.ptr.AddRef()
	return newPtr[T, P](p.ptr)
}

// Equal reports whether p and other hold the same address. This is
// identity, not interface-level object identity: two different interface
// pointers of one object compare unequal.
func (p *Ptr[T, P]) Equal(other *Ptr[T, P]) bool {
	return p.UnsafeRaw() == other.UnsafeRaw()
}

// String formats p for diagnostics.
func (p *Ptr[T, P]) String() string {
	if p.IsNull() {
		return "com.Ptr[" + typeName[T]() + "](nil)"
	}
	return fmt.Sprintf("com.Ptr[%s](%p)", typeName[T](), p.ptr)
}

// Cast queries the object held by p for interface U and returns a new
// handle owning one reference to it. p is not changed.
//
// If p is empty, Cast returns an *Error with code E_POINTER without
// calling the object. If the object refuses, the returned *Error carries
// its HRESULT, typically E_NOINTERFACE.
func Cast[U any, PU Interface[U], T any, PT Unknown[T]](p *Ptr[T, PT]) (*Ptr[U, PU], error) {
	var zero PU
	iid := *zero.IID()

	if p.IsNull() {
		return nil, &Error{Op: "QueryInterface", IID: iid, Code: E_POINTER}
	}

	out := New[U, PU]()
	hr := p.ptr.QueryInterface(&iid, out.UnsafeVoidSlot())
	if hr.Failed() {
		// The callee owns nothing it wrote on failure.
		out.ptr = nil
		Logger().Debug("com: QueryInterface failed",
			slog.String("iid", iid.String()),
			slog.String("hresult", hr.describe()))
		return nil, &Error{Op: "QueryInterface", IID: iid, Code: hr}
	}
	if out.ptr == nil {
		return nil, &Error{Op: "QueryInterface", IID: iid, Code: E_POINTER}
	}
	return out, nil
}

// Create calls a creation function that returns a new object through an
// out parameter, and wraps the result without an extra AddRef. op names
// the call in the returned error.
//
// On failure nothing is owned and the *Error carries the call's HRESULT.
// A successful call that leaves the slot nil reports E_POINTER.
func Create[T any, P Unknown[T]](op string, call func(out *unsafe.Pointer) HRESULT) (*Ptr[T, P], error) {
	p := New[T, P]()
	hr := call(p.UnsafeVoidSlot())
	if hr.Failed() {
		p.ptr = nil
		Logger().Debug("com: create failed",
			slog.String("op", op),
			slog.String("hresult", hr.describe()))
		return nil, &Error{Op: op, Code: hr}
	}
	if p.ptr == nil {
		return nil, &Error{Op: op, Code: E_POINTER}
	}
	return p, nil
}

// IIDOf returns the interface identifier of T.
func IIDOf[T any, P Interface[T]]() GUID {
	var zero P
	return *zero.IID()
}

// typeName returns the package-qualified name of T for diagnostics.
func typeName[T any]() string {
	var zero *T
	name := fmt.Sprintf("%T", zero)
	return name[1:]
}
