package com

import "unsafe"

// The functions in this file move raw references in and out of Ptr
// without the bookkeeping the rest of the API performs. Each call site
// must know who owns the reference before and after the call.

// UnsafeAttach wraps raw, taking over a reference the caller already owns.
// No AddRef is performed: raw typically comes from a creation call or an
// out parameter that returned a fresh reference. A nil raw yields an
// empty handle.
func UnsafeAttach[T any, P Unknown[T]](raw P) *Ptr[T, P] {
	return newPtr[T, P](raw)
}

// UnsafeAdopt wraps raw with a reference of its own, incrementing the
// object's count. Whoever supplied raw keeps their reference. A nil raw
// yields an empty handle.
func UnsafeAdopt[T any, P Unknown[T]](raw P) *Ptr[T, P] {
	if raw != nil {
		raw.AddRef()
	}
	return newPtr[T, P](raw)
}

// UnsafeDetach empties p without releasing and returns the address it
// held. The caller becomes responsible for that reference.
func (p *Ptr[T, P]) UnsafeDetach() P {
	if p.IsNull() {
		return nil
	}
	raw := p.ptr
	p.ptr = nil
	return raw
}

// UnsafeRaw returns the address held by p without affecting ownership.
// The result must not be released and must not outlive p's reference.
// UnsafeRaw returns nil for an empty or nil handle.
func (p *Ptr[T, P]) UnsafeRaw() P {
	if p.IsNull() {
		return nil
	}
	return p.ptr
}

// UnsafeSlot returns the location of p's address for a call that
// writes a new reference through an out parameter.
//
// UnsafeSlot panics if p is not empty, since writing through the slot
// would leak the reference p owns.
func (p *Ptr[T, P]) UnsafeSlot() *P {
	if !p.IsNull() {
		panic("com: UnsafeSlot called on a non-null Ptr[" + typeName[T]() + "]")
	}
	return &p.ptr
}

// UnsafeVoidSlot is UnsafeSlot typed as void** for calls such as
// QueryInterface.
func (p *Ptr[T, P]) UnsafeVoidSlot() *unsafe.Pointer {
	return (*unsafe.Pointer)(unsafe.Pointer(p.UnsafeSlot()))
}
