package com

import "unsafe"

// Unknown is the capability set a type needs to be held by Ptr: the three
// IUnknown operations, implemented on the pointer type P = *T.
//
// AddRef and Release return the new reference count. The value is only
// meaningful for diagnostics. QueryInterface must either store one owning
// reference in out and return a success code, or store nil and return a
// failure code.
type Unknown[T any] interface {
	*T
	AddRef() uint32
	Release() uint32
	QueryInterface(iid *GUID, out *unsafe.Pointer) HRESULT
}

// Interface is an Unknown that also has a fixed interface identifier.
// IID is called on a nil pointer and must not depend on its receiver.
type Interface[T any] interface {
	Unknown[T]
	IID() *GUID
}

// IID_IUnknown identifies IUnknown, the interface every COM object implements.
var IID_IUnknown = MustParseGUID("00000000-0000-0000-C000-000000000046")

// IUnknownVtbl is the IUnknown part of every COM vtable.
type IUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// IUnknown mirrors the ABI of a COM object: a pointer to its vtable.
// Interface types derived from IUnknown embed it to inherit the vtable
// pointer and the three IUnknown methods.
type IUnknown struct {
	Vtbl *IUnknownVtbl
}

// IID returns IID_IUnknown.
func (*IUnknown) IID() *GUID {
	return &IID_IUnknown
}

// VtblAs reinterprets the vtable of an object derived from IUnknown as V,
// which must begin with the IUnknownVtbl fields in order.
func VtblAs[V any](u *IUnknown) *V {
	return (*V)(unsafe.Pointer(u.Vtbl))
}
