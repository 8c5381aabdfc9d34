//go:build !windows

package com

import "unsafe"

// errNoObjectModel is the panic value for vtable calls on platforms
// without COM. An *IUnknown cannot be obtained there from a real object.
const errNoObjectModel = "com: IUnknown vtable call on a platform without COM"

// QueryInterface panics: there is no COM runtime on this platform.
func (u *IUnknown) QueryInterface(iid *GUID, out *unsafe.Pointer) HRESULT {
	panic(errNoObjectModel)
}

// AddRef panics: there is no COM runtime on this platform.
func (u *IUnknown) AddRef() uint32 {
	panic(errNoObjectModel)
}

// Release panics: there is no COM runtime on this platform.
func (u *IUnknown) Release() uint32 {
	panic(errNoObjectModel)
}
